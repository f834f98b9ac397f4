package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	quotegen "github.com/Dhanushcdivakar/quote-generator"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	_ = godotenv.Load()

	var (
		configPath = pflag.StringP("config", "c", "", "path to YAML config file")
		addr       = pflag.String("addr", "", "listen address (overrides config)")
		workers    = pflag.IntP("workers", "w", 0, "browser pool size, 0 = auto (overrides config)")
		version    = pflag.BoolP("version", "V", false, "print version and exit")
	)
	pflag.Parse()

	if *version {
		fmt.Println("quotegen-server " + Version)
		return
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.ApplyEnv()
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *workers > 0 {
		cfg.Render.Workers = *workers
	}

	logger := newLogger(cfg.Log.Format, cfg.Log.Level)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the server continues.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Debug().Msgf(format, args...)
	}))

	opts, err := serviceOptions(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("configure quote service")
	}

	poolSize := quotegen.ResolvePoolSize(cfg.Render.Workers)
	pool := quotegen.NewServicePool(poolSize, opts...)
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Error().Err(err).Msg("close service pool")
		}
	}()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newRouter(logger, &pooledGenerator{pool: pool}, cfg.RenderTimeout()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", cfg.Server.Addr).
			Int("workers", poolSize).
			Str("version", Version).
			Msg("quote generator listening")
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server")
		}
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown")
		}
	}
}

// serviceOptions translates server config into quote service options.
func serviceOptions(cfg *Config) ([]quotegen.Option, error) {
	opts := []quotegen.Option{
		quotegen.WithTimeout(cfg.RenderTimeout()),
	}

	if cfg.Quote.CurrencySymbol != "" {
		opts = append(opts, quotegen.WithCurrencySymbol(cfg.Quote.CurrencySymbol))
	}
	if cfg.Quote.DateFormat != "" {
		opts = append(opts, quotegen.WithDateFormat(cfg.Quote.DateFormat))
	}
	if cfg.Quote.LogoFallbackURL != "" {
		opts = append(opts, quotegen.WithLogoFallbackURL(cfg.Quote.LogoFallbackURL))
	}
	if cfg.Assets.BasePath != "" {
		loader, err := quotegen.NewAssetLoader(cfg.Assets.BasePath)
		if err != nil {
			return nil, fmt.Errorf("asset loader: %w", err)
		}
		opts = append(opts, quotegen.WithAssetLoader(loader))
	}

	return opts, nil
}
