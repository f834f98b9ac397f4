package quotegen

import (
	"context"
	"fmt"
	"time"
)

// Defaults matching the quote documents this service was built to issue.
const (
	defaultTimeout = 30 * time.Second

	// DefaultCurrencySymbol prefixes every rendered amount.
	DefaultCurrencySymbol = "₹"

	// DefaultDateFormat renders issue and due dates as DD/MM/YYYY.
	DefaultDateFormat = "02/01/2006"

	// DefaultLogoFallbackURL is substituted when no logo asset is
	// available. Logo absence is a fallback, not an error.
	DefaultLogoFallbackURL = "https://placehold.co/150x50/cccccc/333333?text=Logo+Missing"
)

// serviceConfig holds Service settings applied via options.
type serviceConfig struct {
	timeout         time.Duration
	currency        string
	dateFormat      string
	logoFallbackURL string
	now             func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout sets the PDF rendering timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithCurrencySymbol sets the symbol prefixed to every rendered amount.
func WithCurrencySymbol(symbol string) Option {
	return func(s *Service) {
		s.cfg.currency = symbol
	}
}

// WithDateFormat sets the Go time layout for issue and due dates.
func WithDateFormat(layout string) Option {
	return func(s *Service) {
		s.cfg.dateFormat = layout
	}
}

// WithLogoFallbackURL sets the image reference used when the logo asset
// cannot be loaded.
func WithLogoFallbackURL(url string) Option {
	return func(s *Service) {
		s.cfg.logoFallbackURL = url
	}
}

// WithAssetLoader sets a custom asset loader.
func WithAssetLoader(loader AssetLoader) Option {
	return func(s *Service) {
		s.assets = loader
	}
}

// WithClock overrides the time source used for the quote number and dates.
// Intended for tests and deterministic rendering.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.cfg.now = now
	}
}

// Service orchestrates the quote pipeline: pricing, template assembly, and
// PDF rendering. Each Service owns one headless browser; use ServicePool to
// bound concurrent instances.
type Service struct {
	cfg       serviceConfig
	assets    AssetLoader
	notes     notesRenderer
	converter pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout:         defaultTimeout,
			currency:        DefaultCurrencySymbol,
			dateFormat:      DefaultDateFormat,
			logoFallbackURL: DefaultLogoFallbackURL,
			now:             time.Now,
		},
		notes: newGoldmarkNotes(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.assets == nil {
		loader, err := NewAssetLoader("")
		if err != nil {
			// Embedded-only loading cannot fail; reaching this is a
			// programmer error.
			panic("quotegen: embedded asset loader: " + err.Error())
		}
		s.assets = loader
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.converter == nil {
		s.converter = newRodConverter(s.cfg.timeout)
	}

	return s
}

// Generate prices the request, assembles the quote document, and renders it
// to PDF bytes. The context bounds the rendering step.
//
// A missing template fails with ErrTemplateUnavailable before any browser
// work. A missing logo is not an error: the configured fallback reference is
// embedded instead. On any failure no partial document is returned.
func (s *Service) Generate(ctx context.Context, req QuoteRequest) ([]byte, error) {
	priced := ComputeQuote(req)

	tmpl, err := s.assets.LoadTemplate()
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}

	logoRef, err := s.assets.LoadLogo()
	if err != nil {
		logoRef = s.cfg.logoFallbackURL
	}

	notesHTML, err := s.notes.RenderNotes(ctx, req.Notes)
	if err != nil {
		return nil, fmt.Errorf("rendering notes: %w", err)
	}

	assembler := &documentAssembler{
		currency:   s.cfg.currency,
		dateFormat: s.cfg.dateFormat,
		now:        s.cfg.now,
	}
	htmlDoc := assembler.Assemble(tmpl, req, priced, logoRef, notesHTML)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdfBytes, err := s.converter.ToPDF(ctx, htmlDoc)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	return pdfBytes, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.converter != nil {
		return s.converter.Close()
	}
	return nil
}
