package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// newRouter wires the HTTP surface: one submission endpoint and a health
// probe.
func newRouter(log zerolog.Logger, gen pdfGenerator, timeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	h := NewHandlers(log, gen, timeout)

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-quote", h.GenerateQuote)
	})

	return r
}
