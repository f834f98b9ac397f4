package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	quotegen "github.com/Dhanushcdivakar/quote-generator"
)

// callerErrGenerate is the only failure detail callers see; diagnostics stay
// in the server log.
const callerErrGenerate = "Failed to generate quote PDF"

// pdfGenerator is the handler's view of the quote pipeline.
type pdfGenerator interface {
	Generate(ctx context.Context, req quotegen.QuoteRequest) ([]byte, error)
}

// pooledGenerator serves each request with a service checked out of the
// pool; release is paired with acquire on every path.
type pooledGenerator struct {
	pool *quotegen.ServicePool
}

func (g *pooledGenerator) Generate(ctx context.Context, req quotegen.QuoteRequest) ([]byte, error) {
	svc := g.pool.Acquire()
	defer g.pool.Release(svc)
	return svc.Generate(ctx, req)
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	log     zerolog.Logger
	gen     pdfGenerator
	timeout time.Duration
}

// NewHandlers creates the handler set for the router.
func NewHandlers(log zerolog.Logger, gen pdfGenerator, timeout time.Duration) *Handlers {
	return &Handlers{log: log, gen: gen, timeout: timeout}
}

// GenerateQuote accepts a quote request body and responds with the rendered
// PDF. Numeric leniency lives in the request types, so decoding only fails
// on malformed JSON. Any pipeline failure maps to one uniform 500 envelope.
func (h *Handlers) GenerateQuote(w http.ResponseWriter, r *http.Request) {
	var req quotegen.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	pdf, err := h.gen.Generate(ctx, req)
	if err != nil {
		h.log.Error().Err(err).
			Str("customer", req.CustomerName).
			Int("items", len(req.Items)).
			Msg("generate quote pdf")
		writeError(w, http.StatusInternalServerError, callerErrGenerate)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=quote.pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes the provided value to the response writer as JSON.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders the canonical error shape: {"error": "..."}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
