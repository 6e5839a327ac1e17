package server

import (
	"net/http"
	"strconv"

	"github.com/agbru/fibserve/internal/fibonacci"
)

// ContentType is the media type of every response.
const ContentType = "text/plain"

// Handler serves the Fibonacci benchmark response. It never reads the
// request: method, path, headers and body are all irrelevant.
type Handler struct {
	// N is the Fibonacci index computed per request.
	N uint64
}

// NewHandler returns a Handler computing F(n) per request.
func NewHandler(n uint64) *Handler {
	return &Handler{N: n}
}

// ServeHTTP computes F(N) synchronously and writes it as the whole body.
func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	result := fibonacci.Naive(h.N)

	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(strconv.AppendUint(nil, result, 10))
}
