package server

import (
	"context"
	"net"
	"net/http"

	apperrors "github.com/agbru/fibserve/internal/errors"
	"github.com/agbru/fibserve/internal/logging"
)

// Server is one worker's HTTP server.
type Server struct {
	httpServer *http.Server
	logger     logging.Logger
}

// New creates a worker server computing F(n) per request.
func New(n uint64, logger logging.Logger) *Server {
	return &Server{
		httpServer: &http.Server{Handler: NewHandler(n)},
		logger:     logger,
	}
}

// Serve accepts connections on ln until the listener fails. It never returns
// nil.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("worker listening", logging.String("addr", ln.Addr().String()))
	err := s.httpServer.Serve(ln)
	return apperrors.ListenError{Addr: ln.Addr().String(), Cause: err}
}

// ListenAndServe binds addr with port sharing enabled and serves on it.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := Listen(ctx, addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Listen opens a TCP listener on addr. On platforms with SO_REUSEPORT several
// processes may hold the same addr concurrently.
func Listen(ctx context.Context, addr string) (net.Listener, error) {
	lc := net.ListenConfig{Control: reusePortControl}
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, apperrors.ListenError{Addr: addr, Cause: err}
	}
	return ln, nil
}
