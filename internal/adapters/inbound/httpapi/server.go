package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sufield/prdash/internal/bg"
	"github.com/sufield/prdash/internal/logging"
)

// ServerConfig holds the listener address and timeouts.
// Zero timeouts fall back to the package defaults.
type ServerConfig struct {
	Address           string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

// HTTPServer serves the dashboard handler.
type HTTPServer struct {
	server   *http.Server
	listener net.Listener
	serveErr <-chan error
}

// NewHTTPServer creates a server for handler. It does not bind yet.
func NewHTTPServer(cfg ServerConfig, handler http.Handler) (*HTTPServer, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("address is required")
	}
	if handler == nil {
		return nil, fmt.Errorf("handler is required")
	}

	return &HTTPServer{
		server: &http.Server{
			Addr:              cfg.Address,
			Handler:           handler,
			ReadHeaderTimeout: orDefault(cfg.ReadHeaderTimeout, 10*time.Second),
			ReadTimeout:       orDefault(cfg.ReadTimeout, 30*time.Second),
			WriteTimeout:      orDefault(cfg.WriteTimeout, 60*time.Second),
			IdleTimeout:       orDefault(cfg.IdleTimeout, 120*time.Second),
		},
	}, nil
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// Start binds the listener and serves through runner. Bind errors are
// returned directly; later serve errors arrive on Done.
func (s *HTTPServer) Start(runner bg.Runner) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.server.Addr, err)
	}
	s.listener = ln

	s.serveErr = bg.Errc(runner, func() error {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger.Error("http server stopped", "error", err)
			return err
		}
		return nil
	})

	logging.Logger.Info("http server listening", "addr", ln.Addr().String())
	return nil
}

// Addr returns the bound address, or the configured one before Start.
func (s *HTTPServer) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.server.Addr
}

// Done delivers the serve loop's result once it exits (nil after Stop).
func (s *HTTPServer) Done() <-chan error {
	return s.serveErr
}

// Stop gracefully shuts down the server.
func (s *HTTPServer) Stop(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
