// Package prdash serves a personal dashboard of the open GitHub pull requests
// that involve the signed-in account.
//
// A deployment is one process: it signs users in with the GitHub OAuth
// authorization-code flow, keeps each session in a signed cookie, and on every
// page load walks the configured search queries to build the list.
//
// Usage:
//
//	cfg, err := config.Load("prdash.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := prdash.Run(cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Start returns instead of blocking, for callers that manage signals themselves.
package prdash

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sufield/prdash/internal/adapters/inbound/httpapi"
	"github.com/sufield/prdash/internal/adapters/outbound/github"
	"github.com/sufield/prdash/internal/app"
	"github.com/sufield/prdash/internal/bg"
	"github.com/sufield/prdash/internal/config"
	"github.com/sufield/prdash/internal/debug"
	"github.com/sufield/prdash/internal/logging"
)

// DefaultShutdownTimeout bounds the drain of in-flight requests.
const DefaultShutdownTimeout = 5 * time.Second

// instance is one running dashboard.
type instance struct {
	app     *app.Application
	server  *httpapi.HTTPServer
	timeout time.Duration

	once sync.Once
	err  error
}

// Start wires the dashboard from cfg and begins serving in the background.
//
// Shutdown semantics:
//   - The shutdown function is safe to call multiple times
//   - The first call drains in-flight requests for server.shutdown_timeout
//   - Later calls return the result of the first
func Start(cfg *config.Config) (shutdown func() error, err error) {
	inst, err := start(cfg)
	if err != nil {
		return nil, err
	}
	return inst.shutdown, nil
}

// start is Start with the GitHub adapter options exposed for tests.
func start(cfg *config.Config, githubOpts ...github.Option) (*instance, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	debug.Init()
	level := cfg.Log.Level
	if debug.IsEnabled() {
		level = "debug"
	}
	if err := logging.Initialize(logging.Options{Level: level, Format: cfg.Log.Format}); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	debug.InitLogger()

	application, err := app.Bootstrap(cfg, githubOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to bootstrap: %w", err)
	}

	handler, err := httpapi.NewRouter(httpapi.Dependencies{
		Pulls:    application.Aggregator,
		Auth:     application.Handshake,
		Sessions: application.Sessions,
		Cookies: httpapi.CookieConfig{
			SessionName:   cfg.Session.CookieName,
			Secure:        cfg.Session.SecureCookie,
			SessionMaxAge: application.Sessions.Validity(),
			StateMaxAge:   application.State.TTL(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build router: %w", err)
	}

	server, err := httpapi.NewHTTPServer(httpapi.ServerConfig{
		Address:           cfg.Server.ListenAddr,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}, handler)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}
	if err := server.Start(bg.Async{}); err != nil {
		return nil, fmt.Errorf("server startup failed: %w", err)
	}

	debug.Start(bg.Async{}, application.Aggregator)

	timeout := cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = DefaultShutdownTimeout
	}

	logging.Logger.Info("prdash started",
		"addr", server.Addr(),
		"mode", debug.Mode(),
		"queries", len(application.Aggregator.Queries()),
	)
	return &instance{app: application, server: server, timeout: timeout}, nil
}

func (i *instance) shutdown() error {
	i.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), i.timeout)
		defer cancel()
		i.err = i.server.Stop(ctx)
		logging.Logger.Info("prdash stopped", "error", i.err)
	})
	return i.err
}

// Run starts the dashboard and blocks until SIGINT or SIGTERM, or until the
// listener fails, then shuts down gracefully.
func Run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	inst, err := start(cfg)
	if err != nil {
		return err
	}
	return inst.wait(ctx)
}

// wait blocks until ctx ends or the server exits on its own.
func (i *instance) wait(ctx context.Context) error {
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Logger.Info("shutting down gracefully")
	case serveErr = <-i.server.Done():
	}

	return errors.Join(serveErr, i.shutdown())
}
