package config

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sufield/prdash/internal/logging"
)

// MinSecretLength is the shortest accepted session secret, in bytes.
const MinSecretLength = 32

// MaxPageSize is the largest page the GitHub search API serves.
const MaxPageSize = 100

// Validate reports the first violation in cfg.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if cfg.Server.ListenAddr == "" {
		return errors.New("server.listen_addr must be set")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return errors.New("server.shutdown_timeout must be positive")
	}

	if cfg.GitHub.ClientID == "" {
		return errors.New("github.client_id must be set (GITHUB_CLIENT_ID)")
	}
	if cfg.GitHub.ClientSecret == "" {
		return errors.New("github.client_secret must be set (GITHUB_CLIENT_SECRET)")
	}
	if cfg.GitHub.RedirectURL != "" {
		if err := absoluteURL(cfg.GitHub.RedirectURL); err != nil {
			return fmt.Errorf("invalid github.redirect_url: %w", err)
		}
	}
	for name, raw := range map[string]string{
		"github.authorize_url": cfg.GitHub.AuthorizeURL,
		"github.token_url":     cfg.GitHub.TokenURL,
		"github.api_url":       cfg.GitHub.APIURL,
		"github.graphql_url":   cfg.GitHub.GraphQLURL,
	} {
		if err := absoluteURL(raw); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}

	if len(cfg.Session.Secret) < MinSecretLength {
		return fmt.Errorf("session.secret must be at least %d bytes (SESSION_SECRET)", MinSecretLength)
	}
	if !validCookieName(cfg.Session.CookieName) {
		return fmt.Errorf("invalid session.cookie_name %q", cfg.Session.CookieName)
	}
	if cfg.Session.Validity <= 0 {
		return errors.New("session.validity must be positive")
	}

	if len(cfg.Dashboard.Queries) == 0 {
		return errors.New("dashboard.queries must contain at least one query")
	}
	for i, q := range cfg.Dashboard.Queries {
		if strings.TrimSpace(q) == "" {
			return fmt.Errorf("dashboard.queries[%d] is empty", i)
		}
	}
	if cfg.Dashboard.PageSize < 1 || cfg.Dashboard.PageSize > MaxPageSize {
		return fmt.Errorf("dashboard.page_size must be in 1..%d, got %d", MaxPageSize, cfg.Dashboard.PageSize)
	}
	if cfg.Dashboard.Concurrency < 1 {
		return fmt.Errorf("dashboard.concurrency must be at least 1, got %d", cfg.Dashboard.Concurrency)
	}

	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log.format %q (want json or text)", cfg.Log.Format)
	}

	return nil
}

func absoluteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q is not an http(s) URL", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", raw)
	}
	return nil
}

// validCookieName uses net/http's own token check via Cookie.Valid.
func validCookieName(name string) bool {
	if name == "" {
		return false
	}
	return (&http.Cookie{Name: name, Value: "x"}).Valid() == nil
}
