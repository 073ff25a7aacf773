// Package httpapi is the inbound HTTP adapter: the dashboard page, the JSON
// listing and the OAuth endpoints, served by a chi router.
package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sufield/prdash/internal/ports"
)

// Dependencies are the ports the dashboard handlers drive.
type Dependencies struct {
	Pulls    ports.PullRequestSource
	Auth     ports.Authenticator
	Sessions ports.SessionCodec
	Cookies  CookieConfig
}

// Handler serves the dashboard, the JSON listing and the OAuth endpoints.
type Handler struct {
	pulls    ports.PullRequestSource
	auth     ports.Authenticator
	sessions ports.SessionCodec
	cookies  CookieConfig
	pages    *pages
}

// NewHandler validates deps and parses the embedded templates.
func NewHandler(deps Dependencies) (*Handler, error) {
	if deps.Pulls == nil {
		return nil, fmt.Errorf("pull request source is required")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("authenticator is required")
	}
	if deps.Sessions == nil {
		return nil, fmt.Errorf("session codec is required")
	}
	p, err := loadPages()
	if err != nil {
		return nil, err
	}
	return &Handler{
		pulls:    deps.Pulls,
		auth:     deps.Auth,
		sessions: deps.Sessions,
		cookies:  deps.Cookies.withDefaults(),
		pages:    p,
	}, nil
}

// Routes builds the chi router.
//
//	GET       /healthz
//	GET       /auth/login
//	GET       /auth/callback
//	GET|POST  /auth/logout
//	GET       /
//	GET       /api/pulls
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(h.sessionMiddleware)

	r.Get("/healthz", h.healthz)

	r.Route("/auth", func(r chi.Router) {
		r.Get("/login", h.login)
		r.Get("/callback", h.callback)
		r.Get("/logout", h.logout)
		r.Post("/logout", h.logout)
	})

	r.Get("/", h.dashboard)
	r.Get("/api/pulls", h.apiPulls)

	return r
}

// NewRouter is shorthand for NewHandler followed by Routes.
func NewRouter(deps Dependencies) (http.Handler, error) {
	h, err := NewHandler(deps)
	if err != nil {
		return nil, err
	}
	return h.Routes(), nil
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
