package httpapi

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/sufield/prdash/internal/domain"
	"github.com/sufield/prdash/internal/logging"
	"github.com/sufield/prdash/internal/ports"
)

const errorTagAuthFailed = "auth_failed"

// login starts the handshake: bind a nonce in the state cookie and send the
// user-agent to the provider.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	start, err := h.auth.Begin(r.Context())
	if err != nil {
		logging.Logger.Error("failed to start login", "error", err)
		http.Error(w, "unable to start login", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.cookies.state(start.StateCookie, h.cookies.StateMaxAge))
	http.Redirect(w, r, start.RedirectURL, http.StatusFound)
}

// callback completes the handshake. The state cookie is single use and is
// cleared whatever the outcome.
func (h *Handler) callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := ports.CallbackParams{
		Code:        q.Get("code"),
		State:       q.Get("state"),
		StateCookie: readCookie(r, h.cookies.StateName),
	}
	http.SetCookie(w, h.cookies.state("", 0))

	s, err := h.auth.Complete(r.Context(), params)
	if err != nil {
		tag := errorTagAuthFailed
		var ae *domain.AuthError
		if errors.As(err, &ae) {
			tag = ae.Tag()
		}
		logging.Logger.Warn("login failed", "reason", tag, "error", err)
		http.Redirect(w, r, "/?error="+url.QueryEscape(tag), http.StatusFound)
		return
	}

	value, err := h.sessions.Encode(s)
	if err != nil {
		logging.Logger.Error("failed to encode session", "login", s.Login, "error", err)
		http.Redirect(w, r, "/?error="+errorTagAuthFailed, http.StatusFound)
		return
	}

	logging.Logger.Info("login succeeded", "login", s.Login)
	http.SetCookie(w, h.cookies.session(value, h.cookies.SessionMaxAge))
	http.Redirect(w, r, "/", http.StatusFound)
}

// logout clears the session cookie. Nothing is held server side.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.cookies.session("", 0))

	status := http.StatusFound
	if r.Method == http.MethodPost {
		status = http.StatusSeeOther
	}
	http.Redirect(w, r, "/", status)
}

// authErrorMessage turns a callback error tag into banner text.
func authErrorMessage(tag string) string {
	switch tag {
	case "":
		return ""
	case domain.NoAuthorizationCode.Tag():
		return "GitHub did not return an authorization code."
	case domain.TokenExchangeFailed.Tag():
		return "Could not exchange the authorization code for an access token."
	case domain.StateMismatch.Tag():
		return "The login request expired or did not match. Please sign in again."
	case domain.ProfileFetchFailed.Tag():
		return "Could not load your GitHub profile."
	default:
		return "Sign in failed."
	}
}
