package httpapi

import (
	"net/http"
	"net/url"
	"time"
)

// CookieConfig names and scopes the cookies the adapter sets.
type CookieConfig struct {
	SessionName string
	StateName   string
	Secure      bool
	// SessionMaxAge matches the codec's validity window
	SessionMaxAge time.Duration
	// StateMaxAge matches the state signer's ttl
	StateMaxAge time.Duration
}

// Default cookie names.
const (
	DefaultSessionCookie = "prdash_session"
	DefaultStateCookie   = "prdash_oauth_state"
)

func (c CookieConfig) withDefaults() CookieConfig {
	if c.SessionName == "" {
		c.SessionName = DefaultSessionCookie
	}
	if c.StateName == "" {
		c.StateName = DefaultStateCookie
	}
	if c.SessionMaxAge <= 0 {
		c.SessionMaxAge = 24 * time.Hour
	}
	if c.StateMaxAge <= 0 {
		c.StateMaxAge = 10 * time.Minute
	}
	return c
}

// maxAgeSeconds maps a lifetime to http.Cookie.MaxAge, where a negative value
// is what emits "Max-Age=0".
func maxAgeSeconds(d time.Duration) int {
	if d <= 0 {
		return -1
	}
	return int(d / time.Second)
}

func (c CookieConfig) session(value string, lifetime time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     c.SessionName,
		Value:    url.QueryEscape(value),
		Path:     "/",
		MaxAge:   maxAgeSeconds(lifetime),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (c CookieConfig) state(value string, lifetime time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     c.StateName,
		Value:    url.QueryEscape(value),
		Path:     "/auth",
		MaxAge:   maxAgeSeconds(lifetime),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// readCookie returns the unescaped value of name, or "" when absent or garbled.
func readCookie(r *http.Request, name string) string {
	ck, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	v, err := url.QueryUnescape(ck.Value)
	if err != nil {
		return ""
	}
	return v
}
