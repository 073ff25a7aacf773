package domain

// Session is an ephemeral, client-held identity record.
// The server never stores it; it travels in a signed cookie.
type Session struct {
	AccessToken string `json:"access_token,omitempty"`
	Login       string `json:"login,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// Anonymous returns the empty session.
func Anonymous() Session { return Session{} }

// IsAnonymous reports whether the session lacks a credential.
func (s Session) IsAnonymous() bool {
	return s.AccessToken == ""
}
