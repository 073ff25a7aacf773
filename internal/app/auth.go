package app

import (
	"context"
	"fmt"

	"github.com/sufield/prdash/internal/debug"
	"github.com/sufield/prdash/internal/domain"
	"github.com/sufield/prdash/internal/ports"
)

// Handshake implements ports.Authenticator: the authorization-code flow that
// turns a provider callback into a domain.Session.
//
//	Start -> AwaitingProviderCallback -> Authenticated
//	                                  \-> Failed(reason)
//
// A Handshake holds no per-flow state; the nonce travels in the state cookie.
type Handshake struct {
	provider ports.OAuthProvider
	state    ports.StateSigner
}

// NewHandshake creates a handshake over provider and state signer.
func NewHandshake(provider ports.OAuthProvider, state ports.StateSigner) (*Handshake, error) {
	if provider == nil {
		return nil, fmt.Errorf("oauth provider is required")
	}
	if state == nil {
		return nil, fmt.Errorf("state signer is required")
	}
	return &Handshake{provider: provider, state: state}, nil
}

// Begin issues a fresh nonce and returns the authorization URL carrying it,
// together with the cookie value that binds it to this user-agent.
func (h *Handshake) Begin(_ context.Context) (ports.AuthStart, error) {
	nonce, cookie, err := h.state.Issue()
	if err != nil {
		return ports.AuthStart{}, fmt.Errorf("issue oauth state: %w", err)
	}
	return ports.AuthStart{
		RedirectURL: h.provider.AuthCodeURL(nonce),
		StateCookie: cookie,
	}, nil
}

// Complete runs the callback leg. Every failure is a *domain.AuthError and no
// step is retried.
func (h *Handshake) Complete(ctx context.Context, p ports.CallbackParams) (domain.Session, error) {
	if p.Code == "" {
		return domain.Session{}, &domain.AuthError{Reason: domain.NoAuthorizationCode}
	}

	if err := h.state.Verify(p.StateCookie, p.State); err != nil {
		return domain.Session{}, &domain.AuthError{Reason: domain.StateMismatch, Err: err}
	}

	token, err := h.provider.ExchangeCode(ctx, p.Code)
	if err != nil {
		return domain.Session{}, &domain.AuthError{Reason: domain.TokenExchangeFailed, Err: err}
	}
	if token == "" {
		return domain.Session{}, &domain.AuthError{Reason: domain.TokenExchangeFailed, Err: domain.ErrNoAccessToken}
	}

	profile, err := h.provider.FetchProfile(ctx, token)
	if err != nil {
		return domain.Session{}, &domain.AuthError{Reason: domain.ProfileFetchFailed, Err: err}
	}

	debug.GetLogger().Debugf("handshake authenticated %s", profile.Login)
	return domain.Session{
		AccessToken: token,
		Login:       profile.Login,
		AvatarURL:   profile.AvatarURL,
	}, nil
}

var _ ports.Authenticator = (*Handshake)(nil)
