package ports

import (
	"context"

	"github.com/sufield/prdash/internal/domain"
)

// SearchClient fetches one page of a pull request search.
//
// Error Contract:
// - Returns *domain.TransportError{Status} when the page answers with a non-2xx status
// - Returns *domain.TransportError{Status: 0} when no response arrived (network, cancellation)
// - Returns *domain.QueryError with the first reported message when the query API reports errors
// - Returns an error wrapping ErrUnexpectedPayload when the body cannot be decoded
type SearchClient interface {
	// SearchPage runs query starting after cursor (nil for the first page)
	SearchPage(ctx context.Context, accessToken, query string, cursor *string) (SearchPage, error)
}

// OAuthProvider drives the provider side of the authorization-code flow.
//
// Error Contract:
// - ExchangeCode returns domain.ErrNoAccessToken when the response carries no usable token
// - ExchangeCode returns a wrapped transport error when the request itself fails
// - FetchProfile returns a wrapped error for any non-2xx or undecodable response
type OAuthProvider interface {
	// AuthCodeURL builds the authorization URL carrying client id, scope and state
	AuthCodeURL(state string) string

	// ExchangeCode trades an authorization code for a bearer credential
	ExchangeCode(ctx context.Context, code string) (string, error)

	// FetchProfile returns the account that owns accessToken
	FetchProfile(ctx context.Context, accessToken string) (Profile, error)
}

// SessionCodec turns sessions into cookie-safe strings and back.
//
// Error Contract:
// - Decode never fails: malformed, forged or expired input yields domain.Anonymous()
type SessionCodec interface {
	Encode(s domain.Session) (string, error)
	Decode(value string) domain.Session
}

// StateSigner issues and checks the anti-forgery nonce of the OAuth flow.
//
// Error Contract:
// - Verify returns domain.ErrStateMismatch for a missing, forged, expired or different nonce
type StateSigner interface {
	// Issue returns a fresh nonce and the signed cookie value binding it
	Issue() (nonce string, cookie string, err error)

	// Verify checks that state is the nonce bound in cookie
	Verify(cookie, state string) error
}
