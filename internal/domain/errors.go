package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for common domain failures
// Use with errors.Is() for checking and fmt.Errorf("%w", ...) for wrapping with context

var (
	// ErrNoCredential indicates an anonymous session was asked to aggregate
	ErrNoCredential = errors.New("session has no access token")

	// ErrSessionDecode indicates a session transport string could not be decoded.
	// It never reaches a caller of the codec: decode failures demote to anonymous.
	ErrSessionDecode = errors.New("session cookie is malformed or forged")

	// ErrStateMismatch indicates the OAuth state returned by the provider
	// does not match the nonce bound when the flow started
	ErrStateMismatch = errors.New("oauth state mismatch")

	// ErrNoAccessToken indicates the token endpoint answered without a usable token
	ErrNoAccessToken = errors.New("token response has no access_token")
)

// AuthFailure names the reason an authorization handshake ended in Failed.
type AuthFailure string

const (
	NoAuthorizationCode AuthFailure = "NoAuthorizationCode"
	TokenExchangeFailed AuthFailure = "TokenExchangeFailed"
	StateMismatch       AuthFailure = "StateMismatch"
	ProfileFetchFailed  AuthFailure = "ProfileFetchFailed"
)

// Tag returns the machine-readable error tag carried back to the user-agent.
func (f AuthFailure) Tag() string {
	switch f {
	case NoAuthorizationCode:
		return "no_code"
	case TokenExchangeFailed:
		return "token_failed"
	case StateMismatch:
		return "state_mismatch"
	case ProfileFetchFailed:
		return "profile_failed"
	default:
		return "auth_failed"
	}
}

// AuthError is the terminal Failed state of the authorization handshake.
type AuthError struct {
	Reason AuthFailure
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("auth failed (%s)", e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }

// Tag is a shorthand for e.Reason.Tag().
func (e *AuthError) Tag() string { return e.Reason.Tag() }

// TransportError reports a search page that failed below the query API:
// a non-success HTTP status, or Status 0 when no response arrived at all.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		if e.Err != nil {
			return fmt.Sprintf("transport error: %v", e.Err)
		}
		return "transport error"
	}
	return fmt.Sprintf("transport error: HTTP %d", e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// QueryError reports a logical failure from the query API, or any
// uncategorized failure converted at the aggregation boundary.
type QueryError struct {
	Message string
}

func (e *QueryError) Error() string {
	return "query error: " + e.Message
}

// IsAggregationError reports whether err belongs to the aggregation taxonomy.
func IsAggregationError(err error) bool {
	var te *TransportError
	var qe *QueryError
	return errors.As(err, &te) || errors.As(err, &qe) || errors.Is(err, ErrNoCredential)
}
