package ports

import (
	"context"

	"github.com/sufield/prdash/internal/domain"
)

// PullRequestSource is the use case behind the dashboard view.
//
// Error Contract:
// - Returns domain.ErrNoCredential for an empty token, without any network call
// - Every other failure is a *domain.TransportError or *domain.QueryError
// - On failure the returned slice is nil (no partial results)
type PullRequestSource interface {
	FetchOpenPRs(ctx context.Context, accessToken string) ([]domain.PullRequest, error)
}

// Authenticator is the authorization handshake driven by the inbound HTTP adapter.
//
// Error Contract:
// - Complete returns *domain.AuthError; its Tag() is carried back to the user-agent
type Authenticator interface {
	// Begin performs Start -> AwaitingProviderCallback
	Begin(ctx context.Context) (AuthStart, error)

	// Complete performs AwaitingProviderCallback -> Authenticated | Failed
	Complete(ctx context.Context, params CallbackParams) (domain.Session, error)
}
