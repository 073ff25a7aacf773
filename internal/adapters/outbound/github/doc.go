// Package github is the outbound adapter for GitHub.
//
// It implements ports.SearchClient over the GraphQL search API and
// ports.OAuthProvider over the OAuth web flow and the REST /user endpoint.
//
// # Error mapping
//
//   - search, no response (network, cancellation): *domain.TransportError{Status: 0}
//   - search, non-2xx: *domain.TransportError{Status}
//   - search, GraphQL errors array: *domain.QueryError{errors[0].message}
//   - undecodable 2xx body: wraps ports.ErrUnexpectedPayload
//   - token response without access_token: wraps domain.ErrNoAccessToken
//
// Requests carrying a user token go through oauth2.NewClient with a static
// token source; the base *http.Client (and its timeout) is shared.
//
// In debug builds the adapter consumes the one-shot faults
// fail_next_search_status and fail_next_token_exchange from debug.Faults.
package github
