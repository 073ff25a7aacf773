// Package app holds the use cases of prdash and its composition root.
//
// Responsibilities
//   - Aggregator (aggregator.go): walks every configured search query page by
//     page, merges, dedups by URL and orders by updatedAt descending.
//     Failures are all or nothing.
//   - NormalizeNode (normalize.go): the single place where a raw search node
//     becomes a domain.PullRequest and every default is applied.
//   - Handshake (auth.go): the OAuth authorization-code flow ending in a
//     domain.Session or a *domain.AuthError.
//   - ApplyListOptions (listing.go): view-level filter, fuzzy search and sort.
//   - Bootstrap (application.go): wires the GitHub adapter, session codec,
//     state signer, aggregator and handshake from a config.Config.
//
// Nothing in this package touches HTTP requests or cookies; that belongs to
// the inbound adapter.
package app
