// Package domain contains the domain model for the pull request dashboard.
//
// This package is the CORE of the hexagonal architecture - it defines the
// records the dashboard works with and the error taxonomy, with ZERO
// dependencies on HTTP, OAuth libraries, or the GitHub wire format.
//
// Hexagonal Architecture Boundaries:
//   - Domain NEVER imports from: internal/adapters, internal/ports, internal/app
//   - Domain ONLY imports from: standard library
//   - Domain exposes: value objects (Session, PullRequest) and domain errors
//   - Domain does NOT: perform I/O, parse provider payloads, sign cookies
//
// Files and types
// -----------------------
//   - session.go
//   - Session: client-held identity record (token, login, avatar). A session
//     with no access token is anonymous.
//
//   - pull_request.go
//   - PullRequest: one normalized open pull request. URL is the dedup key.
//   - StatusState / ReviewDecision: the closed sets of rollup and review values.
//
//   - errors.go
//   - Sentinel errors plus AuthError, TransportError and QueryError.
package domain
