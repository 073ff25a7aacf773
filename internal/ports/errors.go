package ports

import "errors"

// Infrastructure errors for adapter layer.
//
// These errors represent infrastructure/adapter concerns and are separate from
// domain errors which represent business/semantic failures.
//
// Usage:
//   - Adapters return these errors when infrastructure operations fail
//   - Domain layer never imports or uses these errors directly
//   - Application layer maps them into the domain taxonomy at its boundary

// ErrUnexpectedPayload indicates the provider answered 2xx with a body that does
// not match the expected shape.
//
// Used by:
//   - The GitHub search adapter when the GraphQL envelope cannot be decoded
//   - The GitHub OAuth adapter when the profile body cannot be decoded
var ErrUnexpectedPayload = errors.New("unexpected provider payload")

// Compile-time check that errors implement error interface
var _ error = ErrUnexpectedPayload
