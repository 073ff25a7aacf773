// Package ports defines the inbound and outbound ports (interfaces and types)
// used to decouple the core domain and application logic from adapters.
//
// Purpose
// -------
// Ports are the boundary between the domain/application and the
// infrastructure (adapters). Interfaces represent the contracts that
// adapters must satisfy. Keep these interfaces stable and focused; adapters
// implement concrete behavior using external libraries (oauth2, jwt, chi).
//
// Files and responsibilities
// --------------------------
//   - inbound.go
//   - PullRequestSource and Authenticator, implemented by the app layer and
//     driven by the HTTP adapter.
//   - outbound.go
//   - SearchClient, OAuthProvider, SessionCodec and StateSigner, implemented
//     by the GitHub adapter and the session package.
//   - Each interface includes an "Error Contract" in comments describing
//     errors returned by implementations.
//   - types.go
//   - Transport objects crossing the boundary: SearchPage and the RawNode
//     family, Profile, AuthStart and CallbackParams.
//
// notes
// ------------
//   - RawNode mirrors the provider's nullable shape on purpose. Only the app
//     layer's normalization turns it into a domain.PullRequest.
package ports
