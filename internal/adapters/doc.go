// Package adapters contains infrastructure implementations of port interfaces.
//
// This package is the ADAPTER LAYER in hexagonal architecture - it implements
// the port interfaces defined in internal/ports using concrete technologies
// (chi, golang.org/x/oauth2, net/http). Adapters translate between the
// dashboard's application logic and the outside world.
//
// Hexagonal Architecture Boundaries:
//   - Adapters implement or drive: internal/ports interfaces
//   - Adapters import from: internal/domain, internal/ports, external libraries, standard library
//   - Adapters are instantiated: by internal/app.Bootstrap and the root prdash package
//   - Domain/App layers: NEVER import inbound adapters
//
// Adapter Organization
//
//   - inbound/   - Adapters that receive external requests
//   - outbound/  - Adapters that make external calls
//
// Inbound Adapters (Driving Adapters)
//
// Example: httpapi (inbound/httpapi/)
//   - Drives: ports.PullRequestSource, ports.Authenticator, ports.SessionCodec
//   - Technology: chi router and middleware, html/template
//   - Purpose: dashboard page, JSON listing, OAuth login/callback/logout
//   - Session: decoded once per request and stored in the request context
//
// Outbound Adapters (Driven Adapters)
//
// Example: github (outbound/github/)
//   - Implements: ports.SearchClient, ports.OAuthProvider
//   - Technology: GraphQL over net/http, golang.org/x/oauth2 for the
//     authorization URL and bearer transport
//   - External dependency: github.com or a GitHub Enterprise host
package adapters
