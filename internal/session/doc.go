// Package session signs and verifies the two cookies prdash hands to the
// browser: the session itself (Codec) and the short-lived OAuth state
// binding (StateSigner). Both are compact HS256 JWS values.
//
// The server keeps no copy of either cookie. A cookie that fails to verify is
// treated as absent: a bad session decodes to the anonymous session and a bad
// state cookie fails the callback with domain.ErrStateMismatch.
package session
