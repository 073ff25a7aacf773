//go:build !debug

package assert

// Invariant is a no-op in production builds.
func Invariant(ok bool, msg string) {}

// Enabled reports whether invariants are checked in this build.
func Enabled() bool { return false }
