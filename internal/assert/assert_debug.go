//go:build debug

package assert

import "fmt"

// Invariant panics with msg when ok is false. Use it for postconditions the
// code itself establishes, never for validating external input.
//
//	assert.Invariant(sortedByUpdated(prs), "aggregated pull requests must be sorted")
func Invariant(ok bool, msg string) {
	if !ok {
		panic(fmt.Sprintf("INVARIANT VIOLATION: %s", msg))
	}
}

// Enabled reports whether invariants are checked in this build.
func Enabled() bool { return true }
