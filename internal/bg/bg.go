// Package bg runs the process's own background work (the HTTP listener and the
// debug server) behind one switch, so tests can run it inline.
package bg

// Runner executes functions, either synchronously or asynchronously.
type Runner interface {
	// Do executes the given function.
	Do(fn func())
}

// Errc runs fn through r and delivers its result on a buffered channel.
// The channel receives exactly one value and is never closed.
func Errc(r Runner, fn func() error) <-chan error {
	errc := make(chan error, 1)
	r.Do(func() {
		errc <- fn()
	})
	return errc
}
