package bg

// Async runs each function in a new goroutine. This is the production runner.
type Async struct{}

// Do executes fn in a new goroutine.
func (Async) Do(fn func()) {
	go fn()
}
