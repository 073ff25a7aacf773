package bg

// Sync runs each function in the calling goroutine and blocks until it returns.
type Sync struct{}

// Do executes fn immediately.
func (Sync) Do(fn func()) {
	fn()
}
