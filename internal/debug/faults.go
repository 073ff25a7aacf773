package debug

import (
	"fmt"
	"sync"
)

// FaultProfile defines faults that can be injected for testing.
// All faults are one-shot (consumed after check).
type FaultProfile struct {
	mu sync.RWMutex

	// FailNextSearchStatus forces this HTTP status on the next search page (one-shot, 0 = off)
	FailNextSearchStatus int

	// FailNextTokenExchange makes the next code exchange fail (one-shot)
	FailNextTokenExchange bool
}

// Faults is the global fault profile
var Faults = &FaultProfile{}

// SetFailNextSearchStatus arms a forced search status.
// Returns an error unless status is 0 (disarm) or in 400..599.
func (f *FaultProfile) SetFailNextSearchStatus(status int) error {
	if status != 0 && (status < 400 || status > 599) {
		return fmt.Errorf("status must be 0 or in 400..599, got %d", status)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FailNextSearchStatus = status
	return nil
}

// TakeSearchStatus returns and clears the forced search status (0 if unarmed).
func (f *FaultProfile) TakeSearchStatus() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	status := f.FailNextSearchStatus
	f.FailNextSearchStatus = 0
	return status
}

// SetFailNextTokenExchange enables/disables token exchange failure
func (f *FaultProfile) SetFailNextTokenExchange(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FailNextTokenExchange = enabled
}

// ShouldFailTokenExchange checks and consumes the token exchange flag
func (f *FaultProfile) ShouldFailTokenExchange() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailNextTokenExchange {
		f.FailNextTokenExchange = false // One-shot
		return true
	}
	return false
}

// Reset clears all fault flags
func (f *FaultProfile) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FailNextSearchStatus = 0
	f.FailNextTokenExchange = false
}

// Snapshot returns a point-in-time view of all faults.
func (f *FaultProfile) Snapshot() map[string]any {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return map[string]any{
		"fail_next_search_status":  f.FailNextSearchStatus,
		"fail_next_token_exchange": f.FailNextTokenExchange,
	}
}
