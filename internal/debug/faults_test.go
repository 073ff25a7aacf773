package debug

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaultProfile_SearchStatusOneShot(t *testing.T) {
	f := &FaultProfile{}
	require.NoError(t, f.SetFailNextSearchStatus(502))

	assert.Equal(t, 502, f.TakeSearchStatus())
	assert.Equal(t, 0, f.TakeSearchStatus(), "second take must see the fault consumed")
}

func TestFaultProfile_SearchStatusValidation(t *testing.T) {
	tests := []struct {
		status  int
		wantErr bool
	}{
		{0, false},
		{400, false},
		{599, false},
		{200, true},
		{399, true},
		{600, true},
		{-1, true},
	}

	for _, tt := range tests {
		f := &FaultProfile{}
		err := f.SetFailNextSearchStatus(tt.status)
		if tt.wantErr {
			assert.Error(t, err, "status %d", tt.status)
			assert.Equal(t, 0, f.TakeSearchStatus())
		} else {
			assert.NoError(t, err, "status %d", tt.status)
		}
	}
}

func TestFaultProfile_TokenExchangeOneShot(t *testing.T) {
	f := &FaultProfile{}
	f.SetFailNextTokenExchange(true)

	assert.True(t, f.ShouldFailTokenExchange())
	assert.False(t, f.ShouldFailTokenExchange())
}

func TestFaultProfile_ResetAndSnapshot(t *testing.T) {
	f := &FaultProfile{}
	require.NoError(t, f.SetFailNextSearchStatus(500))
	f.SetFailNextTokenExchange(true)

	snap := f.Snapshot()
	assert.Equal(t, 500, snap["fail_next_search_status"])
	assert.Equal(t, true, snap["fail_next_token_exchange"])

	f.Reset()
	snap = f.Snapshot()
	assert.Equal(t, 0, snap["fail_next_search_status"])
	assert.Equal(t, false, snap["fail_next_token_exchange"])
}

func TestFaultProfile_Concurrency(t *testing.T) {
	f := &FaultProfile{}
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = f.SetFailNextSearchStatus(500 + n%50)
			f.SetFailNextTokenExchange(n%2 == 0)
			_ = f.TakeSearchStatus()
			_ = f.ShouldFailTokenExchange()
			_ = f.Snapshot()
		}(i)
	}
	wg.Wait()
}
