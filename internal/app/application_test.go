package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufield/prdash/internal/app"
	"github.com/sufield/prdash/internal/config"
	"github.com/sufield/prdash/internal/debug"
)

func testConfig() *config.Config {
	return &config.Config{
		GitHub: config.GitHubSection{
			ClientID:     "cid",
			ClientSecret: "csecret",
			Timeout:      time.Second,
		},
		Session: config.SessionSection{
			Secret:     "0123456789abcdef0123456789abcdef",
			CookieName: "prdash_session",
			Validity:   time.Hour,
		},
		Dashboard: config.DashboardSection{
			Queries:     []string{"is:open is:pr author:@me", "is:open is:pr review-requested:@me"},
			PageSize:    20,
			Concurrency: 2,
		},
	}
}

func TestBootstrap(t *testing.T) {
	a, err := app.Bootstrap(testConfig())
	require.NoError(t, err)

	assert.NotNil(t, a.GitHub)
	assert.NotNil(t, a.Handshake)
	assert.NotNil(t, a.Sessions)
	assert.NotNil(t, a.State)
	assert.Equal(t, 20, a.GitHub.PageSize())
	assert.Equal(t, time.Hour, a.Sessions.Validity())

	snap := a.Aggregator.SnapshotData(context.Background())
	assert.Equal(t, 2, snap.Aggregator.Concurrency)
	assert.Len(t, snap.Queries, 2)
}

func TestBootstrap_SingleThreadedDebug(t *testing.T) {
	prev := debug.Active
	t.Cleanup(func() { debug.Active = prev })
	debug.Active.SingleThreaded = true

	a, err := app.Bootstrap(testConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, a.Aggregator.SnapshotData(context.Background()).Aggregator.Concurrency)
}

func TestBootstrap_Errors(t *testing.T) {
	_, err := app.Bootstrap(nil)
	assert.Error(t, err)

	cfg := testConfig()
	cfg.Session.Secret = "short"
	_, err = app.Bootstrap(cfg)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.GitHub.ClientID = ""
	_, err = app.Bootstrap(cfg)
	assert.Error(t, err)
}
