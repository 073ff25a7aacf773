package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sufield/prdash/internal/assert"
	"github.com/sufield/prdash/internal/debug"
	"github.com/sufield/prdash/internal/domain"
	"github.com/sufield/prdash/internal/ports"
)

// DefaultSearchQuery is the reference policy: open pull requests involving the
// authenticated account, outside archived repositories.
const DefaultSearchQuery = "is:open is:pr involves:@me archived:false"

// AggregatorConfig configures the pull request aggregation walk.
type AggregatorConfig struct {
	// Queries are walked in declared order. Empty means DefaultSearchQuery.
	Queries []string

	// Concurrency bounds how many queries are walked at once.
	// Pages of one query are always fetched sequentially. Values < 1 mean 1.
	Concurrency int
}

// Aggregator implements ports.PullRequestSource over a paginated search API.
//
// Each FetchOpenPRs call owns its accumulators; the only state shared across
// calls is the read-only configuration and the run counters used by the
// debug snapshot.
type Aggregator struct {
	search      ports.SearchClient
	queries     []string
	concurrency int

	runs         atomic.Int64
	failures     atomic.Int64
	lastDuration atomic.Int64
	lastCount    atomic.Int64
}

// NewAggregator creates an aggregator over the given search client.
func NewAggregator(search ports.SearchClient, cfg AggregatorConfig) (*Aggregator, error) {
	if search == nil {
		return nil, fmt.Errorf("search client is required")
	}

	queries := make([]string, 0, len(cfg.Queries))
	for _, q := range cfg.Queries {
		if q != "" {
			queries = append(queries, q)
		}
	}
	if len(queries) == 0 {
		queries = []string{DefaultSearchQuery}
	}

	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &Aggregator{
		search:      search,
		queries:     queries,
		concurrency: concurrency,
	}, nil
}

// Queries returns a copy of the configured search queries.
func (a *Aggregator) Queries() []string {
	return append([]string(nil), a.queries...)
}

// FetchOpenPRs walks every configured query to exhaustion, merges the nodes,
// drops duplicate URLs, normalizes and returns them sorted by UpdatedAt
// descending.
//
// The call is all or nothing: the first failing page aborts the whole walk and
// nothing merged so far is returned. Every failure is reported as a
// *domain.TransportError or *domain.QueryError.
func (a *Aggregator) FetchOpenPRs(ctx context.Context, accessToken string) ([]domain.PullRequest, error) {
	if accessToken == "" {
		return nil, domain.ErrNoCredential
	}

	start := time.Now()
	prs, err := a.fetch(ctx, accessToken)

	a.runs.Add(1)
	a.lastDuration.Store(int64(time.Since(start)))
	if err != nil {
		a.failures.Add(1)
		a.lastCount.Store(0)
		debug.GetLogger().Debugf("aggregation failed after %s: %v", time.Since(start), err)
		return nil, err
	}
	a.lastCount.Store(int64(len(prs)))
	return prs, nil
}

func (a *Aggregator) fetch(ctx context.Context, accessToken string) ([]domain.PullRequest, error) {
	results := make([][]ports.RawNode, len(a.queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, query := range a.queries {
		g.Go(func() error {
			// A previous walk already failed; issue no further requests.
			if gctx.Err() != nil {
				return nil
			}
			nodes, err := a.walk(gctx, accessToken, query)
			if err != nil {
				return err
			}
			results[i] = nodes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, classify(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, classify(err)
	}

	seen := make(map[string]struct{})
	prs := make([]domain.PullRequest, 0)
	dropped := 0
	for _, nodes := range results {
		for _, node := range nodes {
			if node.URL == "" {
				dropped++
				continue
			}
			if _, dup := seen[node.URL]; dup {
				dropped++
				continue
			}
			seen[node.URL] = struct{}{}
			prs = append(prs, NormalizeNode(node))
		}
	}

	sort.SliceStable(prs, func(i, j int) bool {
		return prs[i].UpdatedAfter(prs[j])
	})

	assert.Invariant(len(seen) == len(prs), "aggregated pull request URLs must be unique")
	assert.Invariant(sortedByUpdated(prs), "aggregated pull requests must be sorted by updatedAt descending")

	debug.GetLogger().Debugf("aggregated %d pull requests from %d queries (%d nodes dropped)", len(prs), len(a.queries), dropped)
	return prs, nil
}

// walk pages through one query until the continuation flag is false.
func (a *Aggregator) walk(ctx context.Context, accessToken, query string) (nodes []ports.RawNode, err error) {
	defer func() {
		if r := recover(); r != nil {
			nodes = nil
			err = &domain.QueryError{Message: fmt.Sprintf("search walk panicked: %v", r)}
		}
	}()

	var cursor *string
	for page := 1; ; page++ {
		result, err := a.search.SearchPage(ctx, accessToken, query, cursor)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, result.Nodes...)
		debug.GetLogger().Debugf("query %q page %d: %d nodes, hasNextPage=%v", query, page, len(result.Nodes), result.HasNextPage)

		if !result.HasNextPage {
			return nodes, nil
		}
		if result.EndCursor == nil || (cursor != nil && *cursor == *result.EndCursor) {
			return nil, &domain.QueryError{Message: fmt.Sprintf("pagination cursor did not advance on page %d", page)}
		}
		cursor = result.EndCursor
	}
}

// classify converts any failure into the aggregation error taxonomy.
func classify(err error) error {
	var te *domain.TransportError
	if errors.As(err, &te) {
		return te
	}
	var qe *domain.QueryError
	if errors.As(err, &qe) {
		return qe
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &domain.TransportError{Err: err}
	}
	return &domain.QueryError{Message: err.Error()}
}

func sortedByUpdated(prs []domain.PullRequest) bool {
	for i := 1; i < len(prs); i++ {
		if prs[i].UpdatedAfter(prs[i-1]) {
			return false
		}
	}
	return true
}

// SnapshotData implements debug.Introspector.
func (a *Aggregator) SnapshotData(_ context.Context) debug.Snapshot {
	return debug.Snapshot{
		Mode:    debug.Mode(),
		Queries: a.Queries(),
		Aggregator: debug.AggregatorView{
			Concurrency:        a.concurrency,
			Runs:               a.runs.Load(),
			Failures:           a.failures.Load(),
			LastDurationMillis: time.Duration(a.lastDuration.Load()).Milliseconds(),
			LastResultSize:     a.lastCount.Load(),
		},
	}
}

var (
	_ ports.PullRequestSource = (*Aggregator)(nil)
	_ debug.Introspector      = (*Aggregator)(nil)
)
