package app_test

import (
	"context"
	"fmt"
	mrand "math/rand"
	"os"
	"reflect"
	"strconv"
	"testing"
	"testing/quick"

	"github.com/sufield/prdash/internal/app"
	"github.com/sufield/prdash/internal/ports"
)

// pbtConfig returns the quick config; PBT_MAX_COUNT overrides the count.
func pbtConfig() *quick.Config {
	maxCount := 500
	if v := os.Getenv("PBT_MAX_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxCount = n
		}
	}
	return &quick.Config{MaxCount: maxCount}
}

// searchScript is a random set of queries, each a chain of pages.
type searchScript struct {
	Queries []string
	Pages   map[string][]ports.SearchPage
}

var pbtTimestamps = []string{
	"2024-01-01T00:00:00Z",
	"2024-01-01T00:00:00Z",
	"2024-02-10T08:30:00Z",
	"2024-03-05T12:00:00+02:00",
	"2024-03-05T10:00:00Z",
	"not-a-time",
}

func (searchScript) Generate(r *mrand.Rand, _ int) reflect.Value {
	s := searchScript{Pages: map[string][]ports.SearchPage{}}
	numQueries := 1 + r.Intn(3)
	for q := 0; q < numQueries; q++ {
		query := fmt.Sprintf("q%d", q)
		s.Queries = append(s.Queries, query)

		n := 1 + r.Intn(3)
		for p := 0; p < n; p++ {
			var nodes []ports.RawNode
			numNodes := r.Intn(5)
			for k := 0; k < numNodes; k++ {
				url := ""
				if r.Intn(8) != 0 {
					url = fmt.Sprintf("u%d", r.Intn(8))
				}
				nodes = append(nodes, prNode(url, pbtTimestamps[r.Intn(len(pbtTimestamps))]))
			}
			page := lastPage(nodes...)
			if p < n-1 {
				page = morePage(fmt.Sprintf("%s-c%d", query, p+1), nodes...)
			}
			s.Pages[query] = append(s.Pages[query], page)
		}
	}
	return reflect.ValueOf(s)
}

func (s searchScript) SearchPage(_ context.Context, _ string, query string, cursor *string) (ports.SearchPage, error) {
	idx := 0
	if cursor != nil {
		if _, err := fmt.Sscanf(*cursor, query+"-c%d", &idx); err != nil {
			return ports.SearchPage{}, err
		}
	}
	return s.Pages[query][idx], nil
}

func (s searchScript) nonEmptyURLs() map[string]bool {
	out := map[string]bool{}
	for _, pages := range s.Pages {
		for _, p := range pages {
			for _, n := range p.Nodes {
				if n.URL != "" {
					out[n.URL] = true
				}
			}
		}
	}
	return out
}

func TestProperty_AggregationIsDedupedSortedAndComplete(t *testing.T) {
	property := func(s searchScript) bool {
		a, err := app.NewAggregator(s, app.AggregatorConfig{Queries: s.Queries})
		if err != nil {
			return false
		}
		prs, err := a.FetchOpenPRs(context.Background(), "tok")
		if err != nil {
			return false
		}

		want := s.nonEmptyURLs()
		if len(prs) != len(want) {
			return false
		}
		seen := map[string]bool{}
		for i, pr := range prs {
			if !want[pr.URL] || seen[pr.URL] {
				return false
			}
			seen[pr.URL] = true
			if i > 0 && pr.UpdatedAfter(prs[i-1]) {
				return false
			}
		}
		return true
	}

	if err := quick.Check(property, pbtConfig()); err != nil {
		t.Error(err)
	}
}

func TestProperty_ConcurrencyDoesNotChangeResult(t *testing.T) {
	property := func(s searchScript) bool {
		seq, err := app.NewAggregator(s, app.AggregatorConfig{Queries: s.Queries, Concurrency: 1})
		if err != nil {
			return false
		}
		par, err := app.NewAggregator(s, app.AggregatorConfig{Queries: s.Queries, Concurrency: 3})
		if err != nil {
			return false
		}

		want, err1 := seq.FetchOpenPRs(context.Background(), "tok")
		got, err2 := par.FetchOpenPRs(context.Background(), "tok")
		return err1 == nil && err2 == nil && reflect.DeepEqual(want, got)
	}

	if err := quick.Check(property, pbtConfig()); err != nil {
		t.Error(err)
	}
}
