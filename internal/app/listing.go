package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/sufield/prdash/internal/domain"
)

// SortField selects the ordering key of a listing.
type SortField string

const (
	SortUpdated SortField = "updated"
	SortCreated SortField = "created"
	SortRepo    SortField = "repo"
	SortTitle   SortField = "title"
	SortNumber  SortField = "number"
)

// SortOrder is asc or desc.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// DraftFilter narrows a listing by draft state.
type DraftFilter string

const (
	DraftAny     DraftFilter = ""
	DraftOnly    DraftFilter = "only"
	DraftExclude DraftFilter = "exclude"
)

// ListOptions are the view-level controls over an aggregated list.
// The zero value keeps the aggregator's order and filters nothing.
type ListOptions struct {
	SortBy SortField
	Order  SortOrder
	Query  string
	Status domain.StatusState
	Review string // a ReviewDecision, or "none" for the empty decision
	Draft  DraftFilter
	Repo   string
}

// ReviewNoneParam selects pull requests without a review decision.
const ReviewNoneParam = "none"

// Validate rejects unknown enum values.
func (o ListOptions) Validate() error {
	switch o.SortBy {
	case "", SortUpdated, SortCreated, SortRepo, SortTitle, SortNumber:
	default:
		return fmt.Errorf("unknown sort %q", o.SortBy)
	}
	switch o.Order {
	case "", OrderAsc, OrderDesc:
	default:
		return fmt.Errorf("unknown order %q", o.Order)
	}
	switch o.Draft {
	case DraftAny, DraftOnly, DraftExclude:
	default:
		return fmt.Errorf("unknown draft filter %q", o.Draft)
	}
	return nil
}

// prSource adapts a slice of pull requests to fuzzy.Source.
type prSource []domain.PullRequest

func (s prSource) String(i int) string {
	pr := s[i]
	return fmt.Sprintf("%s %s %s #%d %s", pr.Title, pr.RepoName, pr.Author, pr.Number, pr.Branch)
}

func (s prSource) Len() int { return len(s) }

// ApplyListOptions filters, searches and sorts prs. The input is never
// mutated. Sorting is stable, so ties keep the incoming order.
func ApplyListOptions(prs []domain.PullRequest, o ListOptions) []domain.PullRequest {
	out := make([]domain.PullRequest, 0, len(prs))
	for _, pr := range prs {
		if keep(pr, o) {
			out = append(out, pr)
		}
	}

	if q := strings.TrimSpace(o.Query); q != "" {
		matches := fuzzy.FindFrom(q, prSource(out))
		idx := make([]int, 0, len(matches))
		for _, m := range matches {
			idx = append(idx, m.Index)
		}
		// fuzzy ranks by score; the listing keeps its own order.
		sort.Ints(idx)
		found := make([]domain.PullRequest, 0, len(idx))
		for _, i := range idx {
			found = append(found, out[i])
		}
		out = found
	}

	if less := lessFor(o.SortBy); less != nil {
		desc := o.Order != OrderAsc
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return less(out[j], out[i])
			}
			return less(out[i], out[j])
		})
	} else if o.Order == OrderAsc {
		// Aggregator order is updated desc; asc alone flips it.
		sort.SliceStable(out, func(i, j int) bool {
			return out[j].UpdatedAfter(out[i])
		})
	}

	return out
}

func keep(pr domain.PullRequest, o ListOptions) bool {
	if o.Status != "" && pr.StatusState != o.Status {
		return false
	}
	if o.Review != "" {
		want := domain.ReviewDecision(o.Review)
		if strings.EqualFold(o.Review, ReviewNoneParam) {
			want = domain.ReviewNone
		}
		if pr.ReviewDecision != want {
			return false
		}
	}
	switch o.Draft {
	case DraftOnly:
		if !pr.IsDraft {
			return false
		}
	case DraftExclude:
		if pr.IsDraft {
			return false
		}
	}
	if o.Repo != "" && !strings.EqualFold(pr.RepoName, o.Repo) {
		return false
	}
	return true
}

func lessFor(f SortField) func(a, b domain.PullRequest) bool {
	switch f {
	case SortUpdated:
		return func(a, b domain.PullRequest) bool { return b.UpdatedAfter(a) }
	case SortCreated:
		return func(a, b domain.PullRequest) bool { return b.CreatedAfter(a) }
	case SortRepo:
		return func(a, b domain.PullRequest) bool {
			return strings.ToLower(a.RepoName) < strings.ToLower(b.RepoName)
		}
	case SortTitle:
		return func(a, b domain.PullRequest) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case SortNumber:
		return func(a, b domain.PullRequest) bool { return a.Number < b.Number }
	default:
		return nil
	}
}
