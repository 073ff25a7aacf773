package domain

import "time"

// UnknownValue is the sentinel used when GitHub omits an author or branch.
const UnknownValue = "unknown"

// StatusState is the aggregated check state of a pull request's head commit.
type StatusState string

const (
	StatusSuccess StatusState = "success"
	StatusFailure StatusState = "failure"
	StatusPending StatusState = "pending"
	StatusNone    StatusState = "none"
)

// ReviewDecision mirrors GitHub's review decision. The empty value means
// no decision has been made yet.
type ReviewDecision string

const (
	ReviewApproved         ReviewDecision = "APPROVED"
	ReviewChangesRequested ReviewDecision = "CHANGES_REQUESTED"
	ReviewRequired         ReviewDecision = "REVIEW_REQUIRED"
	ReviewNone             ReviewDecision = ""
)

// PullRequest is one normalized open pull request.
//
// Values are built by the aggregator's normalization step and are not
// mutated afterwards. URL is unique within a single aggregation result.
type PullRequest struct {
	Title          string         `json:"title"`
	URL            string         `json:"url"`
	RepoName       string         `json:"repoName"`
	Author         string         `json:"author"`
	AuthorAvatar   string         `json:"authorAvatar"`
	CreatedAt      string         `json:"createdAt"`
	UpdatedAt      string         `json:"updatedAt"`
	StatusState    StatusState    `json:"statusState"`
	ReviewDecision ReviewDecision `json:"reviewDecision"`
	IsDraft        bool           `json:"isDraft"`
	Number         int            `json:"number"`
	Branch         string         `json:"branch"`
}

// Updated parses UpdatedAt. ok is false when the timestamp is not RFC 3339.
func (p PullRequest) Updated() (t time.Time, ok bool) {
	return parseTimestamp(p.UpdatedAt)
}

// Created parses CreatedAt. ok is false when the timestamp is not RFC 3339.
func (p PullRequest) Created() (t time.Time, ok bool) {
	return parseTimestamp(p.CreatedAt)
}

func parseTimestamp(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// UpdatedAfter reports whether p was updated strictly after other.
// Unparseable timestamps fall back to lexical comparison, which agrees with
// chronological order for well-formed ISO-8601 UTC strings.
func (p PullRequest) UpdatedAfter(other PullRequest) bool {
	return timestampAfter(p.UpdatedAt, other.UpdatedAt)
}

// CreatedAfter reports whether p was created strictly after other.
func (p PullRequest) CreatedAfter(other PullRequest) bool {
	return timestampAfter(p.CreatedAt, other.CreatedAt)
}

func timestampAfter(a, b string) bool {
	ta, okA := parseTimestamp(a)
	tb, okB := parseTimestamp(b)
	if okA && okB {
		return ta.After(tb)
	}
	return a > b
}
