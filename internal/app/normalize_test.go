package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sufield/prdash/internal/app"
	"github.com/sufield/prdash/internal/domain"
	"github.com/sufield/prdash/internal/ports"
)

func rollup(states ...string) *ports.RawCommits {
	c := &ports.RawCommits{}
	for _, s := range states {
		c.Nodes = append(c.Nodes, ports.RawCommitNode{Commit: ports.RawCommit{
			StatusCheckRollup: &ports.RawStatusRollup{State: s},
		}})
	}
	return c
}

func TestNormalizeNode_Full(t *testing.T) {
	node := ports.RawNode{
		Title:          "Add feature",
		URL:            "https://github.com/o/r/pull/7",
		Number:         7,
		IsDraft:        true,
		CreatedAt:      "2024-01-01T00:00:00Z",
		UpdatedAt:      "2024-01-02T00:00:00Z",
		HeadRefName:    ptr("feature"),
		ReviewDecision: ptr("CHANGES_REQUESTED"),
		Repository:     &ports.RawRepository{NameWithOwner: "o/r"},
		Author:         &ports.RawActor{Login: "octocat", AvatarURL: "https://a/1"},
		Commits:        rollup("FAILURE"),
	}

	assert.Equal(t, domain.PullRequest{
		Title:          "Add feature",
		URL:            "https://github.com/o/r/pull/7",
		RepoName:       "o/r",
		Author:         "octocat",
		AuthorAvatar:   "https://a/1",
		CreatedAt:      "2024-01-01T00:00:00Z",
		UpdatedAt:      "2024-01-02T00:00:00Z",
		StatusState:    domain.StatusFailure,
		ReviewDecision: domain.ReviewChangesRequested,
		IsDraft:        true,
		Number:         7,
		Branch:         "feature",
	}, app.NormalizeNode(node))
}

func TestNormalizeNode_Defaults(t *testing.T) {
	tests := []struct {
		name  string
		node  ports.RawNode
		check func(t *testing.T, pr domain.PullRequest)
	}{
		{
			name: "missing author",
			node: ports.RawNode{URL: "u"},
			check: func(t *testing.T, pr domain.PullRequest) {
				assert.Equal(t, "unknown", pr.Author)
				assert.Equal(t, "", pr.AuthorAvatar)
			},
		},
		{
			name: "author with empty login",
			node: ports.RawNode{URL: "u", Author: &ports.RawActor{AvatarURL: "https://a/2"}},
			check: func(t *testing.T, pr domain.PullRequest) {
				assert.Equal(t, "unknown", pr.Author)
				assert.Equal(t, "https://a/2", pr.AuthorAvatar)
			},
		},
		{
			name: "missing branch",
			node: ports.RawNode{URL: "u"},
			check: func(t *testing.T, pr domain.PullRequest) {
				assert.Equal(t, "unknown", pr.Branch)
			},
		},
		{
			name: "empty branch",
			node: ports.RawNode{URL: "u", HeadRefName: ptr("")},
			check: func(t *testing.T, pr domain.PullRequest) {
				assert.Equal(t, "unknown", pr.Branch)
			},
		},
		{
			name: "no commits",
			node: ports.RawNode{URL: "u"},
			check: func(t *testing.T, pr domain.PullRequest) {
				assert.Equal(t, domain.StatusNone, pr.StatusState)
			},
		},
		{
			name: "commit without rollup",
			node: ports.RawNode{URL: "u", Commits: &ports.RawCommits{Nodes: []ports.RawCommitNode{{}}}},
			check: func(t *testing.T, pr domain.PullRequest) {
				assert.Equal(t, domain.StatusNone, pr.StatusState)
			},
		},
		{
			name: "last commit wins",
			node: ports.RawNode{URL: "u", Commits: rollup("FAILURE", "PENDING")},
			check: func(t *testing.T, pr domain.PullRequest) {
				assert.Equal(t, domain.StatusPending, pr.StatusState)
			},
		},
		{
			name: "success lower-cased",
			node: ports.RawNode{URL: "u", Commits: rollup("SUCCESS")},
			check: func(t *testing.T, pr domain.PullRequest) {
				assert.Equal(t, domain.StatusSuccess, pr.StatusState)
			},
		},
		{
			name: "missing review decision",
			node: ports.RawNode{URL: "u"},
			check: func(t *testing.T, pr domain.PullRequest) {
				assert.Equal(t, domain.ReviewNone, pr.ReviewDecision)
			},
		},
		{
			name: "missing repository",
			node: ports.RawNode{URL: "u"},
			check: func(t *testing.T, pr domain.PullRequest) {
				assert.Equal(t, "", pr.RepoName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, app.NormalizeNode(tt.node))
		})
	}
}
