package app

import (
	"strings"

	"github.com/sufield/prdash/internal/domain"
	"github.com/sufield/prdash/internal/ports"
)

// NormalizeNode maps a raw search node onto the canonical PullRequest.
//
// All defaulting lives here so that changes in the provider's payload shape
// only touch this function:
//   - missing author: Author "unknown", AuthorAvatar ""
//   - missing or empty head ref: Branch "unknown"
//   - status from the last commit's rollup, lower-cased; absent: "none"
//   - missing review decision: ""
func NormalizeNode(n ports.RawNode) domain.PullRequest {
	pr := domain.PullRequest{
		Title:          n.Title,
		URL:            n.URL,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
		IsDraft:        n.IsDraft,
		Number:         n.Number,
		Author:         domain.UnknownValue,
		Branch:         domain.UnknownValue,
		StatusState:    statusOf(n.Commits),
		ReviewDecision: domain.ReviewNone,
	}

	if n.Repository != nil {
		pr.RepoName = n.Repository.NameWithOwner
	}
	if n.Author != nil {
		pr.Author = n.Author.Login
		pr.AuthorAvatar = n.Author.AvatarURL
		if pr.Author == "" {
			pr.Author = domain.UnknownValue
		}
	}
	if n.HeadRefName != nil && *n.HeadRefName != "" {
		pr.Branch = *n.HeadRefName
	}
	if n.ReviewDecision != nil {
		pr.ReviewDecision = domain.ReviewDecision(*n.ReviewDecision)
	}

	return pr
}

// statusOf reads the rollup of the most recent commit. commits(last: 1)
// yields at most one node, but the last one wins if more are present.
func statusOf(c *ports.RawCommits) domain.StatusState {
	if c == nil || len(c.Nodes) == 0 {
		return domain.StatusNone
	}
	rollup := c.Nodes[len(c.Nodes)-1].Commit.StatusCheckRollup
	if rollup == nil || rollup.State == "" {
		return domain.StatusNone
	}
	return domain.StatusState(strings.ToLower(rollup.State))
}
