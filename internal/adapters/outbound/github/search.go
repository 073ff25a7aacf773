package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sufield/prdash/internal/debug"
	"github.com/sufield/prdash/internal/domain"
	"github.com/sufield/prdash/internal/ports"
)

const searchQuery = `query($query: String!, $first: Int!, $cursor: String) {
  search(query: $query, type: ISSUE, first: $first, after: $cursor) {
    pageInfo { hasNextPage endCursor }
    nodes {
      ... on PullRequest {
        title
        url
        number
        isDraft
        createdAt
        updatedAt
        headRefName
        reviewDecision
        repository { nameWithOwner }
        author { login avatarUrl }
        commits(last: 1) { nodes { commit { statusCheckRollup { state } } } }
      }
    }
  }
}`

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type searchEnvelope struct {
	Data *struct {
		Search *struct {
			PageInfo struct {
				HasNextPage bool    `json:"hasNextPage"`
				EndCursor   *string `json:"endCursor"`
			} `json:"pageInfo"`
			Nodes []ports.RawNode `json:"nodes"`
		} `json:"search"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

// SearchPage fetches one page of query starting after cursor (nil = first page).
func (c *Client) SearchPage(ctx context.Context, accessToken, query string, cursor *string) (ports.SearchPage, error) {
	if status := debug.Faults.TakeSearchStatus(); status != 0 {
		debug.GetLogger().Debugf("fault injected: search page answers HTTP %d", status)
		return ports.SearchPage{}, &domain.TransportError{Status: status}
	}

	body, err := json.Marshal(graphqlRequest{
		Query: searchQuery,
		Variables: map[string]any{
			"query":  query,
			"first":  c.cfg.PageSize,
			"cursor": cursor,
		},
	})
	if err != nil {
		return ports.SearchPage{}, fmt.Errorf("encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.GraphQLURL, bytes.NewReader(body))
	if err != nil {
		return ports.SearchPage{}, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.authed(ctx, accessToken).Do(req)
	if err != nil {
		return ports.SearchPage{}, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return ports.SearchPage{}, err
	}

	var env searchEnvelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&env); err != nil {
		return ports.SearchPage{}, fmt.Errorf("%w: decode search response: %w", ports.ErrUnexpectedPayload, err)
	}
	if len(env.Errors) > 0 {
		return ports.SearchPage{}, &domain.QueryError{Message: env.Errors[0].Message}
	}
	if env.Data == nil || env.Data.Search == nil {
		return ports.SearchPage{}, fmt.Errorf("%w: search response has no data.search", ports.ErrUnexpectedPayload)
	}

	s := env.Data.Search
	return ports.SearchPage{
		Nodes:       s.Nodes,
		HasNextPage: s.PageInfo.HasNextPage,
		EndCursor:   s.PageInfo.EndCursor,
	}, nil
}

var _ ports.SearchClient = (*Client)(nil)
