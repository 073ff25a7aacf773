package app_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sufield/prdash/internal/ports"
)

// MockSearchClient is a mock implementation of ports.SearchClient for testing
type MockSearchClient struct {
	mock.Mock
}

func (m *MockSearchClient) SearchPage(ctx context.Context, accessToken, query string, cursor *string) (ports.SearchPage, error) {
	args := m.Called(ctx, accessToken, query, cursor)
	return args.Get(0).(ports.SearchPage), args.Error(1)
}

// MockOAuthProvider is a mock implementation of ports.OAuthProvider for testing
type MockOAuthProvider struct {
	mock.Mock
}

func (m *MockOAuthProvider) AuthCodeURL(state string) string {
	return m.Called(state).String(0)
}

func (m *MockOAuthProvider) ExchangeCode(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

func (m *MockOAuthProvider) FetchProfile(ctx context.Context, accessToken string) (ports.Profile, error) {
	args := m.Called(ctx, accessToken)
	return args.Get(0).(ports.Profile), args.Error(1)
}

// MockStateSigner is a mock implementation of ports.StateSigner for testing
type MockStateSigner struct {
	mock.Mock
}

func (m *MockStateSigner) Issue() (string, string, error) {
	args := m.Called()
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStateSigner) Verify(cookie, state string) error {
	return m.Called(cookie, state).Error(0)
}

func ptr(s string) *string { return &s }

func prNode(url, updated string) ports.RawNode {
	return ports.RawNode{
		Title:      "PR " + url,
		URL:        url,
		UpdatedAt:  updated,
		CreatedAt:  "2024-01-01T00:00:00Z",
		Repository: &ports.RawRepository{NameWithOwner: "o/r"},
		Author:     &ports.RawActor{Login: "octocat"},
	}
}

func lastPage(nodes ...ports.RawNode) ports.SearchPage {
	return ports.SearchPage{Nodes: nodes}
}

func morePage(cursor string, nodes ...ports.RawNode) ports.SearchPage {
	return ports.SearchPage{Nodes: nodes, HasNextPage: true, EndCursor: ptr(cursor)}
}
