package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/sufield/prdash/internal/domain"
)

// Default endpoints for github.com.
const (
	DefaultAuthorizeURL = "https://github.com/login/oauth/authorize"
	DefaultTokenURL     = "https://github.com/login/oauth/access_token"
	DefaultAPIURL       = "https://api.github.com"
	DefaultGraphQLURL   = "https://api.github.com/graphql"

	DefaultPageSize = 50
	DefaultTimeout  = 30 * time.Second

	// maxBodyBytes caps how much of any provider response is read.
	maxBodyBytes = 8 << 20
)

// DefaultScopes grants read access to private repositories and org membership.
var DefaultScopes = []string{"read:org", "repo"}

// Config describes the GitHub application and endpoints.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string // optional; GitHub falls back to the app's registered URL
	Scopes       []string

	AuthorizeURL string
	TokenURL     string
	APIURL       string
	GraphQLURL   string

	PageSize int
	Timeout  time.Duration
}

func (c *Config) applyDefaults() {
	if len(c.Scopes) == 0 {
		c.Scopes = DefaultScopes
	}
	if c.AuthorizeURL == "" {
		c.AuthorizeURL = DefaultAuthorizeURL
	}
	if c.TokenURL == "" {
		c.TokenURL = DefaultTokenURL
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")
	if c.GraphQLURL == "" {
		c.GraphQLURL = DefaultGraphQLURL
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
}

// Client talks to GitHub on behalf of prdash.
type Client struct {
	cfg   Config
	http  *http.Client
	oauth *oauth2.Config
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the base HTTP client (tests use httptest clients).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a GitHub client.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("github client id is required")
	}
	if cfg.ClientSecret == "" {
		return nil, fmt.Errorf("github client secret is required")
	}
	cfg.applyDefaults()

	c := &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
			Timeout: cfg.Timeout,
		},
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthorizeURL,
				TokenURL: cfg.TokenURL,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// PageSize returns the number of nodes requested per search page.
func (c *Client) PageSize() int { return c.cfg.PageSize }

// authed returns a client that sends accessToken as a bearer credential.
func (c *Client) authed(ctx context.Context, accessToken string) *http.Client {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)
	hc := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))
	hc.Timeout = c.http.Timeout
	return hc
}

// checkStatus turns a non-2xx response into a *domain.TransportError.
// The body is drained so the connection can be reused.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	return &domain.TransportError{Status: resp.StatusCode}
}
