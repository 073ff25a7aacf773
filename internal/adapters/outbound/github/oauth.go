package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sufield/prdash/internal/debug"
	"github.com/sufield/prdash/internal/domain"
	"github.com/sufield/prdash/internal/ports"
)

var errInjectedTokenFault = errors.New("injected token exchange fault")

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Code         string `json:"code"`
	RedirectURI  string `json:"redirect_uri,omitempty"`
}

type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	Scope            string `json:"scope"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// AuthCodeURL builds the provider authorization URL carrying state.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// ExchangeCode trades an authorization code for an access token with a single
// JSON POST to the token endpoint.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	if debug.Faults.ShouldFailTokenExchange() {
		return "", errInjectedTokenFault
	}

	body, err := json.Marshal(tokenRequest{
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		Code:         code,
		RedirectURI:  c.cfg.RedirectURL,
	})
	if err != nil {
		return "", fmt.Errorf("encode token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var tr tokenResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&tr); err != nil {
		return "", fmt.Errorf("%w: decode token response: %w", ports.ErrUnexpectedPayload, err)
	}
	if tr.AccessToken == "" {
		if tr.Error != "" {
			return "", fmt.Errorf("%w: %s", domain.ErrNoAccessToken, tr.Error)
		}
		return "", domain.ErrNoAccessToken
	}
	return tr.AccessToken, nil
}

// FetchProfile reads the authenticated user's login and avatar.
func (c *Client) FetchProfile(ctx context.Context, accessToken string) (ports.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.APIURL+"/user", nil)
	if err != nil {
		return ports.Profile{}, fmt.Errorf("failed to create profile request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.authed(ctx, accessToken).Do(req)
	if err != nil {
		return ports.Profile{}, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return ports.Profile{}, err
	}

	var p ports.Profile
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&p); err != nil {
		return ports.Profile{}, fmt.Errorf("%w: decode profile: %w", ports.ErrUnexpectedPayload, err)
	}
	if p.Login == "" {
		return ports.Profile{}, fmt.Errorf("%w: profile has no login", ports.ErrUnexpectedPayload)
	}
	return p, nil
}

var _ ports.OAuthProvider = (*Client)(nil)
