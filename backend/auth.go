package backend

import (
	"context"
	"net/http"
	"net/url"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges email/password for a primary access token.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	var token TokenResponse
	body := credentialsRequest{Email: email, Password: password}
	if err := c.doJSON(ctx, "", http.MethodPost, "/auth/login", nil, body, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Signup registers a new account and returns its primary access token.
func (c *Client) Signup(ctx context.Context, email, password string) (*TokenResponse, error) {
	var token TokenResponse
	body := credentialsRequest{Email: email, Password: password}
	if err := c.doJSON(ctx, "", http.MethodPost, "/auth/signup", nil, body, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Me fetches the authenticated profile.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	var user User
	if err := c.doJSON(ctx, token, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type authorizeRequest struct {
	RedirectURI string `json:"redirect_uri"`
	State       string `json:"state"`
}

// GitHubAuthorizeURL asks the backend for the GitHub OAuth authorization
// URL. The state value tags which flow the eventual callback belongs to.
func (c *Client) GitHubAuthorizeURL(ctx context.Context, redirectURI, state string) (*AuthorizationURL, error) {
	var auth AuthorizationURL
	body := authorizeRequest{RedirectURI: redirectURI, State: state}
	if err := c.doJSON(ctx, "", http.MethodPost, "/auth/github/authorize", nil, body, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// ExchangeGitHubCode completes the primary-auth GitHub flow: the returned
// token is a primary credential, not a repository-access token.
func (c *Client) ExchangeGitHubCode(ctx context.Context, code, redirectURI string) (*GitHubExchange, error) {
	query := url.Values{}
	query.Set("code", code)
	query.Set("redirect_uri", redirectURI)

	var exchange GitHubExchange
	if err := c.doJSON(ctx, "", http.MethodGet, "/auth/github/callback", query, nil, &exchange); err != nil {
		return nil, err
	}
	return &exchange, nil
}

type connectGitHubRequest struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri"`
}

// ConnectGitHub completes the secondary GitHub flow, yielding the
// repository-access token. Independent of primary auth even though both
// flows share the provider and the callback route.
func (c *Client) ConnectGitHub(ctx context.Context, code, redirectURI string) (*GitHubExchange, error) {
	var exchange GitHubExchange
	body := connectGitHubRequest{Code: code, RedirectURI: redirectURI}
	if err := c.doJSON(ctx, "", http.MethodPost, "/user/auth/github/callback", nil, body, &exchange); err != nil {
		return nil, err
	}
	return &exchange, nil
}
