package backend

import (
	"context"
	"net/http"
	"net/url"

	apperrors "github.com/complyatlas/console/internal/errors"
)

// JiraAuthorizeURL asks the backend for the ticketing OAuth URL.
func (c *Client) JiraAuthorizeURL(ctx context.Context, userID string) (*AuthorizationURL, error) {
	query := url.Values{}
	query.Set("user_id", userID)

	var auth AuthorizationURL
	if err := c.doJSON(ctx, "", http.MethodGet, "/api/jira/connect", query, nil, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// JiraStatus re-queries the authoritative connection state.
func (c *Client) JiraStatus(ctx context.Context, userID string) (*JiraStatus, error) {
	query := url.Values{}
	query.Set("user_id", userID)

	var status JiraStatus
	if err := c.doJSON(ctx, "", http.MethodGet, "/api/jira/status", query, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// CompleteJiraCallback forwards the code/state pair so the backend can
// finish the ticketing OAuth handshake.
func (c *Client) CompleteJiraCallback(ctx context.Context, code, state string) (*JiraConnection, error) {
	query := url.Values{}
	query.Set("code", code)
	query.Set("state", state)

	var connection JiraConnection
	if err := c.doJSON(ctx, "", http.MethodGet, "/api/jira/callback", query, nil, &connection); err != nil {
		return nil, err
	}
	return &connection, nil
}

// DisconnectJira revokes the ticketing connection server-side.
func (c *Client) DisconnectJira(ctx context.Context, userID string) error {
	query := url.Values{}
	query.Set("user_id", userID)

	return c.doJSON(ctx, "", http.MethodDelete, "/api/jira/disconnect", query, nil, nil)
}

// CreateJiraTicket creates one ticket from a reviewed violation.
func (c *Client) CreateJiraTicket(ctx context.Context, req CreateTicketRequest) (*JiraTicket, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrapf(err, "create ticket request")
	}

	var ticket JiraTicket
	if err := c.doJSON(ctx, "", http.MethodPost, "/api/jira/tickets", nil, req, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// BulkCreateJiraTickets creates tickets for every violation of a case.
func (c *Client) BulkCreateJiraTickets(ctx context.Context, req BulkCreateRequest) (*BulkTicketResult, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrapf(err, "bulk create request")
	}

	var result BulkTicketResult
	if err := c.doJSON(ctx, "", http.MethodPost, "/api/jira/tickets/bulk-create", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
