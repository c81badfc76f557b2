package backend

import (
	"context"
	"net/http"
)

// Violation review statuses accepted by UpdateViolation.
const (
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
	ReviewIgnored  = "ignored"
)

// PendingViolations lists violations awaiting human review.
func (c *Client) PendingViolations(ctx context.Context, token string) ([]Violation, error) {
	var violations []Violation
	if err := c.doJSON(ctx, token, http.MethodGet, "/violations/pending", nil, nil, &violations); err != nil {
		return nil, err
	}
	return violations, nil
}

type violationUpdate struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// UpdateViolation records a review decision (approve/reject/ignore).
func (c *Client) UpdateViolation(ctx context.Context, token, violationID, status, note string) (*Violation, error) {
	var updated Violation
	body := violationUpdate{Status: status, Note: note}
	if err := c.doJSON(ctx, token, http.MethodPatch, "/violations/"+violationID, nil, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

type explainRequest struct {
	ViolationID string `json:"violation_id"`
	UserQuery   string `json:"user_query"`
}

// ExplainViolation asks the backend for a narrative explanation. An empty
// query falls back to the generic prompt.
func (c *Client) ExplainViolation(ctx context.Context, violationID, userQuery string) (*Explanation, error) {
	if userQuery == "" {
		userQuery = "Explain this violation in detail"
	}

	var explanation Explanation
	body := explainRequest{ViolationID: violationID, UserQuery: userQuery}
	if err := c.doJSON(ctx, "", http.MethodPost, "/hitl/explain", nil, body, &explanation); err != nil {
		return nil, err
	}
	return &explanation, nil
}

type suggestFixRequest struct {
	ViolationID string `json:"violation_id"`
}

// SuggestFix asks the backend for a remediation proposal.
func (c *Client) SuggestFix(ctx context.Context, violationID string) (*FixSuggestion, error) {
	var suggestion FixSuggestion
	body := suggestFixRequest{ViolationID: violationID}
	if err := c.doJSON(ctx, "", http.MethodPost, "/hitl/suggest_fix", nil, body, &suggestion); err != nil {
		return nil, err
	}
	return &suggestion, nil
}
