package backend

import (
	"context"
	"net/http"
)

type runAuditRequest struct {
	RepoID string `json:"repo_id"`
	UserID string `json:"user_id"`
}

// RunAudit starts a compliance audit for one indexed repository.
func (c *Client) RunAudit(ctx context.Context, repoID, userID string) (*AuditRun, error) {
	var run AuditRun
	body := runAuditRequest{RepoID: repoID, UserID: userID}
	if err := c.doJSON(ctx, "", http.MethodPost, "/mcp/run_audit", nil, body, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// AuditStatus polls a running audit case.
func (c *Client) AuditStatus(ctx context.Context, caseID string) (*AuditStatus, error) {
	var status AuditStatus
	if err := c.doJSON(ctx, "", http.MethodGet, "/mcp/audit_status/"+caseID, nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

type resumeAuditRequest struct {
	CaseID string `json:"case_id"`
}

// ResumeAudit continues an audit parked in human review.
func (c *Client) ResumeAudit(ctx context.Context, caseID string) error {
	body := resumeAuditRequest{CaseID: caseID}
	return c.doJSON(ctx, "", http.MethodPost, "/mcp/resume_audit", nil, body, nil)
}

// JobStatus polls a generic background job.
func (c *Client) JobStatus(ctx context.Context, jobID string) (*JobStatus, error) {
	var status JobStatus
	if err := c.doJSON(ctx, "", http.MethodGet, "/jobs/"+jobID+"/status", nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
