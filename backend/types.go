package backend

import (
	"encoding/json"
	"errors"

	"github.com/hashicorp/go-multierror"
)

// Polled statuses the backend reports. A terminal status stops polling.
const (
	StatusPending    = "pending"
	StatusRunning    = "running"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
	StatusIndexed    = "indexed"
	StatusHITLReview = "hitl_review"
)

// TokenResponse is the primary credential issued by login and signup.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

func (t *TokenResponse) Validate() error {
	if t.AccessToken == "" {
		return errors.New("access_token is empty")
	}
	return nil
}

// AuthorizationURL is returned by the GitHub and Jira connect endpoints.
type AuthorizationURL struct {
	URL string `json:"authorization_url"`
}

func (a *AuthorizationURL) Validate() error {
	if a.URL == "" {
		return errors.New("authorization_url is empty")
	}
	return nil
}

// GitHubUser is the provider identity attached to a code exchange.
type GitHubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// DisplayIdentity prefers the email and falls back to the login handle.
func (u GitHubUser) DisplayIdentity() string {
	if u.Email != "" {
		return u.Email
	}
	return u.Login
}

// GitHubExchange is the result of exchanging an OAuth code, for both the
// primary-auth and the repo-access flow.
type GitHubExchange struct {
	AccessToken string     `json:"access_token"`
	User        GitHubUser `json:"user"`
}

func (g *GitHubExchange) Validate() error {
	var result *multierror.Error
	if g.AccessToken == "" {
		result = multierror.Append(result, errors.New("access_token is empty"))
	}
	if g.User.Login == "" && g.User.Email == "" {
		result = multierror.Append(result, errors.New("user has neither login nor email"))
	}
	return result.ErrorOrNil()
}

// User is the authenticated profile from /auth/me.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// Repo is a listable source repository. Fields are pass-through from the
// backend contract; the console only filters and displays them.
type Repo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Private     bool   `json:"private"`
	Description string `json:"description"`
	Language    string `json:"language"`
	HTMLURL     string `json:"html_url"`
	UpdatedAt   string `json:"updated_at"`
}

type RepoList struct {
	Repos []Repo `json:"repos"`
	Total int    `json:"total"`
}

func (l *RepoList) Validate() error {
	if l.Repos == nil {
		return errors.New("repos is missing")
	}
	return nil
}

// IndexedRepo is one entry of an indexing acknowledgement.
type IndexedRepo struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Status   string `json:"status"`
}

type IndexAck struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Repos   []IndexedRepo `json:"repos"`
}

// IndexingStatus is the poll target for repository indexing.
type IndexingStatus struct {
	RepoID  int64  `json:"repo_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s IndexingStatus) Terminal() bool {
	return s.Status == StatusIndexed || s.Status == StatusCompleted || s.Status == StatusFailed
}

// Violation is a detected compliance violation awaiting review.
type Violation struct {
	ID          string `json:"id"`
	CaseID      string `json:"case_id"`
	RuleID      string `json:"rule_id"`
	Severity    string `json:"severity"`
	FilePath    string `json:"file_path"`
	LineNumber  int    `json:"line_number"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// Explanation is the human-in-the-loop explanation of one violation.
type Explanation struct {
	ViolationID string `json:"violation_id"`
	Explanation string `json:"explanation"`
}

// FixSuggestion is a proposed remediation for one violation.
type FixSuggestion struct {
	ViolationID   string `json:"violation_id"`
	SuggestedCode string `json:"suggested_code"`
	Explanation   string `json:"explanation"`
}

// JiraStatus is the server-side answer about the ticketing connection.
type JiraStatus struct {
	Connected bool   `json:"connected"`
	SiteURL   string `json:"site_url"`
	SiteName  string `json:"site_name"`
	ExpiresAt string `json:"expires_at"`
}

// JiraConnection is the result of completing the ticketing OAuth callback.
type JiraConnection struct {
	SiteName string `json:"site_name"`
	SiteURL  string `json:"site_url"`
}

// CreateTicketRequest creates a single Jira ticket from a violation.
type CreateTicketRequest struct {
	UserID      string `json:"user_id"`
	ViolationID string `json:"violation_id"`
	ProjectKey  string `json:"project_key"`
	IssueType   string `json:"issue_type"`
	Priority    string `json:"priority"`
	Assignee    string `json:"assignee,omitempty"`
}

func (r CreateTicketRequest) Validate() error {
	var result *multierror.Error
	if r.UserID == "" {
		result = multierror.Append(result, errors.New("user_id is required"))
	}
	if r.ViolationID == "" {
		result = multierror.Append(result, errors.New("violation_id is required"))
	}
	if r.ProjectKey == "" {
		result = multierror.Append(result, errors.New("project_key is required"))
	}
	return result.ErrorOrNil()
}

type JiraTicket struct {
	ID            string `json:"id"`
	JiraTicketID  string `json:"jira_ticket_id"`
	JiraTicketKey string `json:"jira_ticket_key"`
	JiraTicketURL string `json:"jira_ticket_url"`
	Status        string `json:"status"`
}

// BulkCreateRequest creates tickets for every violation of an audit case.
type BulkCreateRequest struct {
	UserID     string `json:"user_id"`
	CaseID     string `json:"case_id"`
	ProjectKey string `json:"project_key"`
	IssueType  string `json:"issue_type"`
	Priority   string `json:"priority"`
}

func (r BulkCreateRequest) Validate() error {
	var result *multierror.Error
	if r.UserID == "" {
		result = multierror.Append(result, errors.New("user_id is required"))
	}
	if r.CaseID == "" {
		result = multierror.Append(result, errors.New("case_id is required"))
	}
	if r.ProjectKey == "" {
		result = multierror.Append(result, errors.New("project_key is required"))
	}
	return result.ErrorOrNil()
}

type BulkTicket struct {
	JiraTicketKey string `json:"jira_ticket_key"`
	JiraTicketURL string `json:"jira_ticket_url"`
}

type BulkTicketResult struct {
	CreatedCount int          `json:"created_count"`
	Tickets      []BulkTicket `json:"tickets"`
}

// AuditRun acknowledges a started audit.
type AuditRun struct {
	CaseID  string `json:"case_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (a *AuditRun) Validate() error {
	if a.CaseID == "" {
		return errors.New("case_id is empty")
	}
	return nil
}

// AuditStatus is the poll target for a running audit case.
type AuditStatus struct {
	CaseID          string                     `json:"case_id"`
	RepoID          string                     `json:"repo_id"`
	Status          string                     `json:"status"`
	CurrentStep     int                        `json:"current_step"`
	WorkflowSteps   []string                   `json:"workflow_steps"`
	AgentOutputs    map[string]json.RawMessage `json:"agent_outputs"`
	ViolationsFound int                        `json:"violations_found"`
	HitlApproved    *bool                      `json:"hitl_approved"`
	CreatedAt       string                     `json:"created_at"`
	UpdatedAt       string                     `json:"updated_at"`
}

func (s *AuditStatus) Validate() error {
	var result *multierror.Error
	if s.CaseID == "" {
		result = multierror.Append(result, errors.New("case_id is empty"))
	}
	if s.Status == "" {
		result = multierror.Append(result, errors.New("status is empty"))
	}
	return result.ErrorOrNil()
}

func (s *AuditStatus) Terminal() bool {
	return s.Status == StatusCompleted || s.Status == StatusFailed
}

// RegulationMetadata describes the preloaded demo regulation.
type RegulationMetadata struct {
	RuleID         string `json:"rule_id"`
	Title          string `json:"title"`
	Category       string `json:"category"`
	Severity       string `json:"severity"`
	ChunkCount     int    `json:"chunk_count"`
	RegulatoryBody string `json:"regulatory_body"`
}

// PreloadResult acknowledges a demo regulation preload.
type PreloadResult struct {
	RuleID     string `json:"rule_id"`
	Title      string `json:"title"`
	ChunkCount int    `json:"chunk_count"`
	Status     string `json:"status"`
}

// JobStatus is the generic poll target for background jobs.
type JobStatus struct {
	JobID    string          `json:"job_id"`
	Status   string          `json:"status"`
	Progress int             `json:"progress"`
	Result   json.RawMessage `json:"result"`
	Error    string          `json:"error"`
}

func (s JobStatus) Terminal() bool {
	return s.Status == StatusCompleted || s.Status == StatusFailed
}
