package flowrepo

import "time"

// Flow tags carried in the OAuth state parameter. GitHub serves two
// distinct flows through one provider and one callback route; the tag is
// what tells them apart when the redirect comes back.
const (
	FlowPrimary          = "primary_auth"
	FlowGitHubConnection = "github_connection"
	FlowJira             = "jira_connection"
)

type FlowState struct {
	Flow      string
	ReturnURL string
	CreatedAt time.Time
}

// Repo tracks outbound OAuth flow state and consumed authorization codes.
// ConsumeCode is the one-shot guard behind callback idempotency: it
// returns true exactly once per code, so a re-delivered redirect never
// triggers a second token exchange.
type Repo interface {
	Upsert(state string, flowState *FlowState) error
	Get(state string) (*FlowState, error)
	Delete(state string) error
	ConsumeCode(code string) bool
}
