package credstore

// Storage keys for the persisted credential material. The jira flag is
// stored as the literal strings "true"/"false".
const (
	KeyPrimaryToken  = "primary_token"
	KeyUserEmail     = "user_email"
	KeyGitHubToken   = "github_access_token"
	KeyJiraConnected = "jira_connected"
)

// Repo is durable key/value persistence for credentials across console
// restarts. Implementations are synchronous: a Set is visible to every
// subsequent Get in the same process. No expiry, no encryption.
type Repo interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}
