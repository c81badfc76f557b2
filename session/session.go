package session

import (
	"sync"

	"github.com/complyatlas/console/credstore"
)

// Session holds the console operator's authentication and connection state.
// Three independent source facts (primary token, GitHub token, jira flag)
// combine into derived capability flags; the flags are never stored, only
// recomputed from the sources on each read.
//
// All mutation goes through the four setters so that the credential store
// and the in-memory state never diverge.
type Session struct {
	mu    sync.RWMutex
	store credstore.Repo

	primaryToken  string
	userEmail     string
	githubToken   string
	jiraConnected bool
}

// New builds a Session from whatever the credential store currently holds.
// Construction completes before the server accepts requests, so guards
// never observe a half-loaded session.
func New(store credstore.Repo) *Session {
	s := &Session{store: store}

	s.primaryToken, _ = store.Get(credstore.KeyPrimaryToken)
	s.userEmail, _ = store.Get(credstore.KeyUserEmail)
	s.githubToken, _ = store.Get(credstore.KeyGitHubToken)
	jira, _ := store.Get(credstore.KeyJiraConnected)
	s.jiraConnected = jira == "true"

	return s
}

// SetPrimaryAuth unconditionally overwrites the primary credential and the
// display identity. Token and email are always set together. No validation
// of the token format is performed.
func (s *Session) SetPrimaryAuth(token, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.primaryToken = token
	s.userEmail = email
	s.store.Set(credstore.KeyPrimaryToken, token)
	s.store.Set(credstore.KeyUserEmail, email)
}

// SetGitHubConnection overwrites the secondary repository-access token.
// Primary fields are untouched.
func (s *Session) SetGitHubConnection(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.githubToken = token
	s.store.Set(credstore.KeyGitHubToken, token)
}

// SetJiraConnection records whether a ticketing OAuth handshake has
// succeeded. The authoritative state lives server-side; this is a local
// cache of the last known answer.
func (s *Session) SetJiraConnection(connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jiraConnected = connected
	if connected {
		s.store.Set(credstore.KeyJiraConnected, "true")
	} else {
		s.store.Set(credstore.KeyJiraConnected, "false")
	}
}

// Logout clears every field and every persisted key. Navigation back to
// the sign-in screen is the caller's responsibility; the state machine
// itself performs no redirects.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.primaryToken = ""
	s.userEmail = ""
	s.githubToken = ""
	s.jiraConnected = false

	s.store.Remove(credstore.KeyPrimaryToken)
	s.store.Remove(credstore.KeyUserEmail)
	s.store.Remove(credstore.KeyGitHubToken)
	s.store.Remove(credstore.KeyJiraConnected)
}

func (s *Session) PrimaryToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.primaryToken
}

func (s *Session) UserEmail() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userEmail
}

func (s *Session) GitHubToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.githubToken
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.primaryToken != ""
}

func (s *Session) HasGitHub() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.githubToken != ""
}

func (s *Session) HasJira() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jiraConnected
}

// HasAllConnections reports whether both secondary connections are in
// place. Scanning is gated on this.
func (s *Session) HasAllConnections() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.githubToken != "" && s.jiraConnected
}
