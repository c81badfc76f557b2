package session_test

import (
	"testing"

	"github.com/complyatlas/console/credstore"
	"github.com/complyatlas/console/credstore/repofakes"
	"github.com/complyatlas/console/session"
	"github.com/stretchr/testify/require"
)

const (
	testEmail = "a@b.com"
	testToken = "primary-token-1"
)

func TestNew_EmptyStore(t *testing.T) {
	s := session.New(repofakes.NewFakeCredRepo())

	require.False(t, s.IsAuthenticated())
	require.False(t, s.HasGitHub())
	require.False(t, s.HasJira())
	require.False(t, s.HasAllConnections())
	require.Empty(t, s.PrimaryToken())
	require.Empty(t, s.UserEmail())
}

func TestSetPrimaryAuth_Authenticates(t *testing.T) {
	store := repofakes.NewFakeCredRepo()
	s := session.New(store)

	s.SetPrimaryAuth(testToken, testEmail)

	require.True(t, s.IsAuthenticated())
	require.Equal(t, testToken, s.PrimaryToken())
	require.Equal(t, testEmail, s.UserEmail())

	// Both keys must land in the store, not just in memory.
	token, ok := store.Get(credstore.KeyPrimaryToken)
	require.True(t, ok)
	require.Equal(t, testToken, token)
	email, ok := store.Get(credstore.KeyUserEmail)
	require.True(t, ok)
	require.Equal(t, testEmail, email)
}

func TestSetPrimaryAuth_Overwrites(t *testing.T) {
	s := session.New(repofakes.NewFakeCredRepo())

	s.SetPrimaryAuth("old-token", "old@example.com")
	s.SetPrimaryAuth("new-token", "new@example.com")

	require.Equal(t, "new-token", s.PrimaryToken())
	require.Equal(t, "new@example.com", s.UserEmail())
}

func TestHasAllConnections_RequiresBoth(t *testing.T) {
	s := session.New(repofakes.NewFakeCredRepo())
	s.SetPrimaryAuth(testToken, testEmail)

	require.False(t, s.HasAllConnections(), "primary auth alone grants nothing")

	s.SetGitHubConnection("gh-token")
	require.True(t, s.HasGitHub())
	require.False(t, s.HasAllConnections(), "GitHub without Jira is not enough")

	s.SetJiraConnection(true)
	require.True(t, s.HasJira())
	require.True(t, s.HasAllConnections())

	s.SetJiraConnection(false)
	require.False(t, s.HasJira())
	require.False(t, s.HasAllConnections())
}

func TestGitHubConnection_IndependentOfPrimary(t *testing.T) {
	s := session.New(repofakes.NewFakeCredRepo())

	s.SetGitHubConnection("gh-token")

	require.True(t, s.HasGitHub())
	require.False(t, s.IsAuthenticated(), "repo token must not authenticate the session")
	require.Empty(t, s.PrimaryToken())
}

func TestLogout_ClearsEverything(t *testing.T) {
	store := repofakes.NewFakeCredRepo()
	s := session.New(store)
	s.SetPrimaryAuth(testToken, testEmail)
	s.SetGitHubConnection("gh-token")
	s.SetJiraConnection(true)

	s.Logout()

	require.False(t, s.IsAuthenticated())
	require.False(t, s.HasGitHub())
	require.False(t, s.HasJira())
	require.False(t, s.HasAllConnections())
	require.Empty(t, s.PrimaryToken())
	require.Empty(t, s.UserEmail())
	require.Empty(t, s.GitHubToken())

	for _, key := range []string{
		credstore.KeyPrimaryToken,
		credstore.KeyUserEmail,
		credstore.KeyGitHubToken,
		credstore.KeyJiraConnected,
	} {
		_, ok := store.Get(key)
		require.False(t, ok, "key %q should be removed on logout", key)
	}
}

func TestNew_RestoresPersistedState(t *testing.T) {
	store := repofakes.NewFakeCredRepo()
	first := session.New(store)
	first.SetPrimaryAuth(testToken, testEmail)
	first.SetGitHubConnection("gh-token")
	first.SetJiraConnection(true)

	// A fresh session over the same store simulates a console restart.
	second := session.New(store)

	require.True(t, second.IsAuthenticated())
	require.Equal(t, testToken, second.PrimaryToken())
	require.Equal(t, testEmail, second.UserEmail())
	require.Equal(t, "gh-token", second.GitHubToken())
	require.True(t, second.HasJira())
	require.True(t, second.HasAllConnections())
}

func TestNew_IgnoresMalformedJiraFlag(t *testing.T) {
	store := repofakes.NewFakeCredRepo()
	store.Set(credstore.KeyJiraConnected, "yes")

	s := session.New(store)

	require.False(t, s.HasJira(), "only the literal \"true\" counts as connected")
}

func TestPrimaryTokenInfo_OpaqueToken(t *testing.T) {
	s := session.New(repofakes.NewFakeCredRepo())
	s.SetPrimaryAuth("gho_abcdef123456", testEmail)

	info := s.PrimaryTokenInfo()

	require.False(t, info.IsJWT)
	require.Empty(t, info.Subject)
	require.True(t, info.ExpiresAt.IsZero())
}

func TestPrimaryTokenInfo_JWT(t *testing.T) {
	// {"alg":"HS256","typ":"JWT"} . {"sub":"user-1","exp":4102444800}
	jwtToken := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJzdWIiOiJ1c2VyLTEiLCJleHAiOjQxMDI0NDQ4MDB9." +
		"c2lnbmF0dXJlLWlzLW5vdC1jaGVja2Vk"

	s := session.New(repofakes.NewFakeCredRepo())
	s.SetPrimaryAuth(jwtToken, testEmail)

	info := s.PrimaryTokenInfo()

	require.True(t, info.IsJWT)
	require.Equal(t, "user-1", info.Subject)
	require.Equal(t, int64(4102444800), info.ExpiresAt.Unix())
}

func TestPrimaryTokenInfo_NoToken(t *testing.T) {
	s := session.New(repofakes.NewFakeCredRepo())

	require.False(t, s.PrimaryTokenInfo().IsJWT)
}
