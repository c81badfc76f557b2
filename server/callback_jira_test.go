package server_test

import (
	"testing"

	"github.com/complyatlas/console/server"
	"github.com/stretchr/testify/require"
)

func TestJiraCallback_Success(t *testing.T) {
	f := setupTestFixture(t)

	rec := f.get(t, server.RouteJiraCallback+"?code=jira-code-1&state=jira_connection.abc")

	requireRedirect(t, rec, server.RouteConnections+"?success=jira")
	require.Equal(t, int32(1), f.backend.jiraCallbacks.Load())
	require.True(t, f.session.HasJira())
}

func TestJiraCallback_MissingCode(t *testing.T) {
	f := setupTestFixture(t)

	rec := f.get(t, server.RouteJiraCallback)

	requireRedirect(t, rec, server.RouteConnections+"?error=jira_no_code")
	require.Equal(t, int32(0), f.backend.jiraCallbacks.Load())
	require.False(t, f.session.HasJira())
}

func TestJiraCallback_ExchangeFailureRedirects(t *testing.T) {
	f := setupTestFixture(t)
	f.backend.failJiraCallback.Store(true)

	rec := f.get(t, server.RouteJiraCallback+"?code=jira-code-1&state=jira_connection.abc")

	// A failed handshake must land back on the connections page, never on
	// an error response.
	requireRedirect(t, rec, server.RouteConnections+"?error=jira_connection_failed")
	require.False(t, f.session.HasJira())
}

func TestJiraCallback_DuplicateCodeExchangesOnce(t *testing.T) {
	f := setupTestFixture(t)

	f.get(t, server.RouteJiraCallback+"?code=jira-code-1&state=jira_connection.abc")
	second := f.get(t, server.RouteJiraCallback+"?code=jira-code-1&state=jira_connection.abc")

	require.Equal(t, int32(1), f.backend.jiraCallbacks.Load(), "one code, one handshake")
	requireRedirect(t, second, server.RouteConnections)
	require.True(t, f.session.HasJira(), "the first delivery already connected")
}
