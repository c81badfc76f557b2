package server_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/complyatlas/console/credstore"
	"github.com/complyatlas/console/server"
	"github.com/complyatlas/console/server/flowrepo"
	"github.com/stretchr/testify/require"
)

func TestRequireAuth_RedirectsAnonymous(t *testing.T) {
	f := setupTestFixture(t)

	protected := []string{
		server.RouteDashboard,
		server.RouteReposSelect,
		server.RouteScan,
		server.RouteViolations,
		server.RouteConnections,
		server.RouteReports,
	}

	for _, route := range protected {
		rec := f.get(t, route)
		requireRedirect(t, rec, server.RouteSignin)
	}
}

func TestRequireAuth_AllowsAuthenticated(t *testing.T) {
	f := setupTestFixture(t)
	f.session.SetPrimaryAuth(testPrimaryToken, testEmail)

	rec := f.get(t, server.RouteDashboard)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), testEmail)
	require.Contains(t, rec.Body.String(), "2026-01-01")
}

func TestSigninPage_RedirectsAuthenticated(t *testing.T) {
	f := setupTestFixture(t)
	f.session.SetPrimaryAuth(testPrimaryToken, testEmail)

	rec := f.get(t, server.RouteSignin)

	requireRedirect(t, rec, server.RouteDashboard)
}

func TestLoginSubmission_Success(t *testing.T) {
	f := setupTestFixture(t)

	rec := f.postForm(t, server.RouteSignin, url.Values{
		"email":    {testEmail},
		"password": {"password123"},
	})

	requireRedirect(t, rec, server.RouteDashboard)
	require.True(t, f.session.IsAuthenticated())
	require.Equal(t, testPrimaryToken, f.session.PrimaryToken())
	require.Equal(t, testEmail, f.session.UserEmail())

	// Credentials survive in the store, not just in memory.
	token, ok := f.store.Get(credstore.KeyPrimaryToken)
	require.True(t, ok)
	require.Equal(t, testPrimaryToken, token)
}

func TestLoginSubmission_BackendRejection(t *testing.T) {
	f := setupTestFixture(t)
	f.backend.failLogin.Store(true)

	rec := f.postForm(t, server.RouteSignin, url.Values{
		"email":    {testEmail},
		"password": {"wrong"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Contains(t, rec.Header().Get("Location"), server.RouteSignin)
	require.Contains(t, rec.Header().Get("Location"), "error=")
	require.False(t, f.session.IsAuthenticated())
}

func TestLoginSubmission_MissingFields(t *testing.T) {
	f := setupTestFixture(t)

	rec := f.postForm(t, server.RouteSignin, url.Values{"email": {testEmail}})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Contains(t, rec.Header().Get("Location"), "error=")
	require.False(t, f.session.IsAuthenticated())
}

func TestLogout_ClearsSessionAndStore(t *testing.T) {
	f := setupTestFixture(t)
	f.session.SetPrimaryAuth(testPrimaryToken, testEmail)
	f.session.SetGitHubConnection(testRepoToken)
	f.session.SetJiraConnection(true)

	rec := f.get(t, server.RouteLogout)

	requireRedirect(t, rec, server.RouteSignin)
	require.False(t, f.session.IsAuthenticated())
	require.False(t, f.session.HasGitHub())
	require.False(t, f.session.HasJira())

	for _, key := range []string{
		credstore.KeyPrimaryToken,
		credstore.KeyUserEmail,
		credstore.KeyGitHubToken,
		credstore.KeyJiraConnected,
	} {
		_, ok := f.store.Get(key)
		require.False(t, ok, "key %q should be removed on logout", key)
	}
}

func TestGitHubSignin_StartsPrimaryFlow(t *testing.T) {
	f := setupTestFixture(t)

	rec := f.postForm(t, server.RouteGitHubSignin, nil)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Contains(t, rec.Header().Get("Location"), "github.com/login/oauth/authorize")

	state := f.backend.authorizeState()
	require.True(t, strings.HasPrefix(state, flowrepo.FlowPrimary+"."), "state %q should carry the primary tag", state)
	require.Contains(t, f.backend.redirectURI(), server.RouteGitHubCallback)

	flowState, err := f.flows.Get(state)
	require.NoError(t, err)
	require.Equal(t, flowrepo.FlowPrimary, flowState.Flow)
}

func TestConnectGitHub_StartsConnectionFlow(t *testing.T) {
	f := setupTestFixture(t)
	f.session.SetPrimaryAuth(testPrimaryToken, testEmail)

	rec := f.postForm(t, server.RouteConnectGitHub, nil)

	require.Equal(t, http.StatusSeeOther, rec.Code)

	state := f.backend.authorizeState()
	require.True(t, strings.HasPrefix(state, flowrepo.FlowGitHubConnection+"."), "state %q should carry the connection tag", state)

	flowState, err := f.flows.Get(state)
	require.NoError(t, err)
	require.Equal(t, flowrepo.FlowGitHubConnection, flowState.Flow)
}
