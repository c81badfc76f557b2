package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/complyatlas/console/backend"
	"github.com/complyatlas/console/credstore/repofakes"
	"github.com/complyatlas/console/internal/config"
	"github.com/complyatlas/console/server"
	"github.com/complyatlas/console/server/flowrepo"
	"github.com/complyatlas/console/session"
	"github.com/stretchr/testify/require"
)

const (
	testEmail        = "a@b.com"
	testPrimaryToken = "primary-token-1"
	testRepoToken    = "repo-token-1"
)

// fakeBackend stands in for the compliance API and counts the exchanges
// each callback triggers.
type fakeBackend struct {
	ts *httptest.Server

	primaryExchanges atomic.Int32
	connectExchanges atomic.Int32
	jiraCallbacks    atomic.Int32

	failPrimaryExchange atomic.Bool
	failConnectExchange atomic.Bool
	failJiraCallback    atomic.Bool
	failLogin           atomic.Bool

	mu                 sync.Mutex
	lastAuthorizeState string
	lastRedirectURI    string
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	fb := &fakeBackend{}
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		if fb.failLogin.Load() {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": testPrimaryToken})
	})

	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"id":         "user-1",
			"email":      testEmail,
			"created_at": "2026-01-01",
		})
	})

	mux.HandleFunc("POST /auth/github/authorize", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			RedirectURI string `json:"redirect_uri"`
			State       string `json:"state"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		fb.mu.Lock()
		fb.lastAuthorizeState = body.State
		fb.lastRedirectURI = body.RedirectURI
		fb.mu.Unlock()
		json.NewEncoder(w).Encode(map[string]string{
			"authorization_url": "https://github.com/login/oauth/authorize?state=" + url.QueryEscape(body.State),
		})
	})

	mux.HandleFunc("GET /auth/github/callback", func(w http.ResponseWriter, r *http.Request) {
		fb.primaryExchanges.Add(1)
		if fb.failPrimaryExchange.Load() {
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]string{"detail": "exchange failed"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": testPrimaryToken,
			"user":         map[string]any{"login": "octocat", "email": testEmail},
		})
	})

	mux.HandleFunc("POST /user/auth/github/callback", func(w http.ResponseWriter, r *http.Request) {
		fb.connectExchanges.Add(1)
		if fb.failConnectExchange.Load() {
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]string{"detail": "exchange failed"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": testRepoToken,
			"user":         map[string]any{"login": "octocat"},
		})
	})

	mux.HandleFunc("GET /api/jira/callback", func(w http.ResponseWriter, r *http.Request) {
		fb.jiraCallbacks.Add(1)
		if fb.failJiraCallback.Load() {
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]string{"detail": "jira handshake failed"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"site_name": "Acme",
			"site_url":  "https://acme.atlassian.net",
		})
	})

	fb.ts = httptest.NewServer(mux)
	t.Cleanup(fb.ts.Close)
	return fb
}

func (fb *fakeBackend) authorizeState() string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.lastAuthorizeState
}

func (fb *fakeBackend) redirectURI() string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.lastRedirectURI
}

// testFixture wires a full console server against the fake backend.
type testFixture struct {
	server  *server.Server
	session *session.Session
	store   *repofakes.FakeCredRepo
	flows   *flowrepo.InMemoryRepo
	backend *fakeBackend
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	fb := newFakeBackend(t)
	store := repofakes.NewFakeCredRepo()
	sess := session.New(store)
	flows := flowrepo.NewInMemoryRepo()

	srv := server.New(config.New(), sess, backend.New(fb.ts.URL), flows)
	t.Cleanup(srv.Close)

	return &testFixture{
		server:  srv,
		session: sess,
		store:   store,
		flows:   flows,
		backend: fb,
	}
}

func (f *testFixture) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	return rec
}

func (f *testFixture) postForm(t *testing.T, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	return rec
}

func requireRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, location, rec.Header().Get("Location"))
}
