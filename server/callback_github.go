package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/complyatlas/console/server/flowrepo"
	"github.com/rs/zerolog/log"
)

// GitHubCallbackHandler terminates both GitHub OAuth flows. One provider,
// one callback route: the state tag decides whether the exchanged token
// becomes the primary credential or the repository-access connection. A
// missing or unrecognized tag fails toward the primary flow, requiring a
// full session rather than silently granting partial access.
func (s *Server) GitHubCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		state := r.URL.Query().Get("state")
		errorParam := r.URL.Query().Get("error")

		if errorParam != "" {
			log.Warn().Str("error", errorParam).Msg("GitHub authorization denied")
			redirectWithError(w, r, RouteSignin, "github_auth_failed")
			return
		}

		if code == "" {
			redirectWithError(w, r, RouteSignin, "no_code")
			return
		}

		flow := s.flowFromState(state)

		// One-shot guard: consume the code before any network call so a
		// re-delivered redirect never triggers a second exchange.
		if !s.flows.ConsumeCode(code) {
			if flow == flowrepo.FlowGitHubConnection {
				redirectSuccess(w, r, RouteConnections)
				return
			}
			redirectSuccess(w, r, RouteDashboard)
			return
		}

		switch flow {
		case flowrepo.FlowGitHubConnection:
			exchange, err := s.backend.ConnectGitHub(r.Context(), code, s.githubRedirectURI())
			if err != nil {
				log.Err(err).Msg("GitHub connection exchange failed")
				redirectWithError(w, r, RouteConnections, "github_connection_failed")
				return
			}
			s.session.SetGitHubConnection(exchange.AccessToken)
			redirectSuccess(w, r, RouteConnections+"?success=github")

		default:
			exchange, err := s.backend.ExchangeGitHubCode(r.Context(), code, s.githubRedirectURI())
			if err != nil {
				log.Err(err).Msg("GitHub primary exchange failed")
				redirectWithError(w, r, RouteSignin, "github_auth_failed")
				return
			}
			s.session.SetPrimaryAuth(exchange.AccessToken, exchange.User.DisplayIdentity())
			redirectSuccess(w, r, RouteDashboard)
		}
	}
}

// flowFromState resolves the flow a callback belongs to. A registered
// state wins; an unregistered one (console restarted mid-flow) falls back
// to its tag prefix; anything else defaults to the primary flow.
func (s *Server) flowFromState(state string) string {
	if state == "" {
		return flowrepo.FlowPrimary
	}

	if flowState, err := s.flows.Get(state); err == nil {
		_ = s.flows.Delete(state)
		if time.Since(flowState.CreatedAt) <= s.config.GetFlowStateTimeout() {
			return flowState.Flow
		}
		return flowrepo.FlowPrimary
	}

	tag, _, _ := strings.Cut(state, ".")
	if tag == flowrepo.FlowGitHubConnection {
		return flowrepo.FlowGitHubConnection
	}
	return flowrepo.FlowPrimary
}
