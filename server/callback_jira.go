package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// JiraCallbackHandler completes the ticketing OAuth handshake. Any
// failure lands the operator back on the connections page with an error
// indicator; this route never strands the browser on an error page.
func (s *Server) JiraCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		state := r.URL.Query().Get("state")

		if code == "" {
			redirectWithError(w, r, RouteConnections, "jira_no_code")
			return
		}

		// One-shot guard, same as the GitHub callback: re-delivery of the
		// same code must not trigger a second exchange.
		if !s.flows.ConsumeCode(code) {
			redirectSuccess(w, r, RouteConnections)
			return
		}

		connection, err := s.backend.CompleteJiraCallback(r.Context(), code, state)
		if err != nil {
			log.Err(err).Msg("Jira callback exchange failed")
			redirectWithError(w, r, RouteConnections, "jira_connection_failed")
			return
		}

		s.session.SetJiraConnection(true)
		log.Info().Str("site", connection.SiteName).Msg("Jira connected")
		redirectSuccess(w, r, RouteConnections+"?success=jira")
	}
}
