package server

import (
	"net/http"

	"github.com/complyatlas/console/server/flowrepo"
	"github.com/rs/zerolog/log"
)

// ConnectionsPageData contains data for the integrations page
type ConnectionsPageData struct {
	AppName       string
	UserEmail     string
	HasGitHub     bool
	HasJira       bool
	JiraSiteName  string
	JiraSiteURL   string
	JiraExpiresAt string
	TokenIsJWT    bool
	TokenSubject  string
	TokenExpiry   string
	Error         string
	Success       string
}

// ConnectionsHandler renders the integrations page. When the local jira
// flag is set, the authoritative server-side status is re-queried for
// site details; a failed status lookup only degrades the detail display.
func (s *Server) ConnectionsHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("connections.html")
	if err != nil {
		panic("Failed to parse connections template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := ConnectionsPageData{
			AppName:   s.config.GetAppName(),
			UserEmail: s.session.UserEmail(),
			HasGitHub: s.session.HasGitHub(),
			HasJira:   s.session.HasJira(),
			Error:     friendlyConnectionError(r.URL.Query().Get("error")),
			Success:   friendlyConnectionSuccess(r.URL.Query().Get("success")),
		}

		if info := s.session.PrimaryTokenInfo(); info.IsJWT {
			data.TokenIsJWT = true
			data.TokenSubject = info.Subject
			if !info.ExpiresAt.IsZero() {
				data.TokenExpiry = info.ExpiresAt.Format("2006-01-02 15:04 MST")
			}
		}

		if data.HasJira {
			status, err := s.backend.JiraStatus(r.Context(), data.UserEmail)
			if err != nil {
				log.Err(err).Msg("Failed to fetch Jira status")
			} else if status.Connected {
				data.JiraSiteName = status.SiteName
				data.JiraSiteURL = status.SiteURL
				data.JiraExpiresAt = status.ExpiresAt
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render connections template")
			http.Error(w, "Failed to render connections page", http.StatusInternalServerError)
		}
	}
}

// ConnectGitHubHandler starts the secondary GitHub flow for repository
// access, tagged so the shared callback routes it correctly.
func (s *Server) ConnectGitHubHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := s.newFlowState(flowrepo.FlowGitHubConnection)

		auth, err := s.backend.GitHubAuthorizeURL(r.Context(), s.githubRedirectURI(), state)
		if err != nil {
			log.Err(err).Msg("Failed to get GitHub authorization URL")
			redirectWithError(w, r, RouteConnections, "github_unavailable")
			return
		}

		http.Redirect(w, r, auth.URL, http.StatusSeeOther)
	}
}

// ConnectJiraHandler starts the ticketing OAuth flow.
func (s *Server) ConnectJiraHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth, err := s.backend.JiraAuthorizeURL(r.Context(), s.session.UserEmail())
		if err != nil {
			log.Err(err).Msg("Failed to get Jira authorization URL")
			redirectWithError(w, r, RouteConnections, "jira_unavailable")
			return
		}

		http.Redirect(w, r, auth.URL, http.StatusSeeOther)
	}
}

// DisconnectJiraHandler revokes the ticketing grant server-side, then
// clears the local flag.
func (s *Server) DisconnectJiraHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.backend.DisconnectJira(r.Context(), s.session.UserEmail()); err != nil {
			log.Err(err).Msg("Failed to disconnect Jira")
			redirectWithError(w, r, RouteConnections, "jira_disconnect_failed")
			return
		}

		s.session.SetJiraConnection(false)
		redirectSuccess(w, r, RouteConnections)
	}
}

func friendlyConnectionError(code string) string {
	switch code {
	case "":
		return ""
	case "github_required":
		return "Connect GitHub before selecting repositories."
	case "github_connection_failed":
		return "GitHub connection failed. Please try again."
	case "github_unavailable":
		return "GitHub connection is currently unavailable."
	case "jira_no_code":
		return "Jira did not return an authorization code. Please try again."
	case "jira_connection_failed":
		return "Jira connection failed. Please try again."
	case "jira_unavailable":
		return "Jira connection is currently unavailable."
	case "jira_disconnect_failed":
		return "Failed to disconnect Jira. Please try again."
	default:
		return code
	}
}

func friendlyConnectionSuccess(code string) string {
	switch code {
	case "github":
		return "GitHub connected successfully!"
	case "jira":
		return "Jira connected successfully!"
	default:
		return ""
	}
}
