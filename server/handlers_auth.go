package server

import (
	"net/http"
	"time"

	"github.com/complyatlas/console/server/flowrepo"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AuthPageData contains data for rendering the sign-in and sign-up pages
type AuthPageData struct {
	AppName string
	Error   string
	Email   string // Preserve email on error
}

// SigninPageHandler displays the sign-in page (GET /auth/signin)
func (s *Server) SigninPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("signin.html")
	if err != nil {
		panic("Failed to parse signin template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if s.session.IsAuthenticated() {
			redirectSuccess(w, r, RouteDashboard)
			return
		}

		data := AuthPageData{
			AppName: s.config.GetAppName(),
			Error:   friendlyAuthError(r.URL.Query().Get("error")),
			Email:   r.URL.Query().Get("email"),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render signin template")
			http.Error(w, "Failed to render sign-in page", http.StatusInternalServerError)
		}
	}
}

// LoginSubmissionHandler processes the sign-in form submission
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		email := r.FormValue("email")
		password := r.FormValue("password")
		if email == "" || password == "" {
			redirectWithError(w, r, RouteSignin, "Email and password are required")
			return
		}

		token, err := s.backend.Login(r.Context(), email, password)
		if err != nil {
			log.Err(err).Str("email", email).Msg("Login failed")
			redirectWithError(w, r, RouteSignin, "Login failed")
			return
		}

		s.session.SetPrimaryAuth(token.AccessToken, email)
		redirectSuccess(w, r, RouteDashboard)
	}
}

// SignupPageHandler displays the sign-up page (GET /auth/signup)
func (s *Server) SignupPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("signup.html")
	if err != nil {
		panic("Failed to parse signup template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := AuthPageData{
			AppName: s.config.GetAppName(),
			Error:   friendlyAuthError(r.URL.Query().Get("error")),
			Email:   r.URL.Query().Get("email"),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render signup template")
			http.Error(w, "Failed to render sign-up page", http.StatusInternalServerError)
		}
	}
}

// SignupSubmissionHandler processes the sign-up form submission
func (s *Server) SignupSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		email := r.FormValue("email")
		password := r.FormValue("password")
		if email == "" || password == "" {
			redirectWithError(w, r, RouteSignup, "Email and password are required")
			return
		}

		token, err := s.backend.Signup(r.Context(), email, password)
		if err != nil {
			log.Err(err).Str("email", email).Msg("Signup failed")
			redirectWithError(w, r, RouteSignup, "Signup failed")
			return
		}

		s.session.SetPrimaryAuth(token.AccessToken, email)
		redirectSuccess(w, r, RouteDashboard)
	}
}

// GitHubSigninHandler starts the primary-auth GitHub OAuth flow: register
// a primary-tagged state, ask the backend for the authorization URL, and
// send the browser to the provider.
func (s *Server) GitHubSigninHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := s.newFlowState(flowrepo.FlowPrimary)

		auth, err := s.backend.GitHubAuthorizeURL(r.Context(), s.githubRedirectURI(), state)
		if err != nil {
			log.Err(err).Msg("Failed to get GitHub authorization URL")
			redirectWithError(w, r, RouteSignin, "github_unavailable")
			return
		}

		http.Redirect(w, r, auth.URL, http.StatusSeeOther)
	}
}

// LogoutHandler clears the session and every persisted credential, then
// lands the operator back on the sign-in page. Reachable from any screen.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.session.Logout()
		redirectSuccess(w, r, RouteSignin)
	}
}

// newFlowState mints a flow-tagged OAuth state value and registers it so
// the callback can prove the redirect was solicited.
func (s *Server) newFlowState(flow string) string {
	state := flow + "." + uuid.New().String()
	if err := s.flows.Upsert(state, &flowrepo.FlowState{
		Flow:      flow,
		CreatedAt: time.Now(),
	}); err != nil {
		log.Err(err).Str("flow", flow).Msg("Failed to register flow state")
	}
	return state
}

// githubRedirectURI is the callback both GitHub flows share.
func (s *Server) githubRedirectURI() string {
	return s.config.GetBaseURL() + RouteGitHubCallback
}

// friendlyAuthError maps error indicator codes carried in redirect query
// params to copy fit for the page banner.
func friendlyAuthError(code string) string {
	switch code {
	case "":
		return ""
	case "no_code":
		return "The sign-in provider did not return an authorization code. Please try again."
	case "github_auth_failed":
		return "GitHub sign-in failed. Please try again."
	case "github_unavailable":
		return "GitHub sign-in is currently unavailable."
	default:
		return code
	}
}
