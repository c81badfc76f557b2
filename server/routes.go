package server

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET /{$}", s.IndexHandler())

	// SIGN IN / SIGN UP
	s.RegisterRouteFunc("GET "+RouteSignin, s.SigninPageHandler())
	s.RegisterRouteFunc("POST "+RouteSignin, s.LoginSubmissionHandler())
	s.RegisterRouteFunc("GET "+RouteSignup, s.SignupPageHandler())
	s.RegisterRouteFunc("POST "+RouteSignup, s.SignupSubmissionHandler())
	s.RegisterRouteFunc("POST "+RouteGitHubSignin, s.GitHubSigninHandler())
	s.RegisterRouteFunc("GET "+RouteLogout, s.LogoutHandler())

	// OAUTH CALLBACKS
	s.RegisterRouteFunc("GET "+RouteGitHubCallback, s.GitHubCallbackHandler())
	s.RegisterRouteFunc("GET "+RouteJiraCallback, s.JiraCallbackHandler())

	// Protected console views (require a primary session)
	s.RegisterRouteHandler("GET "+RouteDashboard, ChainMiddleware(s.DashboardHandler(), s.HTMLMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteReposSelect, ChainMiddleware(s.ReposSelectHandler(), s.HTMLMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("POST "+RouteReposIndex, ChainMiddleware(s.ReposIndexHandler(), s.HTMLMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteReposStatus, ChainMiddleware(s.ReposStatusHandler(), s.HTMLMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteScan, ChainMiddleware(s.ScanPageHandler(), s.HTMLMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("POST "+RouteScanStart, ChainMiddleware(s.ScanStartHandler(), s.HTMLMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("POST "+RouteScanResume, ChainMiddleware(s.ScanResumeHandler(), s.HTMLMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteViolations, ChainMiddleware(s.ViolationsPageHandler(), s.HTMLMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("POST "+RouteViolationAction, ChainMiddleware(s.ViolationActionHandler(), s.HTMLMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("POST "+RouteViolationExplain, ChainMiddleware(s.ViolationExplainHandler(), s.HTMLMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("POST "+RouteViolationFix, ChainMiddleware(s.ViolationFixHandler(), s.HTMLMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("POST "+RouteJiraTicket, ChainMiddleware(s.JiraTicketHandler(), s.HTMLMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("POST "+RouteJiraTicketBulk, ChainMiddleware(s.JiraTicketBulkHandler(), s.HTMLMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteRegulations, ChainMiddleware(s.RegulationsHandler(), s.HTMLMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("POST "+RouteRegulationsPreload, ChainMiddleware(s.RegulationsPreloadHandler(), s.HTMLMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteReports, ChainMiddleware(s.ReportsHandler(), s.HTMLMiddleware(s.RequireAuth())...))

	// Settings / connections
	s.RegisterRouteHandler("GET "+RouteConnections, ChainMiddleware(s.ConnectionsHandler(), s.HTMLMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("POST "+RouteConnectGitHub, ChainMiddleware(s.ConnectGitHubHandler(), s.HTMLMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("POST "+RouteConnectJira, ChainMiddleware(s.ConnectJiraHandler(), s.HTMLMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("POST "+RouteDisconnectJira, ChainMiddleware(s.DisconnectJiraHandler(), s.HTMLMiddleware(s.RequireAuth())...))
}
