package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes
	RouteSignin       = "/auth/signin"
	RouteSignup       = "/auth/signup"
	RouteLogout       = "/auth/logout"
	RouteGitHubSignin = "/auth/github"

	// OAuth Callback Routes
	RouteGitHubCallback = "/auth/github/callback"
	RouteJiraCallback   = "/settings/connections/jira/callback"

	// Console Routes
	RouteDashboard          = "/dashboard"
	RouteReposSelect        = "/repos/select"
	RouteReposIndex         = "/repos/index"
	RouteReposStatus        = "/repos/status"
	RouteScan               = "/repos/scan"
	RouteScanStart          = "/repos/scan/start"
	RouteScanResume         = "/repos/scan/resume"
	RouteViolations         = "/violations/review"
	RouteViolationAction    = "/violations/action"
	RouteViolationExplain   = "/violations/explain"
	RouteViolationFix       = "/violations/fix"
	RouteJiraTicket         = "/violations/ticket"
	RouteJiraTicketBulk     = "/violations/ticket/bulk"
	RouteRegulations        = "/regulations"
	RouteRegulationsPreload = "/regulations/preload"
	RouteReports            = "/reports"

	// Settings Routes
	RouteConnections    = "/settings/connections"
	RouteConnectGitHub  = "/settings/connections/github"
	RouteConnectJira    = "/settings/connections/jira"
	RouteDisconnectJira = "/settings/connections/jira/disconnect"
)
