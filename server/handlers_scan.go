package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// ScanPageData contains data for the scan runner page
type ScanPageData struct {
	AppName string
	CanScan bool
	Audits  []auditView
	Refresh bool
	Error   string
}

// ScanPageHandler renders the scan runner. Starting a scan is gated on
// both secondary connections being in place.
func (s *Server) ScanPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("scan.html")
	if err != nil {
		panic("Failed to parse scan template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := ScanPageData{
			AppName: s.config.GetAppName(),
			CanScan: s.session.HasAllConnections(),
			Audits:  s.auditViews(),
			Refresh: s.watches.Active(),
			Error:   r.URL.Query().Get("error"),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render scan template")
			http.Error(w, "Failed to render scan page", http.StatusInternalServerError)
		}
	}
}

// ScanStartHandler kicks off an audit and begins watching the case.
func (s *Server) ScanStartHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.session.HasAllConnections() {
			redirectWithError(w, r, RouteScan, "Connect GitHub and Jira before scanning")
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		repoID := r.FormValue("repo_id")
		if repoID == "" {
			redirectWithError(w, r, RouteScan, "Repository is required")
			return
		}

		run, err := s.backend.RunAudit(r.Context(), repoID, s.session.UserEmail())
		if err != nil {
			log.Err(err).Str("repo_id", repoID).Msg("Failed to start audit")
			redirectWithError(w, r, RouteScan, "Failed to start scan")
			return
		}

		log.Info().Str("case_id", run.CaseID).Str("repo_id", repoID).Msg("Audit started")
		s.watches.WatchAudit(s.backend, run.CaseID)
		redirectSuccess(w, r, RouteScan)
	}
}

// ScanResumeHandler continues an audit parked in human review and
// resumes watching it.
func (s *Server) ScanResumeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		caseID := r.FormValue("case_id")
		if caseID == "" {
			redirectWithError(w, r, RouteScan, "Case is required")
			return
		}

		if err := s.backend.ResumeAudit(r.Context(), caseID); err != nil {
			log.Err(err).Str("case_id", caseID).Msg("Failed to resume audit")
			redirectWithError(w, r, RouteScan, "Failed to resume scan")
			return
		}

		s.watches.WatchAudit(s.backend, caseID)
		redirectSuccess(w, r, RouteScan)
	}
}
