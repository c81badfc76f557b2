package server

import (
	"net/http"
	"net/url"

	"github.com/complyatlas/console/backend"
	"github.com/rs/zerolog/log"
)

// IndexHandler renders the marketing splash page
func (s *Server) IndexHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("index.html")
	if err != nil {
		panic("Failed to parse index template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := map[string]interface{}{
			"AppName":       s.config.GetAppName(),
			"Authenticated": s.session.IsAuthenticated(),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	}
}

// ReportsPageData contains data for the audit reports page
type ReportsPageData struct {
	AppName string
	Audits  []auditView
}

// ReportsHandler lists the audits observed in this console run.
func (s *Server) ReportsHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("reports.html")
	if err != nil {
		panic("Failed to parse reports template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := ReportsPageData{
			AppName: s.config.GetAppName(),
			Audits:  s.auditViews(),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render reports template")
			http.Error(w, "Failed to render reports page", http.StatusInternalServerError)
		}
	}
}

// RegulationsPageData contains data for the regulations page
type RegulationsPageData struct {
	AppName  string
	Metadata *backend.RegulationMetadata
	Error    string
	Success  string
}

// RegulationsHandler shows the demo regulation currently loaded.
func (s *Server) RegulationsHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("regulations.html")
	if err != nil {
		panic("Failed to parse regulations template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := RegulationsPageData{
			AppName: s.config.GetAppName(),
			Error:   r.URL.Query().Get("error"),
			Success: r.URL.Query().Get("success"),
		}

		metadata, err := s.backend.DemoRegulationMetadata(r.Context())
		if err != nil {
			log.Err(err).Msg("Failed to fetch regulation metadata")
		} else {
			data.Metadata = metadata
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render regulations template")
			http.Error(w, "Failed to render regulations page", http.StatusInternalServerError)
		}
	}
}

// RegulationsPreloadHandler loads the demo regulation into the backend.
func (s *Server) RegulationsPreloadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := s.backend.PreloadDemoRegulation(r.Context())
		if err != nil {
			log.Err(err).Msg("Failed to preload demo regulation")
			redirectWithError(w, r, RouteRegulations, "Failed to preload demo regulation")
			return
		}

		message := "Regulation loaded"
		if result.Status == "already_loaded" {
			message = "Regulation was already loaded"
		}
		redirectSuccess(w, r, RouteRegulations+"?success="+url.QueryEscape(message))
	}
}
