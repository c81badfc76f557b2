package server

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/complyatlas/console/backend"
	"github.com/rs/zerolog/log"
)

// ViolationsPageData contains data for the violation review page
type ViolationsPageData struct {
	AppName       string
	Violations    []backend.Violation
	HasJira       bool
	CaseID        string
	Error         string
	Notice        string
	Explanation   string
	SuggestedCode string
}

func (s *Server) violationsPageData(r *http.Request) ViolationsPageData {
	data := ViolationsPageData{
		AppName: s.config.GetAppName(),
		HasJira: s.session.HasJira(),
		CaseID:  r.URL.Query().Get("case_id"),
		Error:   r.URL.Query().Get("error"),
		Notice:  r.URL.Query().Get("notice"),
	}

	violations, err := s.backend.PendingViolations(r.Context(), s.session.PrimaryToken())
	if err != nil {
		log.Err(err).Msg("Failed to fetch pending violations")
		data.Error = "Failed to fetch pending violations"
		return data
	}
	data.Violations = violations

	if data.CaseID == "" && len(violations) > 0 {
		data.CaseID = violations[0].CaseID
	}
	return data
}

func renderViolations(w http.ResponseWriter, tmpl *template.Template, data ViolationsPageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		log.Err(err).Msg("Failed to render violations template")
		http.Error(w, "Failed to render review page", http.StatusInternalServerError)
	}
}

// ViolationsPageHandler renders the pending review queue.
func (s *Server) ViolationsPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("violations.html")
	if err != nil {
		panic("Failed to parse violations template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		renderViolations(w, tmpl, s.violationsPageData(r))
	}
}

// ViolationActionHandler records an approve/reject/ignore decision.
func (s *Server) ViolationActionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		violationID := r.FormValue("violation_id")
		decision := r.FormValue("decision")
		note := r.FormValue("note")

		switch decision {
		case backend.ReviewApproved, backend.ReviewRejected, backend.ReviewIgnored:
		default:
			redirectWithError(w, r, RouteViolations, "Unknown review decision")
			return
		}

		updated, err := s.backend.UpdateViolation(r.Context(), s.session.PrimaryToken(), violationID, decision, note)
		if err != nil {
			log.Err(err).Str("violation_id", violationID).Msg("Failed to update violation")
			redirectWithError(w, r, RouteViolations, "Failed to update violation")
			return
		}

		notice := fmt.Sprintf("Violation %s marked %s", updated.ID, updated.Status)
		redirectSuccess(w, r, RouteViolations+"?notice="+url.QueryEscape(notice))
	}
}

// ViolationExplainHandler fetches an explanation and renders it inline
// above the queue.
func (s *Server) ViolationExplainHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("violations.html")
	if err != nil {
		panic("Failed to parse violations template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		violationID := r.FormValue("violation_id")
		data := s.violationsPageData(r)

		explanation, err := s.backend.ExplainViolation(r.Context(), violationID, r.FormValue("user_query"))
		if err != nil {
			log.Err(err).Str("violation_id", violationID).Msg("Failed to fetch explanation")
			data.Error = "Failed to fetch explanation"
		} else {
			data.Explanation = explanation.Explanation
		}

		renderViolations(w, tmpl, data)
	}
}

// ViolationFixHandler fetches a remediation proposal and renders it
// inline above the queue.
func (s *Server) ViolationFixHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("violations.html")
	if err != nil {
		panic("Failed to parse violations template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		violationID := r.FormValue("violation_id")
		data := s.violationsPageData(r)

		suggestion, err := s.backend.SuggestFix(r.Context(), violationID)
		if err != nil {
			log.Err(err).Str("violation_id", violationID).Msg("Failed to fetch fix suggestion")
			data.Error = "Failed to fetch fix suggestion"
		} else {
			data.Explanation = suggestion.Explanation
			data.SuggestedCode = suggestion.SuggestedCode
		}

		renderViolations(w, tmpl, data)
	}
}

// JiraTicketHandler creates one Jira ticket from a violation.
func (s *Server) JiraTicketHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		req := backend.CreateTicketRequest{
			UserID:      s.session.UserEmail(),
			ViolationID: r.FormValue("violation_id"),
			ProjectKey:  r.FormValue("project_key"),
			IssueType:   formValueOr(r, "issue_type", "Bug"),
			Priority:    formValueOr(r, "priority", "High"),
			Assignee:    r.FormValue("assignee"),
		}

		ticket, err := s.backend.CreateJiraTicket(r.Context(), req)
		if err != nil {
			log.Err(err).Str("violation_id", req.ViolationID).Msg("Failed to create Jira ticket")
			redirectWithError(w, r, RouteViolations, "Failed to create Jira ticket")
			return
		}

		notice := fmt.Sprintf("Created %s (%s)", ticket.JiraTicketKey, ticket.JiraTicketURL)
		redirectSuccess(w, r, RouteViolations+"?notice="+url.QueryEscape(notice))
	}
}

// JiraTicketBulkHandler creates tickets for every violation of a case.
func (s *Server) JiraTicketBulkHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		req := backend.BulkCreateRequest{
			UserID:     s.session.UserEmail(),
			CaseID:     r.FormValue("case_id"),
			ProjectKey: r.FormValue("project_key"),
			IssueType:  formValueOr(r, "issue_type", "Bug"),
			Priority:   formValueOr(r, "priority", "High"),
		}

		result, err := s.backend.BulkCreateJiraTickets(r.Context(), req)
		if err != nil {
			log.Err(err).Str("case_id", req.CaseID).Msg("Failed to bulk create Jira tickets")
			redirectWithError(w, r, RouteViolations, "Failed to create Jira tickets")
			return
		}

		notice := fmt.Sprintf("Created %d tickets", result.CreatedCount)
		redirectSuccess(w, r, RouteViolations+"?notice="+url.QueryEscape(notice))
	}
}

func formValueOr(r *http.Request, key, fallback string) string {
	if value := r.FormValue(key); value != "" {
		return value
	}
	return fallback
}
