package server

import (
	"net/http"

	"github.com/complyatlas/console/backend"
	"github.com/rs/zerolog/log"
)

// auditView is the template model for one audit case snapshot.
type auditView struct {
	CaseID          string
	RepoID          string
	Status          string
	ViolationsFound int
	CurrentStep     int
	WorkflowSteps   []string
	AwaitingReview  bool
	UpdatedAt       string
}

func newAuditView(status *backend.AuditStatus) auditView {
	return auditView{
		CaseID:          status.CaseID,
		RepoID:          status.RepoID,
		Status:          status.Status,
		ViolationsFound: status.ViolationsFound,
		CurrentStep:     status.CurrentStep,
		WorkflowSteps:   status.WorkflowSteps,
		AwaitingReview:  status.Status == backend.StatusHITLReview,
		UpdatedAt:       status.UpdatedAt,
	}
}

func (s *Server) auditViews() []auditView {
	statuses := s.watches.AuditStatuses()
	views := make([]auditView, 0, len(statuses))
	for _, status := range statuses {
		views = append(views, newAuditView(status))
	}
	return views
}

// DashboardPageData contains data for the dashboard page
type DashboardPageData struct {
	AppName           string
	UserEmail         string
	MemberSince       string
	HasGitHub         bool
	HasJira           bool
	HasAllConnections bool
	Audits            []auditView
}

// DashboardHandler renders the signed-in landing page. The profile lookup
// is decorative; a failure only drops the detail line.
func (s *Server) DashboardHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("dashboard.html")
	if err != nil {
		panic("Failed to parse dashboard template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := DashboardPageData{
			AppName:           s.config.GetAppName(),
			UserEmail:         s.session.UserEmail(),
			HasGitHub:         s.session.HasGitHub(),
			HasJira:           s.session.HasJira(),
			HasAllConnections: s.session.HasAllConnections(),
			Audits:            s.auditViews(),
		}

		if user, err := s.backend.Me(r.Context(), s.session.PrimaryToken()); err != nil {
			log.Err(err).Msg("Failed to fetch profile")
		} else {
			data.MemberSince = user.CreatedAt
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render dashboard template")
			http.Error(w, "Failed to render dashboard", http.StatusInternalServerError)
		}
	}
}
