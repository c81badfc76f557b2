package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/complyatlas/console/backend"
	"github.com/rs/zerolog/log"
)

// ReposPageData contains data for the repository selection page
type ReposPageData struct {
	AppName string
	Repos   []backend.Repo
	Total   int
	Filter  string
	Error   string
}

// ReposSelectHandler lists the repositories visible to the connected
// GitHub account, with an optional client-side substring filter.
func (s *Server) ReposSelectHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("repos_select.html")
	if err != nil {
		panic("Failed to parse repos template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if !s.session.HasGitHub() {
			redirectWithError(w, r, RouteConnections, "github_required")
			return
		}

		data := ReposPageData{
			AppName: s.config.GetAppName(),
			Filter:  r.URL.Query().Get("q"),
			Error:   r.URL.Query().Get("error"),
		}

		list, err := s.backend.ListRepos(r.Context(), s.session.GitHubToken())
		if err != nil {
			log.Err(err).Msg("Failed to list repositories")
			data.Error = "Failed to list repositories"
		} else {
			data.Repos = filterRepos(list.Repos, data.Filter)
			data.Total = list.Total
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render repos template")
			http.Error(w, "Failed to render repositories page", http.StatusInternalServerError)
		}
	}
}

// filterRepos keeps repositories whose full name contains the filter,
// case-insensitively. An empty filter keeps everything.
func filterRepos(repos []backend.Repo, filter string) []backend.Repo {
	if filter == "" {
		return repos
	}

	needle := strings.ToLower(filter)
	filtered := make([]backend.Repo, 0, len(repos))
	for _, repo := range repos {
		if strings.Contains(strings.ToLower(repo.FullName), needle) {
			filtered = append(filtered, repo)
		}
	}
	return filtered
}

// ReposIndexHandler submits the selected repositories for indexing and
// starts a status watcher per repository.
func (s *Server) ReposIndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		var repoIDs []int64
		for _, raw := range r.Form["repo_id"] {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				redirectWithError(w, r, RouteReposSelect, "invalid repository selection")
				return
			}
			repoIDs = append(repoIDs, id)
		}
		if len(repoIDs) == 0 {
			redirectWithError(w, r, RouteReposSelect, "select at least one repository")
			return
		}

		token := s.session.GitHubToken()
		ack, err := s.backend.IndexRepos(r.Context(), token, repoIDs)
		if err != nil {
			log.Err(err).Msg("Failed to index repositories")
			redirectWithError(w, r, RouteReposSelect, "Failed to start indexing")
			return
		}

		log.Info().Int("count", len(ack.Repos)).Msg("Indexing started")
		for _, id := range repoIDs {
			s.watches.WatchIndexing(s.backend, token, id)
		}

		redirectSuccess(w, r, RouteReposStatus)
	}
}

// ReposStatusPageData contains data for the indexing status page
type ReposStatusPageData struct {
	AppName  string
	Statuses []backend.IndexingStatus
	Refresh  bool
}

// ReposStatusHandler shows the latest indexing snapshots; the page keeps
// refreshing while any watcher is still polling.
func (s *Server) ReposStatusHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("repos_status.html")
	if err != nil {
		panic("Failed to parse repos status template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := ReposStatusPageData{
			AppName:  s.config.GetAppName(),
			Statuses: s.watches.IndexStatuses(),
			Refresh:  s.watches.Active(),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render repos status template")
			http.Error(w, "Failed to render status page", http.StatusInternalServerError)
		}
	}
}
