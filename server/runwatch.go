package server

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/complyatlas/console/backend"
	"github.com/complyatlas/console/internal/polling"
	"github.com/rs/zerolog/log"
)

// watchRegistry owns the status watchers for long-running backend
// operations. Each watcher is a fixed-interval poll that stops at the
// first terminal status; the registry keeps the latest successfully
// parsed snapshot per target, so a stale response arriving late simply
// loses to whatever was recorded after it.
type watchRegistry struct {
	interval time.Duration

	mu            sync.Mutex
	indexWatchers map[int64]*polling.Watcher
	indexStatuses map[int64]backend.IndexingStatus
	auditWatchers map[string]*polling.Watcher
	auditStatuses map[string]*backend.AuditStatus
}

func newWatchRegistry(interval time.Duration) *watchRegistry {
	return &watchRegistry{
		interval:      interval,
		indexWatchers: make(map[int64]*polling.Watcher),
		indexStatuses: make(map[int64]backend.IndexingStatus),
		auditWatchers: make(map[string]*polling.Watcher),
		auditStatuses: make(map[string]*backend.AuditStatus),
	}
}

// WatchIndexing polls one repository's indexing status until terminal.
// A repository already being watched keeps its existing watcher.
func (reg *watchRegistry) WatchIndexing(client *backend.Client, token string, repoID int64) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if existing, exists := reg.indexWatchers[repoID]; exists && !watcherDone(existing) {
		return
	}

	reg.indexStatuses[repoID] = backend.IndexingStatus{RepoID: repoID, Status: backend.StatusPending}
	reg.indexWatchers[repoID] = polling.Start(reg.interval, func(ctx context.Context) (bool, error) {
		status, err := client.RepoStatus(ctx, token, repoID)
		if err != nil {
			// Transient failures keep the poll alive; the last good
			// snapshot stays authoritative.
			log.Err(err).Int64("repo_id", repoID).Msg("Indexing status poll failed")
			return false, nil
		}
		if ctx.Err() != nil {
			return true, nil // cancelled while in flight, discard
		}
		reg.recordIndexStatus(*status)
		return status.Terminal(), nil
	})
}

// WatchAudit polls one audit case until completed or failed.
func (reg *watchRegistry) WatchAudit(client *backend.Client, caseID string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if existing, exists := reg.auditWatchers[caseID]; exists && !watcherDone(existing) {
		return
	}

	reg.auditWatchers[caseID] = polling.Start(reg.interval, func(ctx context.Context) (bool, error) {
		status, err := client.AuditStatus(ctx, caseID)
		if err != nil {
			log.Err(err).Str("case_id", caseID).Msg("Audit status poll failed")
			return false, nil
		}
		if ctx.Err() != nil {
			return true, nil
		}
		reg.recordAuditStatus(status)
		return status.Terminal(), nil
	})
}

func (reg *watchRegistry) recordIndexStatus(status backend.IndexingStatus) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.indexStatuses[status.RepoID] = status
}

func (reg *watchRegistry) recordAuditStatus(status *backend.AuditStatus) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.auditStatuses[status.CaseID] = status
}

// IndexStatuses returns the latest indexing snapshots, stable order.
func (reg *watchRegistry) IndexStatuses() []backend.IndexingStatus {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	statuses := make([]backend.IndexingStatus, 0, len(reg.indexStatuses))
	for _, status := range reg.indexStatuses {
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].RepoID < statuses[j].RepoID })
	return statuses
}

// AuditStatuses returns the latest audit snapshots, newest first.
func (reg *watchRegistry) AuditStatuses() []*backend.AuditStatus {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	statuses := make([]*backend.AuditStatus, 0, len(reg.auditStatuses))
	for _, status := range reg.auditStatuses {
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].CreatedAt > statuses[j].CreatedAt })
	return statuses
}

func watcherDone(w *polling.Watcher) bool {
	select {
	case <-w.Done():
		return true
	default:
		return false
	}
}

// Active reports whether any watcher is still polling, which drives the
// auto-refresh of status pages.
func (reg *watchRegistry) Active() bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for _, w := range reg.indexWatchers {
		if !watcherDone(w) {
			return true
		}
	}
	for _, w := range reg.auditWatchers {
		if !watcherDone(w) {
			return true
		}
	}
	return false
}

// CancelAll tears down every watcher. Late responses from polls already
// in flight are discarded by their cancelled contexts.
func (reg *watchRegistry) CancelAll() {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for _, w := range reg.indexWatchers {
		w.Cancel()
	}
	for _, w := range reg.auditWatchers {
		w.Cancel()
	}
}
