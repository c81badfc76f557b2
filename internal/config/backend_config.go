package config

import (
	"time"
)

type BackendConfig interface {
	GetBackendURL() string
	GetPollInterval() time.Duration
}

type Backend struct{}

var _ BackendConfig = Backend{}

// GetBackendURL returns the base URL of the compliance backend API.
func (Backend) GetBackendURL() string {
	return GetEnv("BACKEND_URL", "http://localhost:8000")
}

// GetPollInterval returns the fixed interval used when watching
// long-running backend jobs (indexing, audits). No backoff is applied.
func (Backend) GetPollInterval() time.Duration {
	seconds := GetEnv("POLL_INTERVAL_SECONDS", "3")
	d, err := time.ParseDuration(seconds + "s")
	if err != nil {
		return 3 * time.Second
	}
	return d
}
