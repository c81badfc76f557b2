package config

import "time"

type OAuthConfig interface {
	GetFlowStateTimeout() time.Duration
}

type OAuth struct{}

var _ OAuthConfig = OAuth{}

// GetFlowStateTimeout bounds how long an outbound OAuth state value stays
// redeemable before the callback is treated as unsolicited.
func (OAuth) GetFlowStateTimeout() time.Duration {
	return 15 * time.Minute
}
