package backend

import (
	"context"
	"net/http"
)

// The regulation endpoints wrap their payload in a message envelope.
type metadataEnvelope struct {
	Message string             `json:"message"`
	Data    RegulationMetadata `json:"data"`
}

type preloadEnvelope struct {
	Message string        `json:"message"`
	Data    PreloadResult `json:"data"`
}

// DemoRegulationMetadata fetches metadata for the preloaded demo
// regulation.
func (c *Client) DemoRegulationMetadata(ctx context.Context) (*RegulationMetadata, error) {
	var envelope metadataEnvelope
	if err := c.doJSON(ctx, "", http.MethodGet, "/regulations/preload-demo/metadata", nil, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// PreloadDemoRegulation loads the demo regulation into the backend's rule
// store. Idempotent server-side: status reports already_loaded when the
// rule was present.
func (c *Client) PreloadDemoRegulation(ctx context.Context) (*PreloadResult, error) {
	var envelope preloadEnvelope
	if err := c.doJSON(ctx, "", http.MethodPost, "/regulations/preload-demo", nil, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}
