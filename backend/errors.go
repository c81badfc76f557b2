package backend

import (
	"encoding/json"
	"fmt"
	"strings"

	apperrors "github.com/complyatlas/console/internal/errors"
)

// HTTPError is a non-2xx backend response. Message carries the backend's
// own error text when the body parsed as JSON and contained one, else a
// generic failure message.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return apperrors.ErrHTTP
}

// errorBody covers the two shapes the backend uses for error payloads.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func httpError(statusCode int, payload []byte) error {
	message := "request failed"
	var body errorBody
	if err := json.Unmarshal(payload, &body); err == nil {
		switch {
		case body.Detail != "":
			message = body.Detail
		case body.Message != "":
			message = body.Message
		}
	}
	return &HTTPError{StatusCode: statusCode, Message: strings.TrimSpace(message)}
}

func networkError(method, path string, err error) error {
	return fmt.Errorf("%s %s: %w: %v", method, path, apperrors.ErrNetwork, err)
}

func parseError(method, path string, err error) error {
	return fmt.Errorf("%s %s: %w: %v", method, path, apperrors.ErrParse, err)
}

func responseError(method, path string, err error) error {
	return fmt.Errorf("%s %s: %w: %v", method, path, apperrors.ErrResponse, err)
}
