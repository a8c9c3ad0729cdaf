package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the upstream statuses handlers branch on.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// UpstreamError is any other non-2xx response from the API. Message is
// only populated from 4xx bodies; 5xx details stay server-side.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream API returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream API returned %d", e.StatusCode)
}

// errorFromResponse maps a non-2xx response onto the error taxonomy.
// The body is consumed for 4xx responses that carry a JSON message.
func errorFromResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(readBody(resp.Body), &payload); err == nil && payload.Message != "" {
			return &UpstreamError{StatusCode: resp.StatusCode, Message: payload.Message}
		}
	}

	return &UpstreamError{StatusCode: resp.StatusCode}
}
