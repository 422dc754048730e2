package quarry

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// NotFoundError reports that a Quarry entity does not exist. Kind names the
// entity family ("project", "issue", "document", ...) and ID carries the
// identifier the caller asked for.
type NotFoundError struct {
	Kind string
	ID   string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e == nil {
		return "not found"
	}
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// ConnectionError reports that the Quarry API could not be reached or did
// not answer with a usable response.
type ConnectionError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	if e == nil {
		return "quarry connection error"
	}
	return fmt.Sprintf("quarry connection error for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConnectionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvalidError reports that the remote rejected the request payload, for
// constraints the local schema cannot check (referential integrity, state
// transitions, field limits).
type InvalidError struct {
	Message string
}

// Error implements the error interface.
func (e *InvalidError) Error() string {
	if e == nil || e.Message == "" {
		return "quarry rejected the request"
	}
	return "quarry rejected the request: " + e.Message
}

// APIError is any other non-2xx answer from the API that does not fit a
// more specific error type.
type APIError struct {
	Status  int
	Code    string
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e == nil {
		return "quarry api error"
	}
	if e.Message != "" {
		return fmt.Sprintf("quarry api error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("quarry api error (status %d)", e.Status)
}

// errorEnvelope mirrors the API error body:
//
//	{"error": {"code": "issue_not_found", "message": "...", "id": "QRY-42"}}
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		ID      string `json:"id"`
	} `json:"error"`
}

// decodeError translates a non-2xx response into the package error set.
func decodeError(resp *http.Response, endpoint string) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var envelope errorEnvelope
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error.Code != "" {
		code := envelope.Error.Code
		if kind, ok := strings.CutSuffix(code, "_not_found"); ok {
			return &NotFoundError{Kind: kind, ID: envelope.Error.ID}
		}
		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity {
			return &InvalidError{Message: envelope.Error.Message}
		}
		return &APIError{Status: resp.StatusCode, Code: code, Message: envelope.Error.Message}
	}

	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &InvalidError{Message: strings.TrimSpace(string(data))}
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return &ConnectionError{URL: endpoint, Err: fmt.Errorf("upstream returned %s", resp.Status)}
	default:
		return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(data))}
	}
}
