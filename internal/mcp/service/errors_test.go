package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/quarrylabs/quarry-mcp/internal/quarry"
)

// TestLifecycleErrorMessage ensures messages render with and without a
// cause.
func TestLifecycleErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *LifecycleError
		want string
	}{
		{name: "nil receiver", err: nil, want: "server lifecycle error"},
		{name: "message only", err: &LifecycleError{Message: "MCP server is already running"}, want: "MCP server is already running"},
		{name: "with cause", err: &LifecycleError{Message: "failed to listen", Err: errors.New("port busy")}, want: "failed to listen: port busy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// TestLifecycleErrorUnwrap ensures the cause is reachable via errors.Is.
func TestLifecycleErrorUnwrap(t *testing.T) {
	cause := errors.New("port busy")
	err := lifecycleError("failed to listen", cause)
	if !errors.Is(err, cause) {
		t.Error("expected cause to unwrap")
	}

	var nilErr *LifecycleError
	if nilErr.Unwrap() != nil {
		t.Error("expected nil unwrap on nil receiver")
	}
}

// TestMapToolErrorClassification covers the full taxonomy in priority
// order.
func TestMapToolErrorClassification(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantTag      string
		wantExpected bool
		wantInText   string
	}{
		{
			name:         "not found",
			err:          &quarry.NotFoundError{Kind: "issue", ID: "QRY-404"},
			wantTag:      "issue_not_found",
			wantExpected: true,
			wantInText:   "QRY-404",
		},
		{
			name:         "not found other kind",
			err:          &quarry.NotFoundError{Kind: "project", ID: "prj-9"},
			wantTag:      "project_not_found",
			wantExpected: true,
			wantInText:   "prj-9",
		},
		{
			name:         "invalid",
			err:          &quarry.InvalidError{Message: "priority must be one of low, medium, high, urgent"},
			wantTag:      TagValidation,
			wantExpected: true,
			wantInText:   "priority",
		},
		{
			name:         "connection",
			err:          &quarry.ConnectionError{URL: "https://api.quarry.dev/v1/issues", Err: errors.New("dial tcp: i/o timeout")},
			wantTag:      TagConnection,
			wantExpected: false,
			wantInText:   "could not reach",
		},
		{
			name:         "api error",
			err:          &quarry.APIError{Status: 500, Code: "server_error", Message: "boom"},
			wantTag:      TagInternal,
			wantExpected: false,
		},
		{
			name:         "unclassified",
			err:          errors.New("nil map write"),
			wantTag:      TagInternal,
			wantExpected: false,
			wantInText:   "internal error",
		},
		{
			name:         "wrapped not found",
			err:          fmt.Errorf("load issue: %w", &quarry.NotFoundError{Kind: "issue", ID: "QRY-7"}),
			wantTag:      "issue_not_found",
			wantExpected: true,
			wantInText:   "QRY-7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, tag, expected := MapToolError(tt.err)
			if tag != tt.wantTag {
				t.Errorf("expected tag %q, got %q", tt.wantTag, tag)
			}
			if expected != tt.wantExpected {
				t.Errorf("expected expected=%v, got %v", tt.wantExpected, expected)
			}
			if text == "" {
				t.Fatal("expected non-empty text")
			}
			if tt.wantInText != "" && !strings.Contains(text, tt.wantInText) {
				t.Errorf("expected text to contain %q, got %q", tt.wantInText, text)
			}
		})
	}
}

// TestMapToolErrorHidesConnectionDetail ensures transport internals never
// reach the caller.
func TestMapToolErrorHidesConnectionDetail(t *testing.T) {
	err := &quarry.ConnectionError{URL: "https://10.0.0.8:8443/v1/issues", Err: errors.New("dial tcp 10.0.0.8:8443: connect: connection refused")}
	text, _, _ := MapToolError(err)
	if strings.Contains(text, "10.0.0.8") {
		t.Errorf("expected no connection detail in %q", text)
	}
}
