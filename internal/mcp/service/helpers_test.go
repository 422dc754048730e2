package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/telemetry"
)

// fakeSink records sink events so tests can assert counts and payloads.
type fakeSink struct {
	mu          sync.Mutex
	sessions    []telemetry.SessionProps
	firstLists  int
	outcomes    []telemetry.CallOutcome
	shutdowns   int
	shutdownErr error
	panicAlways bool
}

func (f *fakeSink) SessionStart(props telemetry.SessionProps) {
	if f.panicAlways {
		panic("sink failure")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, props)
}

func (f *fakeSink) FirstListTools() {
	if f.panicAlways {
		panic("sink failure")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.firstLists++
}

func (f *fakeSink) ToolCalled(outcome telemetry.CallOutcome) {
	if f.panicAlways {
		panic("sink failure")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outcomes = append(f.outcomes, outcome)
}

func (f *fakeSink) Shutdown(context.Context) error {
	if f.panicAlways {
		panic("sink failure")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shutdowns++
	return f.shutdownErr
}

func (f *fakeSink) outcomeTags() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	tags := make([]string, len(f.outcomes))
	for i, outcome := range f.outcomes {
		tags[i] = outcome.ErrorTag
	}
	return tags
}

func (f *fakeSink) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.outcomes)
}

func (f *fakeSink) shutdownCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shutdowns
}

func (f *fakeSink) firstListCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.firstLists
}

func (f *fakeSink) sessionProps() []telemetry.SessionProps {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]telemetry.SessionProps(nil), f.sessions...)
}

// echoParams and echoResult are the minimal tool shapes used across the
// package tests. Text is required because it is not omitempty.
type echoParams struct {
	Text string `json:"text" jsonschema:"text to echo back"`
}

type echoResult struct {
	Echo string `json:"echo"`
}

type noParams struct{}

// resolvedSchemaFor derives and resolves the input schema for P.
func resolvedSchemaFor[P any](t *testing.T) *jsonschema.Resolved {
	t.Helper()
	schema, err := jsonschema.For[P](nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resolved, err := schema.Resolve(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return resolved
}

// newCallToolRequest builds a raw tool call request carrying args as-is.
func newCallToolRequest(raw string) *mcp.CallToolRequest {
	return &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Arguments: json.RawMessage(raw)},
	}
}

// resultText extracts the single text payload from a tool call result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil {
		t.Fatal("expected result")
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected one content item, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

// echoToolSet builds a single-tool catalogue around an echo operation.
func echoToolSet(sink telemetry.Sink) *ToolSet {
	set := NewToolSet("testing")
	AddTool(set, &mcp.Tool{Name: "echo", Description: "Echo text back."}, sink, func(_ context.Context, p echoParams) (echoResult, error) {
		return echoResult{Echo: p.Text}, nil
	})
	return set
}
