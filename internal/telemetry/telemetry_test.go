package telemetry

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewReturnsNoopWhenDisabled(t *testing.T) {
	sink := New(true)
	if _, ok := sink.(Noop); !ok {
		t.Fatalf("expected Noop sink, got %T", sink)
	}
}

func TestNewReturnsEmitterWhenEnabled(t *testing.T) {
	sink := New(false)
	emitter, ok := sink.(*Emitter)
	if !ok {
		t.Fatalf("expected *Emitter sink, got %T", sink)
	}
	if emitter.SessionID() == "" {
		t.Error("expected a session id")
	}
}

func TestNoopShutdownReturnsNil(t *testing.T) {
	if err := (Noop{}).Shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEmitterNilReceiverIsSafe(t *testing.T) {
	var e *Emitter
	e.SessionStart(SessionProps{})
	e.FirstListTools()
	e.ToolCalled(CallOutcome{})
	if err := e.Shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.SessionID() != "" {
		t.Error("expected empty session id from nil emitter")
	}
}

func TestEmitterToolCalledRecordsSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	var lines []string
	e := &Emitter{
		sessionID: "session-1",
		logf: func(format string, args ...any) {
			lines = append(lines, fmt.Sprintf(format, args...))
		},
		tracer: tp.Tracer("test"),
		clock:  time.Now,
	}

	e.ToolCalled(CallOutcome{
		Tool:     "get_issue",
		Status:   StatusError,
		Duration: 42 * time.Millisecond,
		ErrorTag: "issue_not_found",
	})

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected one span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name != "tool.call" {
		t.Errorf("expected span name tool.call, got %q", span.Name)
	}

	attrs := make(map[string]string)
	for _, kv := range span.Attributes {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	if attrs["tool_name"] != "get_issue" {
		t.Errorf("expected tool_name attribute, got %q", attrs["tool_name"])
	}
	if attrs["status"] != StatusError {
		t.Errorf("expected status attribute, got %q", attrs["status"])
	}
	if attrs["error_tag"] != "issue_not_found" {
		t.Errorf("expected error_tag attribute, got %q", attrs["error_tag"])
	}

	if len(lines) != 1 || !strings.Contains(lines[0], "get_issue") {
		t.Errorf("expected one log line naming the tool, got %v", lines)
	}
}

func TestEmitterSessionLifecycleLogs(t *testing.T) {
	var lines []string
	now := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	e := &Emitter{
		sessionID: "session-2",
		logf: func(format string, args ...any) {
			lines = append(lines, fmt.Sprintf(format, args...))
		},
		clock: func() time.Time { return now },
	}

	e.SessionStart(SessionProps{Transport: "stdio", AuthMethod: "token", ToolCount: 57})
	now = now.Add(3 * time.Second)
	e.FirstListTools()
	if err := e.Shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(lines) != 3 {
		t.Fatalf("expected three log lines, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "transport=stdio") || !strings.Contains(lines[0], "auth=token") {
		t.Errorf("expected session start details, got %q", lines[0])
	}
	if !strings.Contains(lines[2], "3s") {
		t.Errorf("expected uptime in session end line, got %q", lines[2])
	}
}
