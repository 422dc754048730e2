package telemetry

import (
	"context"
	"log"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/quarrylabs/quarry-mcp/internal/platform/id"
)

// Emitter logs telemetry events and records tool calls as spans on the
// global tracer provider. Spans are no-ops unless tracing was enabled at
// startup.
type Emitter struct {
	sessionID string
	logf      func(format string, args ...any)
	tracer    trace.Tracer
	clock     func() time.Time

	startedAt time.Time
}

// NewEmitter creates the default emitter with a fresh session identifier.
func NewEmitter() *Emitter {
	sessionID, err := id.NewID()
	if err != nil {
		sessionID = "unknown"
	}
	return &Emitter{
		sessionID: sessionID,
		logf:      log.Printf,
		tracer:    otel.Tracer("quarry-mcp/telemetry"),
		clock:     time.Now,
	}
}

// SessionID returns the identifier attached to this emitter's events.
func (e *Emitter) SessionID() string {
	if e == nil {
		return ""
	}
	return e.sessionID
}

// SessionStart implements Sink.
func (e *Emitter) SessionStart(props SessionProps) {
	if e == nil {
		return
	}
	e.startedAt = e.now()
	toolsets := "all"
	if len(props.ToolSets) > 0 {
		toolsets = strings.Join(props.ToolSets, ",")
	}
	e.logf("telemetry: session %s started version=%s transport=%s auth=%s tools=%d toolsets=%s",
		e.sessionID, props.Version, props.Transport, props.AuthMethod, props.ToolCount, toolsets)
}

// FirstListTools implements Sink.
func (e *Emitter) FirstListTools() {
	if e == nil {
		return
	}
	e.logf("telemetry: session %s first tool listing", e.sessionID)
}

// ToolCalled implements Sink.
func (e *Emitter) ToolCalled(outcome CallOutcome) {
	if e == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("session_id", e.sessionID),
		attribute.String("tool_name", outcome.Tool),
		attribute.String("status", outcome.Status),
		attribute.Int64("duration_ms", outcome.Duration.Milliseconds()),
	}
	if outcome.ErrorTag != "" {
		attrs = append(attrs, attribute.String("error_tag", outcome.ErrorTag))
	}

	if e.tracer != nil {
		_, span := e.tracer.Start(context.Background(), "tool.call", trace.WithAttributes(attrs...))
		if outcome.Status == StatusError {
			span.SetStatus(codes.Error, outcome.ErrorTag)
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}

	e.logf("telemetry: tool %s %s in %dms tag=%s",
		outcome.Tool, outcome.Status, outcome.Duration.Milliseconds(), outcome.ErrorTag)
}

// Shutdown implements Sink. Span flushing belongs to the tracer provider,
// which the entry point shuts down separately.
func (e *Emitter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	uptime := time.Duration(0)
	if !e.startedAt.IsZero() {
		uptime = e.now().Sub(e.startedAt)
	}
	e.logf("telemetry: session %s ended after %s", e.sessionID, uptime.Round(time.Millisecond))
	return nil
}

func (e *Emitter) now() time.Time {
	if e.clock == nil {
		return time.Now()
	}
	return e.clock()
}

var _ Sink = (*Emitter)(nil)
