// Package telemetry records session and per-call events for the MCP
// server. The server treats every sink method as fire-and-forget except
// Shutdown; implementations stay safe on nil receivers so a missing sink
// never breaks a tool call.
package telemetry

import (
	"context"
	"time"
)

// Call statuses reported through ToolCalled.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// SessionProps describes one server session.
type SessionProps struct {
	Transport  string
	AuthMethod string
	ToolCount  int
	ToolSets   []string
	Version    string
}

// CallOutcome is the per-call record reported after every tool invocation,
// success or failure.
type CallOutcome struct {
	Tool     string
	Status   string
	Duration time.Duration
	ErrorTag string
}

// Sink records observability events. SessionStart fires before the server
// accepts requests, FirstListTools once per process on the first tool
// listing, ToolCalled exactly once per call, and Shutdown once during
// teardown with a bounded context.
type Sink interface {
	SessionStart(props SessionProps)
	FirstListTools()
	ToolCalled(outcome CallOutcome)
	Shutdown(ctx context.Context) error
}

// New returns the process sink: a logging emitter, or Noop when disabled.
func New(disabled bool) Sink {
	if disabled {
		return Noop{}
	}
	return NewEmitter()
}
