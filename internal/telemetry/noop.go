package telemetry

import "context"

// Noop is a Sink that records nothing. It stands in for the emitter when
// telemetry is disabled so callers never branch on a nil sink.
type Noop struct{}

// SessionStart implements Sink.
func (Noop) SessionStart(SessionProps) {}

// FirstListTools implements Sink.
func (Noop) FirstListTools() {}

// ToolCalled implements Sink.
func (Noop) ToolCalled(CallOutcome) {}

// Shutdown implements Sink.
func (Noop) Shutdown(context.Context) error { return nil }

var _ Sink = Noop{}
