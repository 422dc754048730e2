package service

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerSource yields a fresh protocol server wired to the full tool
// catalogue. The stream transport draws one instance per run; the HTTP
// transport draws one per request so no protocol state crosses requests.
type ServerSource func() *mcp.Server

// Transport carries MCP protocol traffic for one server run.
type Transport interface {
	// Name identifies the transport in telemetry and logs.
	Name() string
	// Serve blocks until ctx is canceled or the transport fails.
	Serve(ctx context.Context, source ServerSource) error
	// Close releases any resources the transport still holds.
	Close(ctx context.Context) error
}

// StdioTransport serves a single session over the process's standard
// streams. The client closing the stream ends the run.
type StdioTransport struct{}

// Name implements Transport.
func (t *StdioTransport) Name() string { return "stdio" }

// Serve implements Transport. Context cancellation is a clean stop, not
// an error.
func (t *StdioTransport) Serve(ctx context.Context, source ServerSource) error {
	err := source().Run(ctx, &mcp.StdioTransport{})
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return lifecycleError("failed to connect MCP transport", err)
}

// Close implements Transport. The standard streams belong to the process,
// so there is nothing to release.
func (t *StdioTransport) Close(context.Context) error { return nil }
