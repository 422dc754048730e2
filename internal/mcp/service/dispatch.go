package service

import (
	"context"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/telemetry"
)

// newDispatchMiddleware wraps the protocol method dispatch with two
// behaviors the SDK does not provide: calls to tool names outside the
// catalogue come back as in-band error results instead of protocol errors,
// and the first tools/list of the process is reported to the sink once.
func newDispatchMiddleware(registry *Registry, sink telemetry.Sink, listOnce *sync.Once) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			switch method {
			case "tools/list":
				listOnce.Do(func() {
					defer func() { _ = recover() }()
					if sink != nil {
						sink.FirstListTools()
					}
				})
			case "tools/call":
				call, ok := req.(*mcp.CallToolRequest)
				if ok && call.Params != nil {
					if _, known := registry.Get(call.Params.Name); !known {
						reportOutcome(sink, call.Params.Name, time.Now(), TagUnknownTool)
						return errorResult("unknown tool: " + call.Params.Name), nil
					}
				}
			}
			return next(ctx, method, req)
		}
	}
}
