package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/telemetry"
)

// NewToolHandler wraps a single operation in the uniform call protocol:
// decode and validate arguments, invoke the operation at most once, and
// serialize the result as indented JSON. The returned handler never fails
// at the protocol level; every failure becomes an IsError result, and
// exactly one outcome is reported to the sink per call.
func NewToolHandler[P, R any](name string, schema *jsonschema.Resolved, sink telemetry.Sink, op func(context.Context, P) (R, error)) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		params, err := decodeArguments[P](schema, req)
		if err != nil {
			reportOutcome(sink, name, start, TagValidation)
			return errorResult(fmt.Sprintf("invalid arguments for %s: %v", name, err)), nil
		}

		out, err := op(ctx, params)
		if err != nil {
			text, tag, expected := MapToolError(err)
			if !expected {
				log.Printf("tool %s failed: %v", name, err)
			}
			reportOutcome(sink, name, start, tag)
			return errorResult(text), nil
		}

		payload, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			log.Printf("tool %s result encoding failed: %v", name, err)
			reportOutcome(sink, name, start, TagInternal)
			return errorResult("internal error while handling the tool call"), nil
		}

		reportOutcome(sink, name, start, "")
		return textResult(string(payload)), nil
	}
}

// decodeArguments treats absent arguments as the empty object so tools
// without required fields can be called bare. Validation runs against the
// raw JSON before it is bound to the parameter struct.
func decodeArguments[P any](schema *jsonschema.Resolved, req *mcp.CallToolRequest) (P, error) {
	var params P
	raw := json.RawMessage(`{}`)
	if req != nil && req.Params != nil && len(req.Params.Arguments) > 0 {
		raw = req.Params.Arguments
	}
	if schema != nil {
		var instance any
		if err := json.Unmarshal(raw, &instance); err != nil {
			return params, fmt.Errorf("arguments are not valid JSON: %w", err)
		}
		if err := schema.Validate(instance); err != nil {
			return params, err
		}
	}
	if err := json.Unmarshal(raw, &params); err != nil {
		return params, err
	}
	return params, nil
}

// reportOutcome notifies the sink of one finished call. An empty tag means
// success. Sink panics are swallowed so observability can never break a
// tool response.
func reportOutcome(sink telemetry.Sink, tool string, start time.Time, tag string) {
	defer func() { _ = recover() }()
	if sink == nil {
		return
	}
	status := telemetry.StatusSuccess
	if tag != "" {
		status = telemetry.StatusError
	}
	sink.ToolCalled(telemetry.CallOutcome{
		Tool:     tool,
		Status:   status,
		Duration: time.Since(start),
		ErrorTag: tag,
	})
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
