package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/quarry"
)

// connectCatalogue builds a protocol server around the given sets and an
// SDK client joined via in-memory transports. Returns the client session
// for making protocol calls.
func connectCatalogue(t *testing.T, sink *fakeSink, sets ...*ToolSet) *mcp.ClientSession {
	t.Helper()

	registry, err := NewRegistry(sets...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	server := NewServer(ServerConfig{Registry: registry, Sink: sink})

	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.newProtocolServer().Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = clientSession.Close() })

	return clientSession
}

// TestProtocolListTools returns the registered tools with their derived
// schemas over the wire.
func TestProtocolListTools(t *testing.T) {
	sink := &fakeSink{}
	session := connectCatalogue(t, sink, echoToolSet(sink))

	result, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Tools) != 1 {
		t.Fatalf("expected one tool, got %d", len(result.Tools))
	}
	tool := result.Tools[0]
	if tool.Name != "echo" {
		t.Errorf("expected tool %q, got %q", "echo", tool.Name)
	}
	if tool.Description == "" {
		t.Error("expected a description")
	}
	if tool.InputSchema == nil {
		t.Error("expected an input schema")
	}
}

// TestProtocolFirstListToolsFiresOnce deduplicates the first-listing
// event across repeated listings.
func TestProtocolFirstListToolsFiresOnce(t *testing.T) {
	sink := &fakeSink{}
	session := connectCatalogue(t, sink, echoToolSet(sink))

	for range 3 {
		if _, err := session.ListTools(context.Background(), nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := sink.firstListCount(); got != 1 {
		t.Errorf("expected one first-list event, got %d", got)
	}
}

// TestProtocolCallToolSuccess runs a call end-to-end through the JSON-RPC
// layer.
func TestProtocolCallToolSuccess(t *testing.T) {
	sink := &fakeSink{}
	session := connectCatalogue(t, sink, echoToolSet(sink))

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "echo",
		Arguments: map[string]any{"text": "over the wire"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("expected success result")
	}

	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	var out echoResult
	if err := json.Unmarshal([]byte(text.Text), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Echo != "over the wire" {
		t.Errorf("expected echo %q, got %q", "over the wire", out.Echo)
	}
}

// TestProtocolCallToolValidation reports schema violations in-band.
func TestProtocolCallToolValidation(t *testing.T) {
	sink := &fakeSink{}
	session := connectCatalogue(t, sink, echoToolSet(sink))

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "echo",
		Arguments: map[string]any{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}
	if tags := sink.outcomeTags(); len(tags) != 1 || tags[0] != TagValidation {
		t.Errorf("expected one validation outcome, got %v", tags)
	}
}

// TestProtocolCallToolDomainError carries domain failures to the caller
// as tagged error results, not protocol errors.
func TestProtocolCallToolDomainError(t *testing.T) {
	sink := &fakeSink{}
	set := NewToolSet("issues")
	AddTool(set, &mcp.Tool{Name: "get_issue", Description: "Get one issue."}, sink, func(_ context.Context, p echoParams) (echoResult, error) {
		return echoResult{}, &quarry.NotFoundError{Kind: "issue", ID: p.Text}
	})
	session := connectCatalogue(t, sink, set)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_issue",
		Arguments: map[string]any{"text": "QRY-404"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	if !strings.Contains(text.Text, "QRY-404") {
		t.Errorf("expected missing identifier in %q", text.Text)
	}
	if tags := sink.outcomeTags(); len(tags) != 1 || tags[0] != "issue_not_found" {
		t.Errorf("expected one issue_not_found outcome, got %v", tags)
	}
}

// TestProtocolCallToolUnknownName answers unregistered names with an
// in-band error result so any client can handle it uniformly.
func TestProtocolCallToolUnknownName(t *testing.T) {
	sink := &fakeSink{}
	session := connectCatalogue(t, sink, echoToolSet(sink))

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "nonexistent_tool",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	if text.Text != "unknown tool: nonexistent_tool" {
		t.Errorf("unexpected text %q", text.Text)
	}
	if tags := sink.outcomeTags(); len(tags) != 1 || tags[0] != TagUnknownTool {
		t.Errorf("expected one unknown_tool outcome, got %v", tags)
	}
}

// TestProtocolResources serves registered resources by URI.
func TestProtocolResources(t *testing.T) {
	sink := &fakeSink{}
	registry, err := NewRegistry(echoToolSet(sink))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	server := NewServer(ServerConfig{
		Registry: registry,
		Sink:     sink,
		Resources: []RegisteredResource{{
			Resource: &mcp.Resource{
				URI:      "quarry://projects",
				Name:     "projects",
				MIMEType: "application/json",
			},
			Handler: func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
				return &mcp.ReadResourceResult{Contents: []*mcp.ResourceContents{{
					URI:      req.Params.URI,
					MIMEType: "application/json",
					Text:     `[{"id":"prj-1"}]`,
				}}}, nil
			},
		}},
	})

	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.newProtocolServer().Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })

	result, err := session.ReadResource(ctx, &mcp.ReadResourceParams{URI: "quarry://projects"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("expected one content item, got %d", len(result.Contents))
	}
	if result.Contents[0].Text != `[{"id":"prj-1"}]` {
		t.Errorf("unexpected resource payload %q", result.Contents[0].Text)
	}
}
