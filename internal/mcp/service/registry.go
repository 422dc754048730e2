package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/telemetry"
)

// RegisteredTool pairs a tool definition with its category and wrapped
// handler.
type RegisteredTool struct {
	Tool     *mcp.Tool
	Category string
	Handler  mcp.ToolHandler
}

// ToolSet accumulates the tools of one category in declaration order.
// Schema derivation failures are held back and surfaced when the set is
// folded into a Registry, so registration code stays assignment-free.
type ToolSet struct {
	category string
	tools    []RegisteredTool
	err      error
}

// NewToolSet creates an empty tool set for the given category.
func NewToolSet(category string) *ToolSet {
	return &ToolSet{category: category}
}

// Category returns the category name the set was created with.
func (s *ToolSet) Category() string {
	if s == nil {
		return ""
	}
	return s.category
}

// AddTool derives the input schema from P, wraps op in the uniform call
// protocol, and appends the tool to the set.
func AddTool[P, R any](set *ToolSet, tool *mcp.Tool, sink telemetry.Sink, op func(context.Context, P) (R, error)) {
	if set == nil {
		return
	}
	if tool == nil || tool.Name == "" {
		set.err = errors.Join(set.err, fmt.Errorf("tool in set %q has no name", set.category))
		return
	}
	schema, err := jsonschema.For[P](nil)
	if err != nil {
		set.err = errors.Join(set.err, fmt.Errorf("derive schema for tool %q: %w", tool.Name, err))
		return
	}
	resolved, err := schema.Resolve(nil)
	if err != nil {
		set.err = errors.Join(set.err, fmt.Errorf("resolve schema for tool %q: %w", tool.Name, err))
		return
	}
	clone := *tool
	clone.InputSchema = schema
	set.tools = append(set.tools, RegisteredTool{
		Tool:     &clone,
		Category: set.category,
		Handler:  NewToolHandler(tool.Name, resolved, sink, op),
	})
}

// Registry is the immutable name-keyed tool catalogue the server serves
// from.
type Registry struct {
	order      []RegisteredTool
	byName     map[string]RegisteredTool
	categories []string
}

// NewRegistry folds the given sets into one catalogue. Duplicate tool
// names and deferred schema errors fail construction so a bad catalogue
// never reaches a live server.
func NewRegistry(sets ...*ToolSet) (*Registry, error) {
	reg := &Registry{byName: make(map[string]RegisteredTool)}
	for _, set := range sets {
		if set == nil {
			continue
		}
		if set.err != nil {
			return nil, set.err
		}
		for _, tool := range set.tools {
			if _, exists := reg.byName[tool.Tool.Name]; exists {
				return nil, fmt.Errorf("duplicate tool name %q", tool.Tool.Name)
			}
			reg.byName[tool.Tool.Name] = tool
			reg.order = append(reg.order, tool)
		}
		reg.categories = append(reg.categories, set.category)
	}
	return reg, nil
}

// Tools returns the catalogue in registration order.
func (r *Registry) Tools() []RegisteredTool {
	if r == nil {
		return nil
	}
	return r.order
}

// Get looks up the tool registered under name.
func (r *Registry) Get(name string) (RegisteredTool, bool) {
	if r == nil {
		return RegisteredTool{}, false
	}
	tool, ok := r.byName[name]
	return tool, ok
}

// Len reports the number of registered tools.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// Categories returns the category names in registration order.
func (r *Registry) Categories() []string {
	if r == nil {
		return nil
	}
	return r.categories
}
