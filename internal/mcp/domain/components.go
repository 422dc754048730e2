package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/mcp/service"
	"github.com/quarrylabs/quarry-mcp/internal/quarry"
	"github.com/quarrylabs/quarry-mcp/internal/telemetry"
)

// ComponentClient is the slice of the Quarry API the component tools use.
type ComponentClient interface {
	ListComponents(ctx context.Context, projectID string) ([]quarry.Component, error)
	GetComponent(ctx context.Context, id string) (quarry.Component, error)
	CreateComponent(ctx context.Context, params quarry.CreateComponentParams) (quarry.Component, error)
	UpdateComponent(ctx context.Context, id string, params quarry.UpdateComponentParams) (quarry.Component, error)
	DeleteComponent(ctx context.Context, id string) error
}

// ComponentResult is the tool-facing view of a component.
type ComponentResult struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	LeadID      string `json:"lead_id,omitempty"`
	IssueCount  int    `json:"issue_count"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// ComponentListResult wraps a component listing.
type ComponentListResult struct {
	Components []ComponentResult `json:"components"`
}

func newComponentResult(component quarry.Component) ComponentResult {
	return ComponentResult{
		ID:          component.ID,
		ProjectID:   component.ProjectID,
		Name:        component.Name,
		Description: component.Description,
		LeadID:      component.LeadID,
		IssueCount:  component.IssueCount,
		CreatedAt:   formatTimestamp(component.CreatedAt),
		UpdatedAt:   formatTimestamp(component.UpdatedAt),
	}
}

// ListComponentsInput holds the arguments for the list_components tool.
type ListComponentsInput struct {
	ProjectID string `json:"project_id" jsonschema:"the project whose components to list"`
}

// ListComponentsTool defines the MCP tool for listing components.
func ListComponentsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_components",
		Description: "Lists the components of a project",
	}
}

// ListComponentsHandler returns the components of a project.
func ListComponentsHandler(client ComponentClient) func(context.Context, ListComponentsInput) (ComponentListResult, error) {
	return func(ctx context.Context, input ListComponentsInput) (ComponentListResult, error) {
		components, err := client.ListComponents(ctx, input.ProjectID)
		if err != nil {
			return ComponentListResult{}, err
		}
		result := ComponentListResult{Components: make([]ComponentResult, 0, len(components))}
		for _, component := range components {
			result.Components = append(result.Components, newComponentResult(component))
		}
		return result, nil
	}
}

// GetComponentInput holds the arguments for the get_component tool.
type GetComponentInput struct {
	ComponentID string `json:"component_id" jsonschema:"the component identifier"`
}

// GetComponentTool defines the MCP tool for fetching one component.
func GetComponentTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_component",
		Description: "Gets a single component by its identifier",
	}
}

// GetComponentHandler fetches one component.
func GetComponentHandler(client ComponentClient) func(context.Context, GetComponentInput) (ComponentResult, error) {
	return func(ctx context.Context, input GetComponentInput) (ComponentResult, error) {
		component, err := client.GetComponent(ctx, input.ComponentID)
		if err != nil {
			return ComponentResult{}, err
		}
		return newComponentResult(component), nil
	}
}

// CreateComponentInput holds the arguments for the create_component tool.
type CreateComponentInput struct {
	ProjectID   string `json:"project_id" jsonschema:"the project to create the component in"`
	Name        string `json:"name" jsonschema:"the component name"`
	Description string `json:"description,omitempty" jsonschema:"optional component description"`
	LeadID      string `json:"lead_id,omitempty" jsonschema:"optional member id of the component lead"`
}

// CreateComponentTool defines the MCP tool for creating a component.
func CreateComponentTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_component",
		Description: "Creates a component inside a project",
	}
}

// CreateComponentHandler creates a component.
func CreateComponentHandler(client ComponentClient) func(context.Context, CreateComponentInput) (ComponentResult, error) {
	return func(ctx context.Context, input CreateComponentInput) (ComponentResult, error) {
		component, err := client.CreateComponent(ctx, quarry.CreateComponentParams{
			ProjectID:   input.ProjectID,
			Name:        input.Name,
			Description: input.Description,
			LeadID:      input.LeadID,
		})
		if err != nil {
			return ComponentResult{}, err
		}
		return newComponentResult(component), nil
	}
}

// UpdateComponentInput holds the arguments for the update_component tool.
// Omitted fields keep their current value.
type UpdateComponentInput struct {
	ComponentID string  `json:"component_id" jsonschema:"the component identifier"`
	Name        *string `json:"name,omitempty" jsonschema:"new component name"`
	Description *string `json:"description,omitempty" jsonschema:"new component description"`
	LeadID      *string `json:"lead_id,omitempty" jsonschema:"member id of the new component lead or empty to clear"`
}

// UpdateComponentTool defines the MCP tool for updating a component.
func UpdateComponentTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_component",
		Description: "Updates a component; omitted fields keep their current value",
	}
}

// UpdateComponentHandler applies a partial update to a component.
func UpdateComponentHandler(client ComponentClient) func(context.Context, UpdateComponentInput) (ComponentResult, error) {
	return func(ctx context.Context, input UpdateComponentInput) (ComponentResult, error) {
		component, err := client.UpdateComponent(ctx, input.ComponentID, quarry.UpdateComponentParams{
			Name:        input.Name,
			Description: input.Description,
			LeadID:      input.LeadID,
		})
		if err != nil {
			return ComponentResult{}, err
		}
		return newComponentResult(component), nil
	}
}

// DeleteComponentInput holds the arguments for the delete_component tool.
type DeleteComponentInput struct {
	ComponentID string `json:"component_id" jsonschema:"the component identifier"`
}

// DeleteComponentTool defines the MCP tool for deleting a component.
func DeleteComponentTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_component",
		Description: "Deletes a component; its issues stay and lose the component",
	}
}

// DeleteComponentHandler deletes a component.
func DeleteComponentHandler(client ComponentClient) func(context.Context, DeleteComponentInput) (DeletionResult, error) {
	return func(ctx context.Context, input DeleteComponentInput) (DeletionResult, error) {
		if err := client.DeleteComponent(ctx, input.ComponentID); err != nil {
			return DeletionResult{}, err
		}
		return deleted(input.ComponentID), nil
	}
}

// ComponentToolSet builds the components tool category.
func ComponentToolSet(client ComponentClient, sink telemetry.Sink) *service.ToolSet {
	set := service.NewToolSet("components")
	service.AddTool(set, ListComponentsTool(), sink, ListComponentsHandler(client))
	service.AddTool(set, GetComponentTool(), sink, GetComponentHandler(client))
	service.AddTool(set, CreateComponentTool(), sink, CreateComponentHandler(client))
	service.AddTool(set, UpdateComponentTool(), sink, UpdateComponentHandler(client))
	service.AddTool(set, DeleteComponentTool(), sink, DeleteComponentHandler(client))
	return set
}
