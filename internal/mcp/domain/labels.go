package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/mcp/service"
	"github.com/quarrylabs/quarry-mcp/internal/quarry"
	"github.com/quarrylabs/quarry-mcp/internal/telemetry"
)

// LabelClient is the slice of the Quarry API the label tools use.
type LabelClient interface {
	ListLabels(ctx context.Context, projectID string) ([]quarry.Label, error)
	CreateLabel(ctx context.Context, params quarry.CreateLabelParams) (quarry.Label, error)
	DeleteLabel(ctx context.Context, id string) error
}

// LabelResult is the tool-facing view of a label.
type LabelResult struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// LabelListResult wraps a label listing.
type LabelListResult struct {
	Labels []LabelResult `json:"labels"`
}

func newLabelResult(label quarry.Label) LabelResult {
	return LabelResult{
		ID:        label.ID,
		ProjectID: label.ProjectID,
		Name:      label.Name,
		Color:     label.Color,
		CreatedAt: formatTimestamp(label.CreatedAt),
	}
}

// ListLabelsInput holds the arguments for the list_labels tool.
type ListLabelsInput struct {
	ProjectID string `json:"project_id" jsonschema:"the project whose labels to list"`
}

// ListLabelsTool defines the MCP tool for listing labels.
func ListLabelsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_labels",
		Description: "Lists the labels of a project",
	}
}

// ListLabelsHandler returns the labels of a project.
func ListLabelsHandler(client LabelClient) func(context.Context, ListLabelsInput) (LabelListResult, error) {
	return func(ctx context.Context, input ListLabelsInput) (LabelListResult, error) {
		labels, err := client.ListLabels(ctx, input.ProjectID)
		if err != nil {
			return LabelListResult{}, err
		}
		result := LabelListResult{Labels: make([]LabelResult, 0, len(labels))}
		for _, label := range labels {
			result.Labels = append(result.Labels, newLabelResult(label))
		}
		return result, nil
	}
}

// CreateLabelInput holds the arguments for the create_label tool.
type CreateLabelInput struct {
	ProjectID string `json:"project_id" jsonschema:"the project to create the label in"`
	Name      string `json:"name" jsonschema:"the label name"`
	Color     string `json:"color,omitempty" jsonschema:"hex color such as #ff6b35"`
}

// CreateLabelTool defines the MCP tool for creating a label.
func CreateLabelTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_label",
		Description: "Creates a label inside a project",
	}
}

// CreateLabelHandler creates a label.
func CreateLabelHandler(client LabelClient) func(context.Context, CreateLabelInput) (LabelResult, error) {
	return func(ctx context.Context, input CreateLabelInput) (LabelResult, error) {
		label, err := client.CreateLabel(ctx, quarry.CreateLabelParams{
			ProjectID: input.ProjectID,
			Name:      input.Name,
			Color:     input.Color,
		})
		if err != nil {
			return LabelResult{}, err
		}
		return newLabelResult(label), nil
	}
}

// DeleteLabelInput holds the arguments for the delete_label tool.
type DeleteLabelInput struct {
	LabelID string `json:"label_id" jsonschema:"the label identifier"`
}

// DeleteLabelTool defines the MCP tool for deleting a label.
func DeleteLabelTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_label",
		Description: "Deletes a label and removes it from every issue",
	}
}

// DeleteLabelHandler deletes a label.
func DeleteLabelHandler(client LabelClient) func(context.Context, DeleteLabelInput) (DeletionResult, error) {
	return func(ctx context.Context, input DeleteLabelInput) (DeletionResult, error) {
		if err := client.DeleteLabel(ctx, input.LabelID); err != nil {
			return DeletionResult{}, err
		}
		return deleted(input.LabelID), nil
	}
}

// LabelToolSet builds the labels tool category.
func LabelToolSet(client LabelClient, sink telemetry.Sink) *service.ToolSet {
	set := service.NewToolSet("labels")
	service.AddTool(set, ListLabelsTool(), sink, ListLabelsHandler(client))
	service.AddTool(set, CreateLabelTool(), sink, CreateLabelHandler(client))
	service.AddTool(set, DeleteLabelTool(), sink, DeleteLabelHandler(client))
	return set
}
