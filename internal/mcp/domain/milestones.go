package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/mcp/service"
	"github.com/quarrylabs/quarry-mcp/internal/quarry"
	"github.com/quarrylabs/quarry-mcp/internal/telemetry"
)

// MilestoneClient is the slice of the Quarry API the milestone tools use.
type MilestoneClient interface {
	ListMilestones(ctx context.Context, projectID string) ([]quarry.Milestone, error)
	GetMilestone(ctx context.Context, id string) (quarry.Milestone, error)
	CreateMilestone(ctx context.Context, params quarry.CreateMilestoneParams) (quarry.Milestone, error)
	UpdateMilestone(ctx context.Context, id string, params quarry.UpdateMilestoneParams) (quarry.Milestone, error)
	DeleteMilestone(ctx context.Context, id string) error
}

// MilestoneResult is the tool-facing view of a milestone. Progress is the
// completed fraction of its issues between 0 and 1.
type MilestoneResult struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"project_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	TargetDate  string  `json:"target_date,omitempty"`
	Status      string  `json:"status"`
	Progress    float64 `json:"progress"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

// MilestoneListResult wraps a milestone listing.
type MilestoneListResult struct {
	Milestones []MilestoneResult `json:"milestones"`
}

func newMilestoneResult(milestone quarry.Milestone) MilestoneResult {
	return MilestoneResult{
		ID:          milestone.ID,
		ProjectID:   milestone.ProjectID,
		Name:        milestone.Name,
		Description: milestone.Description,
		TargetDate:  milestone.TargetDate,
		Status:      milestone.Status,
		Progress:    milestone.Progress,
		CreatedAt:   formatTimestamp(milestone.CreatedAt),
		UpdatedAt:   formatTimestamp(milestone.UpdatedAt),
	}
}

// ListMilestonesInput holds the arguments for the list_milestones tool.
type ListMilestonesInput struct {
	ProjectID string `json:"project_id" jsonschema:"the project whose milestones to list"`
}

// ListMilestonesTool defines the MCP tool for listing milestones.
func ListMilestonesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_milestones",
		Description: "Lists the milestones of a project with their progress",
	}
}

// ListMilestonesHandler returns the milestones of a project.
func ListMilestonesHandler(client MilestoneClient) func(context.Context, ListMilestonesInput) (MilestoneListResult, error) {
	return func(ctx context.Context, input ListMilestonesInput) (MilestoneListResult, error) {
		milestones, err := client.ListMilestones(ctx, input.ProjectID)
		if err != nil {
			return MilestoneListResult{}, err
		}
		result := MilestoneListResult{Milestones: make([]MilestoneResult, 0, len(milestones))}
		for _, milestone := range milestones {
			result.Milestones = append(result.Milestones, newMilestoneResult(milestone))
		}
		return result, nil
	}
}

// GetMilestoneInput holds the arguments for the get_milestone tool.
type GetMilestoneInput struct {
	MilestoneID string `json:"milestone_id" jsonschema:"the milestone identifier"`
}

// GetMilestoneTool defines the MCP tool for fetching one milestone.
func GetMilestoneTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_milestone",
		Description: "Gets a single milestone by its identifier",
	}
}

// GetMilestoneHandler fetches one milestone.
func GetMilestoneHandler(client MilestoneClient) func(context.Context, GetMilestoneInput) (MilestoneResult, error) {
	return func(ctx context.Context, input GetMilestoneInput) (MilestoneResult, error) {
		milestone, err := client.GetMilestone(ctx, input.MilestoneID)
		if err != nil {
			return MilestoneResult{}, err
		}
		return newMilestoneResult(milestone), nil
	}
}

// CreateMilestoneInput holds the arguments for the create_milestone tool.
type CreateMilestoneInput struct {
	ProjectID   string `json:"project_id" jsonschema:"the project to create the milestone in"`
	Name        string `json:"name" jsonschema:"the milestone name"`
	Description string `json:"description,omitempty" jsonschema:"optional milestone description"`
	TargetDate  string `json:"target_date,omitempty" jsonschema:"target date formatted YYYY-MM-DD"`
}

// CreateMilestoneTool defines the MCP tool for creating a milestone.
func CreateMilestoneTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_milestone",
		Description: "Creates a milestone inside a project",
	}
}

// CreateMilestoneHandler creates a milestone.
func CreateMilestoneHandler(client MilestoneClient) func(context.Context, CreateMilestoneInput) (MilestoneResult, error) {
	return func(ctx context.Context, input CreateMilestoneInput) (MilestoneResult, error) {
		milestone, err := client.CreateMilestone(ctx, quarry.CreateMilestoneParams{
			ProjectID:   input.ProjectID,
			Name:        input.Name,
			Description: input.Description,
			TargetDate:  input.TargetDate,
		})
		if err != nil {
			return MilestoneResult{}, err
		}
		return newMilestoneResult(milestone), nil
	}
}

// UpdateMilestoneInput holds the arguments for the update_milestone tool.
// Omitted fields keep their current value.
type UpdateMilestoneInput struct {
	MilestoneID string  `json:"milestone_id" jsonschema:"the milestone identifier"`
	Name        *string `json:"name,omitempty" jsonschema:"new milestone name"`
	Description *string `json:"description,omitempty" jsonschema:"new milestone description"`
	TargetDate  *string `json:"target_date,omitempty" jsonschema:"new target date formatted YYYY-MM-DD or empty to clear"`
	Status      *string `json:"status,omitempty" jsonschema:"new status (planned/active/completed)"`
}

// UpdateMilestoneTool defines the MCP tool for updating a milestone.
func UpdateMilestoneTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_milestone",
		Description: "Updates a milestone; omitted fields keep their current value",
	}
}

// UpdateMilestoneHandler applies a partial update to a milestone.
func UpdateMilestoneHandler(client MilestoneClient) func(context.Context, UpdateMilestoneInput) (MilestoneResult, error) {
	return func(ctx context.Context, input UpdateMilestoneInput) (MilestoneResult, error) {
		milestone, err := client.UpdateMilestone(ctx, input.MilestoneID, quarry.UpdateMilestoneParams{
			Name:        input.Name,
			Description: input.Description,
			TargetDate:  input.TargetDate,
			Status:      normalizeEnumPtr(input.Status),
		})
		if err != nil {
			return MilestoneResult{}, err
		}
		return newMilestoneResult(milestone), nil
	}
}

// DeleteMilestoneInput holds the arguments for the delete_milestone tool.
type DeleteMilestoneInput struct {
	MilestoneID string `json:"milestone_id" jsonschema:"the milestone identifier"`
}

// DeleteMilestoneTool defines the MCP tool for deleting a milestone.
func DeleteMilestoneTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_milestone",
		Description: "Deletes a milestone; its issues stay and lose the milestone",
	}
}

// DeleteMilestoneHandler deletes a milestone.
func DeleteMilestoneHandler(client MilestoneClient) func(context.Context, DeleteMilestoneInput) (DeletionResult, error) {
	return func(ctx context.Context, input DeleteMilestoneInput) (DeletionResult, error) {
		if err := client.DeleteMilestone(ctx, input.MilestoneID); err != nil {
			return DeletionResult{}, err
		}
		return deleted(input.MilestoneID), nil
	}
}

// MilestoneToolSet builds the milestones tool category.
func MilestoneToolSet(client MilestoneClient, sink telemetry.Sink) *service.ToolSet {
	set := service.NewToolSet("milestones")
	service.AddTool(set, ListMilestonesTool(), sink, ListMilestonesHandler(client))
	service.AddTool(set, GetMilestoneTool(), sink, GetMilestoneHandler(client))
	service.AddTool(set, CreateMilestoneTool(), sink, CreateMilestoneHandler(client))
	service.AddTool(set, UpdateMilestoneTool(), sink, UpdateMilestoneHandler(client))
	service.AddTool(set, DeleteMilestoneTool(), sink, DeleteMilestoneHandler(client))
	return set
}
