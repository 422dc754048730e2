package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/mcp/service"
	"github.com/quarrylabs/quarry-mcp/internal/quarry"
	"github.com/quarrylabs/quarry-mcp/internal/telemetry"
)

// IssueClient is the slice of the Quarry API the issue tools use.
type IssueClient interface {
	ListIssues(ctx context.Context, params quarry.ListIssuesParams) ([]quarry.Issue, error)
	GetIssue(ctx context.Context, id string) (quarry.Issue, error)
	CreateIssue(ctx context.Context, params quarry.CreateIssueParams) (quarry.Issue, error)
	UpdateIssue(ctx context.Context, id string, params quarry.UpdateIssueParams) (quarry.Issue, error)
	DeleteIssue(ctx context.Context, id string) error
	SearchIssues(ctx context.Context, params quarry.SearchIssuesParams) ([]quarry.Issue, error)
	ListMyIssues(ctx context.Context, status string) ([]quarry.Issue, error)
}

// IssueResult is the tool-facing view of an issue. ID is the human-facing
// key such as "QRY-42".
type IssueResult struct {
	ID          string   `json:"id"`
	ProjectID   string   `json:"project_id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	AssigneeID  string   `json:"assignee_id,omitempty"`
	ComponentID string   `json:"component_id,omitempty"`
	MilestoneID string   `json:"milestone_id,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	Estimate    float64  `json:"estimate,omitempty"`
	DueDate     string   `json:"due_date,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

// IssueListResult wraps an issue listing.
type IssueListResult struct {
	Issues []IssueResult `json:"issues"`
}

func newIssueResult(issue quarry.Issue) IssueResult {
	return IssueResult{
		ID:          issue.ID,
		ProjectID:   issue.ProjectID,
		Title:       issue.Title,
		Description: issue.Description,
		Status:      issue.Status,
		Priority:    issue.Priority,
		AssigneeID:  issue.AssigneeID,
		ComponentID: issue.ComponentID,
		MilestoneID: issue.MilestoneID,
		Labels:      issue.Labels,
		Estimate:    issue.Estimate,
		DueDate:     issue.DueDate,
		CreatedAt:   formatTimestamp(issue.CreatedAt),
		UpdatedAt:   formatTimestamp(issue.UpdatedAt),
	}
}

func newIssueListResult(issues []quarry.Issue) IssueListResult {
	result := IssueListResult{Issues: make([]IssueResult, 0, len(issues))}
	for _, issue := range issues {
		result.Issues = append(result.Issues, newIssueResult(issue))
	}
	return result
}

// ListIssuesInput holds the arguments for the list_issues tool. All
// filters are optional and combine with AND semantics.
type ListIssuesInput struct {
	ProjectID   string `json:"project_id,omitempty" jsonschema:"filter by project identifier"`
	Status      string `json:"status,omitempty" jsonschema:"filter by status (backlog/todo/in_progress/done/canceled)"`
	Priority    string `json:"priority,omitempty" jsonschema:"filter by priority (low/medium/high/urgent)"`
	AssigneeID  string `json:"assignee_id,omitempty" jsonschema:"filter by assignee member id"`
	ComponentID string `json:"component_id,omitempty" jsonschema:"filter by component id"`
	MilestoneID string `json:"milestone_id,omitempty" jsonschema:"filter by milestone id"`
	Limit       int    `json:"limit,omitempty" jsonschema:"maximum number of issues to return"`
}

// ListIssuesTool defines the MCP tool for listing issues.
func ListIssuesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_issues",
		Description: "Lists issues with optional filters for project and status and priority and assignee",
	}
}

// ListIssuesHandler returns issues matching the given filters.
func ListIssuesHandler(client IssueClient) func(context.Context, ListIssuesInput) (IssueListResult, error) {
	return func(ctx context.Context, input ListIssuesInput) (IssueListResult, error) {
		issues, err := client.ListIssues(ctx, quarry.ListIssuesParams{
			ProjectID:   input.ProjectID,
			Status:      normalizeEnum(input.Status),
			Priority:    normalizeEnum(input.Priority),
			AssigneeID:  input.AssigneeID,
			ComponentID: input.ComponentID,
			MilestoneID: input.MilestoneID,
			Limit:       input.Limit,
		})
		if err != nil {
			return IssueListResult{}, err
		}
		return newIssueListResult(issues), nil
	}
}

// GetIssueInput holds the arguments for the get_issue tool.
type GetIssueInput struct {
	IssueID string `json:"issue_id" jsonschema:"the issue key such as QRY-42"`
}

// GetIssueTool defines the MCP tool for fetching one issue.
func GetIssueTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_issue",
		Description: "Gets a single issue by its key",
	}
}

// GetIssueHandler fetches one issue.
func GetIssueHandler(client IssueClient) func(context.Context, GetIssueInput) (IssueResult, error) {
	return func(ctx context.Context, input GetIssueInput) (IssueResult, error) {
		issue, err := client.GetIssue(ctx, input.IssueID)
		if err != nil {
			return IssueResult{}, err
		}
		return newIssueResult(issue), nil
	}
}

// CreateIssueInput holds the arguments for the create_issue tool.
type CreateIssueInput struct {
	ProjectID   string   `json:"project_id" jsonschema:"the project to create the issue in"`
	Title       string   `json:"title" jsonschema:"the issue title"`
	Description string   `json:"description,omitempty" jsonschema:"markdown issue description"`
	Status      string   `json:"status,omitempty" jsonschema:"initial status (backlog/todo/in_progress/done/canceled)"`
	Priority    string   `json:"priority,omitempty" jsonschema:"issue priority (low/medium/high/urgent)"`
	AssigneeID  string   `json:"assignee_id,omitempty" jsonschema:"member id to assign the issue to"`
	ComponentID string   `json:"component_id,omitempty" jsonschema:"component to file the issue under"`
	MilestoneID string   `json:"milestone_id,omitempty" jsonschema:"milestone to schedule the issue in"`
	Labels      []string `json:"labels,omitempty" jsonschema:"label names to apply"`
	Estimate    float64  `json:"estimate,omitempty" jsonschema:"estimate in points"`
	DueDate     string   `json:"due_date,omitempty" jsonschema:"due date formatted YYYY-MM-DD"`
}

// CreateIssueTool defines the MCP tool for creating an issue.
func CreateIssueTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_issue",
		Description: "Creates an issue in a project",
	}
}

// CreateIssueHandler creates an issue.
func CreateIssueHandler(client IssueClient) func(context.Context, CreateIssueInput) (IssueResult, error) {
	return func(ctx context.Context, input CreateIssueInput) (IssueResult, error) {
		issue, err := client.CreateIssue(ctx, quarry.CreateIssueParams{
			ProjectID:   input.ProjectID,
			Title:       input.Title,
			Description: input.Description,
			Status:      normalizeEnum(input.Status),
			Priority:    normalizeEnum(input.Priority),
			AssigneeID:  input.AssigneeID,
			ComponentID: input.ComponentID,
			MilestoneID: input.MilestoneID,
			Labels:      input.Labels,
			Estimate:    input.Estimate,
			DueDate:     input.DueDate,
		})
		if err != nil {
			return IssueResult{}, err
		}
		return newIssueResult(issue), nil
	}
}

// UpdateIssueInput holds the arguments for the update_issue tool. Omitted
// fields keep their current value; an explicit empty string clears a
// clearable field such as the assignee.
type UpdateIssueInput struct {
	IssueID     string    `json:"issue_id" jsonschema:"the issue key such as QRY-42"`
	Title       *string   `json:"title,omitempty" jsonschema:"new issue title"`
	Description *string   `json:"description,omitempty" jsonschema:"new markdown description"`
	Status      *string   `json:"status,omitempty" jsonschema:"new status (backlog/todo/in_progress/done/canceled)"`
	Priority    *string   `json:"priority,omitempty" jsonschema:"new priority (low/medium/high/urgent)"`
	AssigneeID  *string   `json:"assignee_id,omitempty" jsonschema:"new assignee member id or empty to unassign"`
	ComponentID *string   `json:"component_id,omitempty" jsonschema:"new component id or empty to clear"`
	MilestoneID *string   `json:"milestone_id,omitempty" jsonschema:"new milestone id or empty to clear"`
	Labels      *[]string `json:"labels,omitempty" jsonschema:"full replacement set of label names"`
	Estimate    *float64  `json:"estimate,omitempty" jsonschema:"new estimate in points"`
	DueDate     *string   `json:"due_date,omitempty" jsonschema:"new due date formatted YYYY-MM-DD or empty to clear"`
}

// UpdateIssueTool defines the MCP tool for updating an issue.
func UpdateIssueTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_issue",
		Description: "Updates an issue; omitted fields keep their current value",
	}
}

// UpdateIssueHandler applies a partial update to an issue.
func UpdateIssueHandler(client IssueClient) func(context.Context, UpdateIssueInput) (IssueResult, error) {
	return func(ctx context.Context, input UpdateIssueInput) (IssueResult, error) {
		issue, err := client.UpdateIssue(ctx, input.IssueID, quarry.UpdateIssueParams{
			Title:       input.Title,
			Description: input.Description,
			Status:      normalizeEnumPtr(input.Status),
			Priority:    normalizeEnumPtr(input.Priority),
			AssigneeID:  input.AssigneeID,
			ComponentID: input.ComponentID,
			MilestoneID: input.MilestoneID,
			Labels:      input.Labels,
			Estimate:    input.Estimate,
			DueDate:     input.DueDate,
		})
		if err != nil {
			return IssueResult{}, err
		}
		return newIssueResult(issue), nil
	}
}

// DeleteIssueInput holds the arguments for the delete_issue tool.
type DeleteIssueInput struct {
	IssueID string `json:"issue_id" jsonschema:"the issue key such as QRY-42"`
}

// DeleteIssueTool defines the MCP tool for deleting an issue.
func DeleteIssueTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_issue",
		Description: "Deletes an issue permanently",
	}
}

// DeleteIssueHandler deletes an issue.
func DeleteIssueHandler(client IssueClient) func(context.Context, DeleteIssueInput) (DeletionResult, error) {
	return func(ctx context.Context, input DeleteIssueInput) (DeletionResult, error) {
		if err := client.DeleteIssue(ctx, input.IssueID); err != nil {
			return DeletionResult{}, err
		}
		return deleted(input.IssueID), nil
	}
}

// SearchIssuesInput holds the arguments for the search_issues tool.
type SearchIssuesInput struct {
	Query     string `json:"query" jsonschema:"full-text search over issue titles and descriptions"`
	ProjectID string `json:"project_id,omitempty" jsonschema:"restrict the search to one project"`
	Limit     int    `json:"limit,omitempty" jsonschema:"maximum number of issues to return"`
}

// SearchIssuesTool defines the MCP tool for searching issues.
func SearchIssuesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search_issues",
		Description: "Searches issue titles and descriptions with a full-text query",
	}
}

// SearchIssuesHandler runs a full-text issue search.
func SearchIssuesHandler(client IssueClient) func(context.Context, SearchIssuesInput) (IssueListResult, error) {
	return func(ctx context.Context, input SearchIssuesInput) (IssueListResult, error) {
		issues, err := client.SearchIssues(ctx, quarry.SearchIssuesParams{
			Query:     input.Query,
			ProjectID: input.ProjectID,
			Limit:     input.Limit,
		})
		if err != nil {
			return IssueListResult{}, err
		}
		return newIssueListResult(issues), nil
	}
}

// ListMyIssuesInput holds the arguments for the list_my_issues tool.
type ListMyIssuesInput struct {
	Status string `json:"status,omitempty" jsonschema:"filter by status (backlog/todo/in_progress/done/canceled)"`
}

// ListMyIssuesTool defines the MCP tool for listing the caller's issues.
func ListMyIssuesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_my_issues",
		Description: "Lists the issues assigned to the authenticated user",
	}
}

// ListMyIssuesHandler returns the issues assigned to the caller.
func ListMyIssuesHandler(client IssueClient) func(context.Context, ListMyIssuesInput) (IssueListResult, error) {
	return func(ctx context.Context, input ListMyIssuesInput) (IssueListResult, error) {
		issues, err := client.ListMyIssues(ctx, normalizeEnum(input.Status))
		if err != nil {
			return IssueListResult{}, err
		}
		return newIssueListResult(issues), nil
	}
}

// IssueToolSet builds the issues tool category.
func IssueToolSet(client IssueClient, sink telemetry.Sink) *service.ToolSet {
	set := service.NewToolSet("issues")
	service.AddTool(set, ListIssuesTool(), sink, ListIssuesHandler(client))
	service.AddTool(set, GetIssueTool(), sink, GetIssueHandler(client))
	service.AddTool(set, CreateIssueTool(), sink, CreateIssueHandler(client))
	service.AddTool(set, UpdateIssueTool(), sink, UpdateIssueHandler(client))
	service.AddTool(set, DeleteIssueTool(), sink, DeleteIssueHandler(client))
	service.AddTool(set, SearchIssuesTool(), sink, SearchIssuesHandler(client))
	service.AddTool(set, ListMyIssuesTool(), sink, ListMyIssuesHandler(client))
	return set
}
