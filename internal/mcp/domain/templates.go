package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/mcp/service"
	"github.com/quarrylabs/quarry-mcp/internal/quarry"
	"github.com/quarrylabs/quarry-mcp/internal/telemetry"
)

// TemplateClient is the slice of the Quarry API the template tools use.
type TemplateClient interface {
	ListTemplates(ctx context.Context, params quarry.ListTemplatesParams) ([]quarry.Template, error)
	GetTemplate(ctx context.Context, id string) (quarry.Template, error)
	CreateIssueFromTemplate(ctx context.Context, templateID string, params quarry.CreateIssueFromTemplateParams) (quarry.Issue, error)
}

// TemplateResult is the tool-facing view of an issue template.
// Workspace-wide templates have no project.
type TemplateResult struct {
	ID          string   `json:"id"`
	ProjectID   string   `json:"project_id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Title       string   `json:"title"`
	Body        string   `json:"body,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

// TemplateListResult wraps a template listing.
type TemplateListResult struct {
	Templates []TemplateResult `json:"templates"`
}

func newTemplateResult(template quarry.Template) TemplateResult {
	return TemplateResult{
		ID:          template.ID,
		ProjectID:   template.ProjectID,
		Name:        template.Name,
		Description: template.Description,
		Title:       template.Title,
		Body:        template.Body,
		Priority:    template.Priority,
		Labels:      template.Labels,
		CreatedAt:   formatTimestamp(template.CreatedAt),
	}
}

// ListTemplatesInput holds the arguments for the list_templates tool.
type ListTemplatesInput struct {
	ProjectID string `json:"project_id,omitempty" jsonschema:"restrict the listing to one project's templates"`
}

// ListTemplatesTool defines the MCP tool for listing issue templates.
func ListTemplatesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_templates",
		Description: "Lists issue templates including workspace-wide ones",
	}
}

// ListTemplatesHandler returns issue templates.
func ListTemplatesHandler(client TemplateClient) func(context.Context, ListTemplatesInput) (TemplateListResult, error) {
	return func(ctx context.Context, input ListTemplatesInput) (TemplateListResult, error) {
		templates, err := client.ListTemplates(ctx, quarry.ListTemplatesParams{
			ProjectID: input.ProjectID,
		})
		if err != nil {
			return TemplateListResult{}, err
		}
		result := TemplateListResult{Templates: make([]TemplateResult, 0, len(templates))}
		for _, template := range templates {
			result.Templates = append(result.Templates, newTemplateResult(template))
		}
		return result, nil
	}
}

// GetTemplateInput holds the arguments for the get_template tool.
type GetTemplateInput struct {
	TemplateID string `json:"template_id" jsonschema:"the template identifier"`
}

// GetTemplateTool defines the MCP tool for fetching one template.
func GetTemplateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_template",
		Description: "Gets a single issue template by its identifier",
	}
}

// GetTemplateHandler fetches one template.
func GetTemplateHandler(client TemplateClient) func(context.Context, GetTemplateInput) (TemplateResult, error) {
	return func(ctx context.Context, input GetTemplateInput) (TemplateResult, error) {
		template, err := client.GetTemplate(ctx, input.TemplateID)
		if err != nil {
			return TemplateResult{}, err
		}
		return newTemplateResult(template), nil
	}
}

// CreateIssueFromTemplateInput holds the arguments for the
// create_issue_from_template tool. Title defaults to the template's title.
type CreateIssueFromTemplateInput struct {
	TemplateID string `json:"template_id" jsonschema:"the template to instantiate"`
	ProjectID  string `json:"project_id" jsonschema:"the project to create the issue in"`
	Title      string `json:"title,omitempty" jsonschema:"override for the template title"`
	AssigneeID string `json:"assignee_id,omitempty" jsonschema:"member id to assign the issue to"`
}

// CreateIssueFromTemplateTool defines the MCP tool for instantiating a
// template.
func CreateIssueFromTemplateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_issue_from_template",
		Description: "Creates an issue from a template applying its defaults",
	}
}

// CreateIssueFromTemplateHandler instantiates a template as a new issue.
func CreateIssueFromTemplateHandler(client TemplateClient) func(context.Context, CreateIssueFromTemplateInput) (IssueResult, error) {
	return func(ctx context.Context, input CreateIssueFromTemplateInput) (IssueResult, error) {
		issue, err := client.CreateIssueFromTemplate(ctx, input.TemplateID, quarry.CreateIssueFromTemplateParams{
			ProjectID:  input.ProjectID,
			Title:      input.Title,
			AssigneeID: input.AssigneeID,
		})
		if err != nil {
			return IssueResult{}, err
		}
		return newIssueResult(issue), nil
	}
}

// TemplateToolSet builds the templates tool category.
func TemplateToolSet(client TemplateClient, sink telemetry.Sink) *service.ToolSet {
	set := service.NewToolSet("templates")
	service.AddTool(set, ListTemplatesTool(), sink, ListTemplatesHandler(client))
	service.AddTool(set, GetTemplateTool(), sink, GetTemplateHandler(client))
	service.AddTool(set, CreateIssueFromTemplateTool(), sink, CreateIssueFromTemplateHandler(client))
	return set
}
