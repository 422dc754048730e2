package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/mcp/service"
	"github.com/quarrylabs/quarry-mcp/internal/quarry"
	"github.com/quarrylabs/quarry-mcp/internal/telemetry"
)

// ProjectClient is the slice of the Quarry API the project tools use.
type ProjectClient interface {
	ListProjects(ctx context.Context, params quarry.ListProjectsParams) ([]quarry.Project, error)
	GetProject(ctx context.Context, id string) (quarry.Project, error)
	CreateProject(ctx context.Context, params quarry.CreateProjectParams) (quarry.Project, error)
	UpdateProject(ctx context.Context, id string, params quarry.UpdateProjectParams) (quarry.Project, error)
	ArchiveProject(ctx context.Context, id string) (quarry.Project, error)
}

// ProjectResult is the tool-facing view of a project.
type ProjectResult struct {
	ID          string `json:"id"`
	Identifier  string `json:"identifier"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	LeadID      string `json:"lead_id,omitempty"`
	Private     bool   `json:"private"`
	Archived    bool   `json:"archived"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// ProjectListResult wraps a project listing.
type ProjectListResult struct {
	Projects []ProjectResult `json:"projects"`
}

func newProjectResult(project quarry.Project) ProjectResult {
	return ProjectResult{
		ID:          project.ID,
		Identifier:  project.Identifier,
		Name:        project.Name,
		Description: project.Description,
		LeadID:      project.LeadID,
		Private:     project.Private,
		Archived:    project.Archived,
		CreatedAt:   formatTimestamp(project.CreatedAt),
		UpdatedAt:   formatTimestamp(project.UpdatedAt),
	}
}

func newProjectListResult(projects []quarry.Project) ProjectListResult {
	result := ProjectListResult{Projects: make([]ProjectResult, 0, len(projects))}
	for _, project := range projects {
		result.Projects = append(result.Projects, newProjectResult(project))
	}
	return result
}

// ListProjectsInput holds the arguments for the list_projects tool.
type ListProjectsInput struct {
	IncludeArchived bool `json:"include_archived,omitempty" jsonschema:"include archived projects in the listing"`
}

// ListProjectsTool defines the MCP tool for listing projects.
func ListProjectsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_projects",
		Description: "Lists the projects in the workspace",
	}
}

// ListProjectsHandler returns the projects visible to the caller.
func ListProjectsHandler(client ProjectClient) func(context.Context, ListProjectsInput) (ProjectListResult, error) {
	return func(ctx context.Context, input ListProjectsInput) (ProjectListResult, error) {
		projects, err := client.ListProjects(ctx, quarry.ListProjectsParams{
			IncludeArchived: input.IncludeArchived,
		})
		if err != nil {
			return ProjectListResult{}, err
		}
		return newProjectListResult(projects), nil
	}
}

// GetProjectInput holds the arguments for the get_project tool.
type GetProjectInput struct {
	ProjectID string `json:"project_id" jsonschema:"the project identifier"`
}

// GetProjectTool defines the MCP tool for fetching one project.
func GetProjectTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_project",
		Description: "Gets a single project by its identifier",
	}
}

// GetProjectHandler fetches one project.
func GetProjectHandler(client ProjectClient) func(context.Context, GetProjectInput) (ProjectResult, error) {
	return func(ctx context.Context, input GetProjectInput) (ProjectResult, error) {
		project, err := client.GetProject(ctx, input.ProjectID)
		if err != nil {
			return ProjectResult{}, err
		}
		return newProjectResult(project), nil
	}
}

// CreateProjectInput holds the arguments for the create_project tool.
type CreateProjectInput struct {
	Name        string `json:"name" jsonschema:"the project name"`
	Identifier  string `json:"identifier" jsonschema:"short uppercase key used in issue ids such as QRY"`
	Description string `json:"description,omitempty" jsonschema:"optional project description"`
	LeadID      string `json:"lead_id,omitempty" jsonschema:"optional member id of the project lead"`
	Private     bool   `json:"private,omitempty" jsonschema:"restrict the project to invited members"`
}

// CreateProjectTool defines the MCP tool for creating a project.
func CreateProjectTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_project",
		Description: "Creates a project in the workspace",
	}
}

// CreateProjectHandler creates a project.
func CreateProjectHandler(client ProjectClient) func(context.Context, CreateProjectInput) (ProjectResult, error) {
	return func(ctx context.Context, input CreateProjectInput) (ProjectResult, error) {
		project, err := client.CreateProject(ctx, quarry.CreateProjectParams{
			Name:        input.Name,
			Identifier:  input.Identifier,
			Description: input.Description,
			LeadID:      input.LeadID,
			Private:     input.Private,
		})
		if err != nil {
			return ProjectResult{}, err
		}
		return newProjectResult(project), nil
	}
}

// UpdateProjectInput holds the arguments for the update_project tool.
// Omitted fields keep their current value.
type UpdateProjectInput struct {
	ProjectID   string  `json:"project_id" jsonschema:"the project identifier"`
	Name        *string `json:"name,omitempty" jsonschema:"new project name"`
	Description *string `json:"description,omitempty" jsonschema:"new project description"`
	LeadID      *string `json:"lead_id,omitempty" jsonschema:"member id of the new project lead"`
	Private     *bool   `json:"private,omitempty" jsonschema:"restrict the project to invited members"`
}

// UpdateProjectTool defines the MCP tool for updating a project.
func UpdateProjectTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_project",
		Description: "Updates a project; omitted fields keep their current value",
	}
}

// UpdateProjectHandler applies a partial update to a project.
func UpdateProjectHandler(client ProjectClient) func(context.Context, UpdateProjectInput) (ProjectResult, error) {
	return func(ctx context.Context, input UpdateProjectInput) (ProjectResult, error) {
		project, err := client.UpdateProject(ctx, input.ProjectID, quarry.UpdateProjectParams{
			Name:        input.Name,
			Description: input.Description,
			LeadID:      input.LeadID,
			Private:     input.Private,
		})
		if err != nil {
			return ProjectResult{}, err
		}
		return newProjectResult(project), nil
	}
}

// ArchiveProjectInput holds the arguments for the archive_project tool.
type ArchiveProjectInput struct {
	ProjectID string `json:"project_id" jsonschema:"the project identifier"`
}

// ArchiveProjectTool defines the MCP tool for archiving a project.
func ArchiveProjectTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "archive_project",
		Description: "Archives a project; archived projects are hidden from listings by default",
	}
}

// ArchiveProjectHandler archives a project.
func ArchiveProjectHandler(client ProjectClient) func(context.Context, ArchiveProjectInput) (ProjectResult, error) {
	return func(ctx context.Context, input ArchiveProjectInput) (ProjectResult, error) {
		project, err := client.ArchiveProject(ctx, input.ProjectID)
		if err != nil {
			return ProjectResult{}, err
		}
		return newProjectResult(project), nil
	}
}

// ProjectToolSet builds the projects tool category.
func ProjectToolSet(client ProjectClient, sink telemetry.Sink) *service.ToolSet {
	set := service.NewToolSet("projects")
	service.AddTool(set, ListProjectsTool(), sink, ListProjectsHandler(client))
	service.AddTool(set, GetProjectTool(), sink, GetProjectHandler(client))
	service.AddTool(set, CreateProjectTool(), sink, CreateProjectHandler(client))
	service.AddTool(set, UpdateProjectTool(), sink, UpdateProjectHandler(client))
	service.AddTool(set, ArchiveProjectTool(), sink, ArchiveProjectHandler(client))
	return set
}
