package quarry

import (
	"context"
	"net/url"
	"strconv"
)

// ListProjectsParams filters ListProjects.
type ListProjectsParams struct {
	IncludeArchived bool
}

// ListProjects returns the projects visible to the caller.
func (c *Client) ListProjects(ctx context.Context, params ListProjectsParams) ([]Project, error) {
	query := url.Values{}
	if params.IncludeArchived {
		query.Set("include_archived", "true")
	}
	var out struct {
		Projects []Project `json:"projects"`
	}
	if err := c.get(ctx, "/v1/projects", query, &out); err != nil {
		return nil, err
	}
	return out.Projects, nil
}

// GetProject fetches one project by ID or identifier.
func (c *Client) GetProject(ctx context.Context, id string) (Project, error) {
	var out Project
	if err := c.get(ctx, "/v1/projects/"+url.PathEscape(id), nil, &out); err != nil {
		return Project{}, err
	}
	return out, nil
}

// CreateProjectParams holds the fields for a new project.
type CreateProjectParams struct {
	Name        string `json:"name"`
	Identifier  string `json:"identifier"`
	Description string `json:"description,omitempty"`
	LeadID      string `json:"lead_id,omitempty"`
	Private     bool   `json:"private,omitempty"`
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, params CreateProjectParams) (Project, error) {
	var out Project
	if err := c.post(ctx, "/v1/projects", params, &out); err != nil {
		return Project{}, err
	}
	return out, nil
}

// UpdateProjectParams holds a partial project update. Nil fields are left
// unchanged by the remote.
type UpdateProjectParams struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	LeadID      *string `json:"lead_id,omitempty"`
	Private     *bool   `json:"private,omitempty"`
}

// UpdateProject applies a partial update to a project.
func (c *Client) UpdateProject(ctx context.Context, id string, params UpdateProjectParams) (Project, error) {
	var out Project
	if err := c.patch(ctx, "/v1/projects/"+url.PathEscape(id), params, &out); err != nil {
		return Project{}, err
	}
	return out, nil
}

// ArchiveProject archives a project, hiding it from default listings while
// keeping its history readable.
func (c *Client) ArchiveProject(ctx context.Context, id string) (Project, error) {
	var out Project
	if err := c.post(ctx, "/v1/projects/"+url.PathEscape(id)+"/archive", nil, &out); err != nil {
		return Project{}, err
	}
	return out, nil
}

func setIfPositive(query url.Values, key string, value int) {
	if value > 0 {
		query.Set(key, strconv.Itoa(value))
	}
}
