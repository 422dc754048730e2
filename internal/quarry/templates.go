package quarry

import (
	"context"
	"net/url"
)

// ListTemplatesParams filters ListTemplates.
type ListTemplatesParams struct {
	ProjectID string
}

// ListTemplates returns issue templates, optionally narrowed to those of
// one project. Workspace-wide templates have no project.
func (c *Client) ListTemplates(ctx context.Context, params ListTemplatesParams) ([]Template, error) {
	query := url.Values{}
	if params.ProjectID != "" {
		query.Set("project", params.ProjectID)
	}
	var out struct {
		Templates []Template `json:"templates"`
	}
	if err := c.get(ctx, "/v1/templates", query, &out); err != nil {
		return nil, err
	}
	return out.Templates, nil
}

// GetTemplate fetches one template by ID.
func (c *Client) GetTemplate(ctx context.Context, id string) (Template, error) {
	var out Template
	if err := c.get(ctx, "/v1/templates/"+url.PathEscape(id), nil, &out); err != nil {
		return Template{}, err
	}
	return out, nil
}

// CreateIssueFromTemplateParams customizes an issue created from a
// template. Empty fields fall back to the template's defaults.
type CreateIssueFromTemplateParams struct {
	ProjectID  string `json:"project_id"`
	Title      string `json:"title,omitempty"`
	AssigneeID string `json:"assignee_id,omitempty"`
}

// CreateIssueFromTemplate instantiates a template as a new issue.
func (c *Client) CreateIssueFromTemplate(ctx context.Context, templateID string, params CreateIssueFromTemplateParams) (Issue, error) {
	var out Issue
	if err := c.post(ctx, "/v1/templates/"+url.PathEscape(templateID)+"/issues", params, &out); err != nil {
		return Issue{}, err
	}
	return out, nil
}
