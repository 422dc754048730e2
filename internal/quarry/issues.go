package quarry

import (
	"context"
	"net/url"
)

// ListIssuesParams filters ListIssues. Empty fields are not sent.
type ListIssuesParams struct {
	ProjectID   string
	Status      string
	Priority    string
	AssigneeID  string
	ComponentID string
	MilestoneID string
	Limit       int
}

// ListIssues returns issues matching the given filters.
func (c *Client) ListIssues(ctx context.Context, params ListIssuesParams) ([]Issue, error) {
	query := url.Values{}
	if params.ProjectID != "" {
		query.Set("project", params.ProjectID)
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.Priority != "" {
		query.Set("priority", params.Priority)
	}
	if params.AssigneeID != "" {
		query.Set("assignee", params.AssigneeID)
	}
	if params.ComponentID != "" {
		query.Set("component", params.ComponentID)
	}
	if params.MilestoneID != "" {
		query.Set("milestone", params.MilestoneID)
	}
	setIfPositive(query, "limit", params.Limit)

	var out struct {
		Issues []Issue `json:"issues"`
	}
	if err := c.get(ctx, "/v1/issues", query, &out); err != nil {
		return nil, err
	}
	return out.Issues, nil
}

// GetIssue fetches one issue by key ("QRY-42") or opaque ID.
func (c *Client) GetIssue(ctx context.Context, id string) (Issue, error) {
	var out Issue
	if err := c.get(ctx, "/v1/issues/"+url.PathEscape(id), nil, &out); err != nil {
		return Issue{}, err
	}
	return out, nil
}

// CreateIssueParams holds the fields for a new issue. Only ProjectID and
// Title are required by the remote.
type CreateIssueParams struct {
	ProjectID   string   `json:"project_id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	AssigneeID  string   `json:"assignee_id,omitempty"`
	ComponentID string   `json:"component_id,omitempty"`
	MilestoneID string   `json:"milestone_id,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	Estimate    float64  `json:"estimate,omitempty"`
	DueDate     string   `json:"due_date,omitempty"`
}

// CreateIssue creates an issue.
func (c *Client) CreateIssue(ctx context.Context, params CreateIssueParams) (Issue, error) {
	var out Issue
	if err := c.post(ctx, "/v1/issues", params, &out); err != nil {
		return Issue{}, err
	}
	return out, nil
}

// UpdateIssueParams holds a partial issue update. Nil fields are left
// unchanged; a pointer to the empty string clears the field.
type UpdateIssueParams struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Priority    *string   `json:"priority,omitempty"`
	AssigneeID  *string   `json:"assignee_id,omitempty"`
	ComponentID *string   `json:"component_id,omitempty"`
	MilestoneID *string   `json:"milestone_id,omitempty"`
	Labels      *[]string `json:"labels,omitempty"`
	Estimate    *float64  `json:"estimate,omitempty"`
	DueDate     *string   `json:"due_date,omitempty"`
}

// UpdateIssue applies a partial update to an issue.
func (c *Client) UpdateIssue(ctx context.Context, id string, params UpdateIssueParams) (Issue, error) {
	var out Issue
	if err := c.patch(ctx, "/v1/issues/"+url.PathEscape(id), params, &out); err != nil {
		return Issue{}, err
	}
	return out, nil
}

// DeleteIssue permanently deletes an issue.
func (c *Client) DeleteIssue(ctx context.Context, id string) error {
	return c.delete(ctx, "/v1/issues/"+url.PathEscape(id))
}

// SearchIssuesParams drives full-text issue search.
type SearchIssuesParams struct {
	Query     string
	ProjectID string
	Limit     int
}

// SearchIssues runs a full-text search over issue titles and descriptions.
func (c *Client) SearchIssues(ctx context.Context, params SearchIssuesParams) ([]Issue, error) {
	query := url.Values{}
	query.Set("q", params.Query)
	if params.ProjectID != "" {
		query.Set("project", params.ProjectID)
	}
	setIfPositive(query, "limit", params.Limit)

	var out struct {
		Issues []Issue `json:"issues"`
	}
	if err := c.get(ctx, "/v1/issues/search", query, &out); err != nil {
		return nil, err
	}
	return out.Issues, nil
}

// ListMyIssues returns open issues assigned to the authenticated user,
// optionally narrowed to one status.
func (c *Client) ListMyIssues(ctx context.Context, status string) ([]Issue, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	var out struct {
		Issues []Issue `json:"issues"`
	}
	if err := c.get(ctx, "/v1/issues/mine", query, &out); err != nil {
		return nil, err
	}
	return out.Issues, nil
}
