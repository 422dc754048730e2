package quarry

import (
	"context"
	"net/url"
)

// ListMilestones returns the milestones of a project.
func (c *Client) ListMilestones(ctx context.Context, projectID string) ([]Milestone, error) {
	var out struct {
		Milestones []Milestone `json:"milestones"`
	}
	if err := c.get(ctx, "/v1/projects/"+url.PathEscape(projectID)+"/milestones", nil, &out); err != nil {
		return nil, err
	}
	return out.Milestones, nil
}

// GetMilestone fetches one milestone by ID.
func (c *Client) GetMilestone(ctx context.Context, id string) (Milestone, error) {
	var out Milestone
	if err := c.get(ctx, "/v1/milestones/"+url.PathEscape(id), nil, &out); err != nil {
		return Milestone{}, err
	}
	return out, nil
}

// CreateMilestoneParams holds the fields for a new milestone.
type CreateMilestoneParams struct {
	ProjectID   string `json:"project_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	TargetDate  string `json:"target_date,omitempty"`
}

// CreateMilestone creates a milestone inside a project.
func (c *Client) CreateMilestone(ctx context.Context, params CreateMilestoneParams) (Milestone, error) {
	var out Milestone
	if err := c.post(ctx, "/v1/milestones", params, &out); err != nil {
		return Milestone{}, err
	}
	return out, nil
}

// UpdateMilestoneParams holds a partial milestone update.
type UpdateMilestoneParams struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	TargetDate  *string `json:"target_date,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// UpdateMilestone applies a partial update to a milestone.
func (c *Client) UpdateMilestone(ctx context.Context, id string, params UpdateMilestoneParams) (Milestone, error) {
	var out Milestone
	if err := c.patch(ctx, "/v1/milestones/"+url.PathEscape(id), params, &out); err != nil {
		return Milestone{}, err
	}
	return out, nil
}

// DeleteMilestone deletes a milestone without touching its issues.
func (c *Client) DeleteMilestone(ctx context.Context, id string) error {
	return c.delete(ctx, "/v1/milestones/"+url.PathEscape(id))
}
