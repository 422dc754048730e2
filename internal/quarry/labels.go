package quarry

import (
	"context"
	"net/url"
)

// ListLabels returns the labels of a project.
func (c *Client) ListLabels(ctx context.Context, projectID string) ([]Label, error) {
	var out struct {
		Labels []Label `json:"labels"`
	}
	if err := c.get(ctx, "/v1/projects/"+url.PathEscape(projectID)+"/labels", nil, &out); err != nil {
		return nil, err
	}
	return out.Labels, nil
}

// CreateLabelParams holds the fields for a new label.
type CreateLabelParams struct {
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
}

// CreateLabel creates a label inside a project.
func (c *Client) CreateLabel(ctx context.Context, params CreateLabelParams) (Label, error) {
	var out Label
	if err := c.post(ctx, "/v1/labels", params, &out); err != nil {
		return Label{}, err
	}
	return out, nil
}

// DeleteLabel deletes a label and removes it from every issue that carries
// it.
func (c *Client) DeleteLabel(ctx context.Context, id string) error {
	return c.delete(ctx, "/v1/labels/"+url.PathEscape(id))
}
