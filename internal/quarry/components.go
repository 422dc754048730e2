package quarry

import (
	"context"
	"net/url"
)

// ListComponents returns the components of a project.
func (c *Client) ListComponents(ctx context.Context, projectID string) ([]Component, error) {
	var out struct {
		Components []Component `json:"components"`
	}
	if err := c.get(ctx, "/v1/projects/"+url.PathEscape(projectID)+"/components", nil, &out); err != nil {
		return nil, err
	}
	return out.Components, nil
}

// GetComponent fetches one component by ID.
func (c *Client) GetComponent(ctx context.Context, id string) (Component, error) {
	var out Component
	if err := c.get(ctx, "/v1/components/"+url.PathEscape(id), nil, &out); err != nil {
		return Component{}, err
	}
	return out, nil
}

// CreateComponentParams holds the fields for a new component.
type CreateComponentParams struct {
	ProjectID   string `json:"project_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	LeadID      string `json:"lead_id,omitempty"`
}

// CreateComponent creates a component inside a project.
func (c *Client) CreateComponent(ctx context.Context, params CreateComponentParams) (Component, error) {
	var out Component
	if err := c.post(ctx, "/v1/components", params, &out); err != nil {
		return Component{}, err
	}
	return out, nil
}

// UpdateComponentParams holds a partial component update.
type UpdateComponentParams struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	LeadID      *string `json:"lead_id,omitempty"`
}

// UpdateComponent applies a partial update to a component.
func (c *Client) UpdateComponent(ctx context.Context, id string, params UpdateComponentParams) (Component, error) {
	var out Component
	if err := c.patch(ctx, "/v1/components/"+url.PathEscape(id), params, &out); err != nil {
		return Component{}, err
	}
	return out, nil
}

// DeleteComponent deletes a component. Issues keep their history but lose
// the component association.
func (c *Client) DeleteComponent(ctx context.Context, id string) error {
	return c.delete(ctx, "/v1/components/"+url.PathEscape(id))
}
