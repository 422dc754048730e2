package quarry

import (
	"context"
	"net/url"
)

// ListMembersParams filters ListMembers.
type ListMembersParams struct {
	ProjectID string
}

// ListMembers returns workspace members, optionally narrowed to one
// project's membership.
func (c *Client) ListMembers(ctx context.Context, params ListMembersParams) ([]Member, error) {
	query := url.Values{}
	if params.ProjectID != "" {
		query.Set("project", params.ProjectID)
	}
	var out struct {
		Members []Member `json:"members"`
	}
	if err := c.get(ctx, "/v1/members", query, &out); err != nil {
		return nil, err
	}
	return out.Members, nil
}

// GetMember fetches one member by ID.
func (c *Client) GetMember(ctx context.Context, id string) (Member, error) {
	var out Member
	if err := c.get(ctx, "/v1/members/"+url.PathEscape(id), nil, &out); err != nil {
		return Member{}, err
	}
	return out, nil
}
