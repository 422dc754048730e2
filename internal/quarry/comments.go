package quarry

import (
	"context"
	"net/url"
)

// ListComments returns the comments on an issue, oldest first.
func (c *Client) ListComments(ctx context.Context, issueID string) ([]Comment, error) {
	var out struct {
		Comments []Comment `json:"comments"`
	}
	if err := c.get(ctx, "/v1/issues/"+url.PathEscape(issueID)+"/comments", nil, &out); err != nil {
		return nil, err
	}
	return out.Comments, nil
}

// CreateComment adds a comment to an issue.
func (c *Client) CreateComment(ctx context.Context, issueID, body string) (Comment, error) {
	payload := struct {
		Body string `json:"body"`
	}{Body: body}
	var out Comment
	if err := c.post(ctx, "/v1/issues/"+url.PathEscape(issueID)+"/comments", payload, &out); err != nil {
		return Comment{}, err
	}
	return out, nil
}

// UpdateComment replaces the body of a comment.
func (c *Client) UpdateComment(ctx context.Context, id, body string) (Comment, error) {
	payload := struct {
		Body string `json:"body"`
	}{Body: body}
	var out Comment
	if err := c.patch(ctx, "/v1/comments/"+url.PathEscape(id), payload, &out); err != nil {
		return Comment{}, err
	}
	return out, nil
}

// DeleteComment deletes a comment.
func (c *Client) DeleteComment(ctx context.Context, id string) error {
	return c.delete(ctx, "/v1/comments/"+url.PathEscape(id))
}
