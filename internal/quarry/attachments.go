package quarry

import (
	"context"
	"net/url"
)

// ListAttachments returns the attachments on an issue.
func (c *Client) ListAttachments(ctx context.Context, issueID string) ([]Attachment, error) {
	var out struct {
		Attachments []Attachment `json:"attachments"`
	}
	if err := c.get(ctx, "/v1/issues/"+url.PathEscape(issueID)+"/attachments", nil, &out); err != nil {
		return nil, err
	}
	return out.Attachments, nil
}

// DeleteAttachment removes an attachment from its issue.
func (c *Client) DeleteAttachment(ctx context.Context, id string) error {
	return c.delete(ctx, "/v1/attachments/"+url.PathEscape(id))
}
