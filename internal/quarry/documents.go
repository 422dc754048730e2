package quarry

import (
	"context"
	"net/url"
)

// ListTeamspaces returns the teamspaces visible to the caller.
func (c *Client) ListTeamspaces(ctx context.Context) ([]Teamspace, error) {
	var out struct {
		Teamspaces []Teamspace `json:"teamspaces"`
	}
	if err := c.get(ctx, "/v1/teamspaces", nil, &out); err != nil {
		return nil, err
	}
	return out.Teamspaces, nil
}

// ListDocumentsParams filters ListDocuments.
type ListDocumentsParams struct {
	TeamspaceID string
	Limit       int
}

// ListDocuments returns documents, optionally scoped to one teamspace.
// Content is omitted from listings; use GetDocument for the full page.
func (c *Client) ListDocuments(ctx context.Context, params ListDocumentsParams) ([]Document, error) {
	query := url.Values{}
	if params.TeamspaceID != "" {
		query.Set("teamspace", params.TeamspaceID)
	}
	setIfPositive(query, "limit", params.Limit)

	var out struct {
		Documents []Document `json:"documents"`
	}
	if err := c.get(ctx, "/v1/documents", query, &out); err != nil {
		return nil, err
	}
	return out.Documents, nil
}

// GetDocument fetches one document by ID, including its content.
func (c *Client) GetDocument(ctx context.Context, id string) (Document, error) {
	var out Document
	if err := c.get(ctx, "/v1/documents/"+url.PathEscape(id), nil, &out); err != nil {
		return Document{}, err
	}
	return out, nil
}

// CreateDocumentParams holds the fields for a new document.
type CreateDocumentParams struct {
	Title       string `json:"title"`
	Content     string `json:"content,omitempty"`
	TeamspaceID string `json:"teamspace_id,omitempty"`
}

// CreateDocument creates a document.
func (c *Client) CreateDocument(ctx context.Context, params CreateDocumentParams) (Document, error) {
	var out Document
	if err := c.post(ctx, "/v1/documents", params, &out); err != nil {
		return Document{}, err
	}
	return out, nil
}

// UpdateDocumentParams holds a partial document update.
type UpdateDocumentParams struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// UpdateDocument applies a partial update to a document.
func (c *Client) UpdateDocument(ctx context.Context, id string, params UpdateDocumentParams) (Document, error) {
	var out Document
	if err := c.patch(ctx, "/v1/documents/"+url.PathEscape(id), params, &out); err != nil {
		return Document{}, err
	}
	return out, nil
}

// DeleteDocument deletes a document.
func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	return c.delete(ctx, "/v1/documents/"+url.PathEscape(id))
}
