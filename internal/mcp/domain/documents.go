package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/mcp/service"
	"github.com/quarrylabs/quarry-mcp/internal/quarry"
	"github.com/quarrylabs/quarry-mcp/internal/telemetry"
)

// DocumentClient is the slice of the Quarry API the document tools use.
type DocumentClient interface {
	ListTeamspaces(ctx context.Context) ([]quarry.Teamspace, error)
	ListDocuments(ctx context.Context, params quarry.ListDocumentsParams) ([]quarry.Document, error)
	GetDocument(ctx context.Context, id string) (quarry.Document, error)
	CreateDocument(ctx context.Context, params quarry.CreateDocumentParams) (quarry.Document, error)
	UpdateDocument(ctx context.Context, id string, params quarry.UpdateDocumentParams) (quarry.Document, error)
	DeleteDocument(ctx context.Context, id string) error
}

// TeamspaceResult is the tool-facing view of a teamspace.
type TeamspaceResult struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Private     bool   `json:"private"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// TeamspaceListResult wraps a teamspace listing.
type TeamspaceListResult struct {
	Teamspaces []TeamspaceResult `json:"teamspaces"`
}

func newTeamspaceResult(teamspace quarry.Teamspace) TeamspaceResult {
	return TeamspaceResult{
		ID:          teamspace.ID,
		Name:        teamspace.Name,
		Description: teamspace.Description,
		Private:     teamspace.Private,
		CreatedAt:   formatTimestamp(teamspace.CreatedAt),
	}
}

func newTeamspaceListResult(teamspaces []quarry.Teamspace) TeamspaceListResult {
	result := TeamspaceListResult{Teamspaces: make([]TeamspaceResult, 0, len(teamspaces))}
	for _, teamspace := range teamspaces {
		result.Teamspaces = append(result.Teamspaces, newTeamspaceResult(teamspace))
	}
	return result
}

// DocumentResult is the tool-facing view of a document. Content is empty
// in listings; get_document returns the full page.
type DocumentResult struct {
	ID          string `json:"id"`
	TeamspaceID string `json:"teamspace_id,omitempty"`
	Title       string `json:"title"`
	Content     string `json:"content,omitempty"`
	AuthorID    string `json:"author_id"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// DocumentListResult wraps a document listing.
type DocumentListResult struct {
	Documents []DocumentResult `json:"documents"`
}

func newDocumentResult(document quarry.Document) DocumentResult {
	return DocumentResult{
		ID:          document.ID,
		TeamspaceID: document.TeamspaceID,
		Title:       document.Title,
		Content:     document.Content,
		AuthorID:    document.AuthorID,
		CreatedAt:   formatTimestamp(document.CreatedAt),
		UpdatedAt:   formatTimestamp(document.UpdatedAt),
	}
}

// ListTeamspacesInput holds the arguments for the list_teamspaces tool.
type ListTeamspacesInput struct{}

// ListTeamspacesTool defines the MCP tool for listing teamspaces.
func ListTeamspacesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_teamspaces",
		Description: "Lists the teamspaces that hold documents",
	}
}

// ListTeamspacesHandler returns the teamspaces visible to the caller.
func ListTeamspacesHandler(client DocumentClient) func(context.Context, ListTeamspacesInput) (TeamspaceListResult, error) {
	return func(ctx context.Context, input ListTeamspacesInput) (TeamspaceListResult, error) {
		teamspaces, err := client.ListTeamspaces(ctx)
		if err != nil {
			return TeamspaceListResult{}, err
		}
		return newTeamspaceListResult(teamspaces), nil
	}
}

// ListDocumentsInput holds the arguments for the list_documents tool.
type ListDocumentsInput struct {
	TeamspaceID string `json:"teamspace_id,omitempty" jsonschema:"restrict the listing to one teamspace"`
	Limit       int    `json:"limit,omitempty" jsonschema:"maximum number of documents to return"`
}

// ListDocumentsTool defines the MCP tool for listing documents.
func ListDocumentsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_documents",
		Description: "Lists documents without their content; use get_document for the full page",
	}
}

// ListDocumentsHandler returns documents, optionally scoped to a teamspace.
func ListDocumentsHandler(client DocumentClient) func(context.Context, ListDocumentsInput) (DocumentListResult, error) {
	return func(ctx context.Context, input ListDocumentsInput) (DocumentListResult, error) {
		documents, err := client.ListDocuments(ctx, quarry.ListDocumentsParams{
			TeamspaceID: input.TeamspaceID,
			Limit:       input.Limit,
		})
		if err != nil {
			return DocumentListResult{}, err
		}
		result := DocumentListResult{Documents: make([]DocumentResult, 0, len(documents))}
		for _, document := range documents {
			result.Documents = append(result.Documents, newDocumentResult(document))
		}
		return result, nil
	}
}

// GetDocumentInput holds the arguments for the get_document tool.
type GetDocumentInput struct {
	DocumentID string `json:"document_id" jsonschema:"the document identifier"`
}

// GetDocumentTool defines the MCP tool for fetching one document.
func GetDocumentTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_document",
		Description: "Gets a document with its full markdown content",
	}
}

// GetDocumentHandler fetches one document including its content.
func GetDocumentHandler(client DocumentClient) func(context.Context, GetDocumentInput) (DocumentResult, error) {
	return func(ctx context.Context, input GetDocumentInput) (DocumentResult, error) {
		document, err := client.GetDocument(ctx, input.DocumentID)
		if err != nil {
			return DocumentResult{}, err
		}
		return newDocumentResult(document), nil
	}
}

// CreateDocumentInput holds the arguments for the create_document tool.
type CreateDocumentInput struct {
	Title       string `json:"title" jsonschema:"the document title"`
	Content     string `json:"content,omitempty" jsonschema:"markdown document content"`
	TeamspaceID string `json:"teamspace_id,omitempty" jsonschema:"teamspace to create the document in"`
}

// CreateDocumentTool defines the MCP tool for creating a document.
func CreateDocumentTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_document",
		Description: "Creates a markdown document optionally inside a teamspace",
	}
}

// CreateDocumentHandler creates a document.
func CreateDocumentHandler(client DocumentClient) func(context.Context, CreateDocumentInput) (DocumentResult, error) {
	return func(ctx context.Context, input CreateDocumentInput) (DocumentResult, error) {
		document, err := client.CreateDocument(ctx, quarry.CreateDocumentParams{
			Title:       input.Title,
			Content:     input.Content,
			TeamspaceID: input.TeamspaceID,
		})
		if err != nil {
			return DocumentResult{}, err
		}
		return newDocumentResult(document), nil
	}
}

// UpdateDocumentInput holds the arguments for the update_document tool.
// Omitted fields keep their current value.
type UpdateDocumentInput struct {
	DocumentID string  `json:"document_id" jsonschema:"the document identifier"`
	Title      *string `json:"title,omitempty" jsonschema:"new document title"`
	Content    *string `json:"content,omitempty" jsonschema:"replacement markdown content"`
}

// UpdateDocumentTool defines the MCP tool for updating a document.
func UpdateDocumentTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_document",
		Description: "Updates a document; omitted fields keep their current value",
	}
}

// UpdateDocumentHandler applies a partial update to a document.
func UpdateDocumentHandler(client DocumentClient) func(context.Context, UpdateDocumentInput) (DocumentResult, error) {
	return func(ctx context.Context, input UpdateDocumentInput) (DocumentResult, error) {
		document, err := client.UpdateDocument(ctx, input.DocumentID, quarry.UpdateDocumentParams{
			Title:   input.Title,
			Content: input.Content,
		})
		if err != nil {
			return DocumentResult{}, err
		}
		return newDocumentResult(document), nil
	}
}

// DeleteDocumentInput holds the arguments for the delete_document tool.
type DeleteDocumentInput struct {
	DocumentID string `json:"document_id" jsonschema:"the document identifier"`
}

// DeleteDocumentTool defines the MCP tool for deleting a document.
func DeleteDocumentTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_document",
		Description: "Deletes a document permanently",
	}
}

// DeleteDocumentHandler deletes a document.
func DeleteDocumentHandler(client DocumentClient) func(context.Context, DeleteDocumentInput) (DeletionResult, error) {
	return func(ctx context.Context, input DeleteDocumentInput) (DeletionResult, error) {
		if err := client.DeleteDocument(ctx, input.DocumentID); err != nil {
			return DeletionResult{}, err
		}
		return deleted(input.DocumentID), nil
	}
}

// DocumentToolSet builds the documents tool category.
func DocumentToolSet(client DocumentClient, sink telemetry.Sink) *service.ToolSet {
	set := service.NewToolSet("documents")
	service.AddTool(set, ListTeamspacesTool(), sink, ListTeamspacesHandler(client))
	service.AddTool(set, ListDocumentsTool(), sink, ListDocumentsHandler(client))
	service.AddTool(set, GetDocumentTool(), sink, GetDocumentHandler(client))
	service.AddTool(set, CreateDocumentTool(), sink, CreateDocumentHandler(client))
	service.AddTool(set, UpdateDocumentTool(), sink, UpdateDocumentHandler(client))
	service.AddTool(set, DeleteDocumentTool(), sink, DeleteDocumentHandler(client))
	return set
}
