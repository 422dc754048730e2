package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/mcp/service"
	"github.com/quarrylabs/quarry-mcp/internal/quarry"
	"github.com/quarrylabs/quarry-mcp/internal/telemetry"
)

// AttachmentClient is the slice of the Quarry API the attachment tools
// use. Uploads happen through the Quarry UI; tools only list and delete.
type AttachmentClient interface {
	ListAttachments(ctx context.Context, issueID string) ([]quarry.Attachment, error)
	DeleteAttachment(ctx context.Context, id string) error
}

// AttachmentResult is the tool-facing view of an issue attachment.
type AttachmentResult struct {
	ID          string `json:"id"`
	IssueID     string `json:"issue_id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type,omitempty"`
	SizeBytes   int64  `json:"size_bytes"`
	UploaderID  string `json:"uploader_id,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// AttachmentListResult wraps an attachment listing.
type AttachmentListResult struct {
	Attachments []AttachmentResult `json:"attachments"`
}

func newAttachmentResult(attachment quarry.Attachment) AttachmentResult {
	return AttachmentResult{
		ID:          attachment.ID,
		IssueID:     attachment.IssueID,
		FileName:    attachment.FileName,
		ContentType: attachment.ContentType,
		SizeBytes:   attachment.SizeBytes,
		UploaderID:  attachment.UploaderID,
		CreatedAt:   formatTimestamp(attachment.CreatedAt),
	}
}

// ListAttachmentsInput holds the arguments for the list_attachments tool.
type ListAttachmentsInput struct {
	IssueID string `json:"issue_id" jsonschema:"the issue key such as QRY-42"`
}

// ListAttachmentsTool defines the MCP tool for listing attachments.
func ListAttachmentsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_attachments",
		Description: "Lists the file attachments on an issue",
	}
}

// ListAttachmentsHandler returns the attachments on an issue.
func ListAttachmentsHandler(client AttachmentClient) func(context.Context, ListAttachmentsInput) (AttachmentListResult, error) {
	return func(ctx context.Context, input ListAttachmentsInput) (AttachmentListResult, error) {
		attachments, err := client.ListAttachments(ctx, input.IssueID)
		if err != nil {
			return AttachmentListResult{}, err
		}
		result := AttachmentListResult{Attachments: make([]AttachmentResult, 0, len(attachments))}
		for _, attachment := range attachments {
			result.Attachments = append(result.Attachments, newAttachmentResult(attachment))
		}
		return result, nil
	}
}

// DeleteAttachmentInput holds the arguments for the delete_attachment
// tool.
type DeleteAttachmentInput struct {
	AttachmentID string `json:"attachment_id" jsonschema:"the attachment identifier"`
}

// DeleteAttachmentTool defines the MCP tool for deleting an attachment.
func DeleteAttachmentTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_attachment",
		Description: "Deletes a file attachment from an issue",
	}
}

// DeleteAttachmentHandler deletes an attachment.
func DeleteAttachmentHandler(client AttachmentClient) func(context.Context, DeleteAttachmentInput) (DeletionResult, error) {
	return func(ctx context.Context, input DeleteAttachmentInput) (DeletionResult, error) {
		if err := client.DeleteAttachment(ctx, input.AttachmentID); err != nil {
			return DeletionResult{}, err
		}
		return deleted(input.AttachmentID), nil
	}
}

// AttachmentToolSet builds the attachments tool category.
func AttachmentToolSet(client AttachmentClient, sink telemetry.Sink) *service.ToolSet {
	set := service.NewToolSet("attachments")
	service.AddTool(set, ListAttachmentsTool(), sink, ListAttachmentsHandler(client))
	service.AddTool(set, DeleteAttachmentTool(), sink, DeleteAttachmentHandler(client))
	return set
}
