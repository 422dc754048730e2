package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/mcp/service"
	"github.com/quarrylabs/quarry-mcp/internal/quarry"
	"github.com/quarrylabs/quarry-mcp/internal/telemetry"
)

// CommentClient is the slice of the Quarry API the comment tools use.
type CommentClient interface {
	ListComments(ctx context.Context, issueID string) ([]quarry.Comment, error)
	CreateComment(ctx context.Context, issueID, body string) (quarry.Comment, error)
	UpdateComment(ctx context.Context, id, body string) (quarry.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

// CommentResult is the tool-facing view of an issue comment.
type CommentResult struct {
	ID        string `json:"id"`
	IssueID   string `json:"issue_id"`
	AuthorID  string `json:"author_id"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// CommentListResult wraps a comment listing.
type CommentListResult struct {
	Comments []CommentResult `json:"comments"`
}

func newCommentResult(comment quarry.Comment) CommentResult {
	return CommentResult{
		ID:        comment.ID,
		IssueID:   comment.IssueID,
		AuthorID:  comment.AuthorID,
		Body:      comment.Body,
		CreatedAt: formatTimestamp(comment.CreatedAt),
		UpdatedAt: formatTimestamp(comment.UpdatedAt),
	}
}

// ListCommentsInput holds the arguments for the list_comments tool.
type ListCommentsInput struct {
	IssueID string `json:"issue_id" jsonschema:"the issue key such as QRY-42"`
}

// ListCommentsTool defines the MCP tool for listing issue comments.
func ListCommentsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_comments",
		Description: "Lists the comments on an issue oldest first",
	}
}

// ListCommentsHandler returns the comments on an issue.
func ListCommentsHandler(client CommentClient) func(context.Context, ListCommentsInput) (CommentListResult, error) {
	return func(ctx context.Context, input ListCommentsInput) (CommentListResult, error) {
		comments, err := client.ListComments(ctx, input.IssueID)
		if err != nil {
			return CommentListResult{}, err
		}
		result := CommentListResult{Comments: make([]CommentResult, 0, len(comments))}
		for _, comment := range comments {
			result.Comments = append(result.Comments, newCommentResult(comment))
		}
		return result, nil
	}
}

// CreateCommentInput holds the arguments for the create_comment tool.
type CreateCommentInput struct {
	IssueID string `json:"issue_id" jsonschema:"the issue key such as QRY-42"`
	Body    string `json:"body" jsonschema:"markdown comment body"`
}

// CreateCommentTool defines the MCP tool for commenting on an issue.
func CreateCommentTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_comment",
		Description: "Adds a comment to an issue",
	}
}

// CreateCommentHandler adds a comment to an issue.
func CreateCommentHandler(client CommentClient) func(context.Context, CreateCommentInput) (CommentResult, error) {
	return func(ctx context.Context, input CreateCommentInput) (CommentResult, error) {
		comment, err := client.CreateComment(ctx, input.IssueID, input.Body)
		if err != nil {
			return CommentResult{}, err
		}
		return newCommentResult(comment), nil
	}
}

// UpdateCommentInput holds the arguments for the update_comment tool.
type UpdateCommentInput struct {
	CommentID string `json:"comment_id" jsonschema:"the comment identifier"`
	Body      string `json:"body" jsonschema:"replacement markdown comment body"`
}

// UpdateCommentTool defines the MCP tool for editing a comment.
func UpdateCommentTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_comment",
		Description: "Replaces the body of a comment",
	}
}

// UpdateCommentHandler replaces the body of a comment.
func UpdateCommentHandler(client CommentClient) func(context.Context, UpdateCommentInput) (CommentResult, error) {
	return func(ctx context.Context, input UpdateCommentInput) (CommentResult, error) {
		comment, err := client.UpdateComment(ctx, input.CommentID, input.Body)
		if err != nil {
			return CommentResult{}, err
		}
		return newCommentResult(comment), nil
	}
}

// DeleteCommentInput holds the arguments for the delete_comment tool.
type DeleteCommentInput struct {
	CommentID string `json:"comment_id" jsonschema:"the comment identifier"`
}

// DeleteCommentTool defines the MCP tool for deleting a comment.
func DeleteCommentTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_comment",
		Description: "Deletes a comment from an issue",
	}
}

// DeleteCommentHandler deletes a comment.
func DeleteCommentHandler(client CommentClient) func(context.Context, DeleteCommentInput) (DeletionResult, error) {
	return func(ctx context.Context, input DeleteCommentInput) (DeletionResult, error) {
		if err := client.DeleteComment(ctx, input.CommentID); err != nil {
			return DeletionResult{}, err
		}
		return deleted(input.CommentID), nil
	}
}

// CommentToolSet builds the comments tool category.
func CommentToolSet(client CommentClient, sink telemetry.Sink) *service.ToolSet {
	set := service.NewToolSet("comments")
	service.AddTool(set, ListCommentsTool(), sink, ListCommentsHandler(client))
	service.AddTool(set, CreateCommentTool(), sink, CreateCommentHandler(client))
	service.AddTool(set, UpdateCommentTool(), sink, UpdateCommentHandler(client))
	service.AddTool(set, DeleteCommentTool(), sink, DeleteCommentHandler(client))
	return set
}
