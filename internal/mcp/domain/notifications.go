package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/mcp/service"
	"github.com/quarrylabs/quarry-mcp/internal/quarry"
	"github.com/quarrylabs/quarry-mcp/internal/telemetry"
)

// NotificationClient is the slice of the Quarry API the notification
// tools use.
type NotificationClient interface {
	ListNotifications(ctx context.Context, params quarry.ListNotificationsParams) ([]quarry.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) (quarry.Notification, error)
	MarkAllNotificationsRead(ctx context.Context) (int, error)
	ArchiveNotification(ctx context.Context, id string) (quarry.Notification, error)
}

// NotificationResult is the tool-facing view of an inbox notification.
type NotificationResult struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Message    string `json:"message"`
	ResourceID string `json:"resource_id,omitempty"`
	Read       bool   `json:"read"`
	Archived   bool   `json:"archived"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// NotificationListResult wraps a notification listing.
type NotificationListResult struct {
	Notifications []NotificationResult `json:"notifications"`
}

// NotificationBulkResult reports how many notifications a bulk operation
// touched.
type NotificationBulkResult struct {
	Updated int `json:"updated"`
}

func newNotificationResult(notification quarry.Notification) NotificationResult {
	return NotificationResult{
		ID:         notification.ID,
		Kind:       notification.Kind,
		Message:    notification.Message,
		ResourceID: notification.ResourceID,
		Read:       notification.Read,
		Archived:   notification.Archived,
		CreatedAt:  formatTimestamp(notification.CreatedAt),
	}
}

func newNotificationListResult(notifications []quarry.Notification) NotificationListResult {
	result := NotificationListResult{Notifications: make([]NotificationResult, 0, len(notifications))}
	for _, notification := range notifications {
		result.Notifications = append(result.Notifications, newNotificationResult(notification))
	}
	return result
}

// ListNotificationsInput holds the arguments for the list_notifications
// tool.
type ListNotificationsInput struct {
	UnreadOnly bool `json:"unread_only,omitempty" jsonschema:"only return unread notifications"`
	Limit      int  `json:"limit,omitempty" jsonschema:"maximum number of notifications to return"`
}

// ListNotificationsTool defines the MCP tool for reading the inbox.
func ListNotificationsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_notifications",
		Description: "Lists the caller's notification inbox newest first",
	}
}

// ListNotificationsHandler returns the caller's inbox.
func ListNotificationsHandler(client NotificationClient) func(context.Context, ListNotificationsInput) (NotificationListResult, error) {
	return func(ctx context.Context, input ListNotificationsInput) (NotificationListResult, error) {
		notifications, err := client.ListNotifications(ctx, quarry.ListNotificationsParams{
			UnreadOnly: input.UnreadOnly,
			Limit:      input.Limit,
		})
		if err != nil {
			return NotificationListResult{}, err
		}
		return newNotificationListResult(notifications), nil
	}
}

// MarkNotificationReadInput holds the arguments for the
// mark_notification_read tool.
type MarkNotificationReadInput struct {
	NotificationID string `json:"notification_id" jsonschema:"the notification identifier"`
}

// MarkNotificationReadTool defines the MCP tool for marking one
// notification read.
func MarkNotificationReadTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "mark_notification_read",
		Description: "Marks one notification as read",
	}
}

// MarkNotificationReadHandler marks one notification as read.
func MarkNotificationReadHandler(client NotificationClient) func(context.Context, MarkNotificationReadInput) (NotificationResult, error) {
	return func(ctx context.Context, input MarkNotificationReadInput) (NotificationResult, error) {
		notification, err := client.MarkNotificationRead(ctx, input.NotificationID)
		if err != nil {
			return NotificationResult{}, err
		}
		return newNotificationResult(notification), nil
	}
}

// MarkAllNotificationsReadInput holds the arguments for the
// mark_all_notifications_read tool.
type MarkAllNotificationsReadInput struct{}

// MarkAllNotificationsReadTool defines the MCP tool for clearing the
// unread count.
func MarkAllNotificationsReadTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "mark_all_notifications_read",
		Description: "Marks every unread notification as read and reports how many changed",
	}
}

// MarkAllNotificationsReadHandler marks the whole inbox as read.
func MarkAllNotificationsReadHandler(client NotificationClient) func(context.Context, MarkAllNotificationsReadInput) (NotificationBulkResult, error) {
	return func(ctx context.Context, input MarkAllNotificationsReadInput) (NotificationBulkResult, error) {
		updated, err := client.MarkAllNotificationsRead(ctx)
		if err != nil {
			return NotificationBulkResult{}, err
		}
		return NotificationBulkResult{Updated: updated}, nil
	}
}

// ArchiveNotificationInput holds the arguments for the
// archive_notification tool.
type ArchiveNotificationInput struct {
	NotificationID string `json:"notification_id" jsonschema:"the notification identifier"`
}

// ArchiveNotificationTool defines the MCP tool for archiving a
// notification.
func ArchiveNotificationTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "archive_notification",
		Description: "Archives a notification; archived notifications leave the inbox",
	}
}

// ArchiveNotificationHandler archives a notification.
func ArchiveNotificationHandler(client NotificationClient) func(context.Context, ArchiveNotificationInput) (NotificationResult, error) {
	return func(ctx context.Context, input ArchiveNotificationInput) (NotificationResult, error) {
		notification, err := client.ArchiveNotification(ctx, input.NotificationID)
		if err != nil {
			return NotificationResult{}, err
		}
		return newNotificationResult(notification), nil
	}
}

// NotificationToolSet builds the notifications tool category.
func NotificationToolSet(client NotificationClient, sink telemetry.Sink) *service.ToolSet {
	set := service.NewToolSet("notifications")
	service.AddTool(set, ListNotificationsTool(), sink, ListNotificationsHandler(client))
	service.AddTool(set, MarkNotificationReadTool(), sink, MarkNotificationReadHandler(client))
	service.AddTool(set, MarkAllNotificationsReadTool(), sink, MarkAllNotificationsReadHandler(client))
	service.AddTool(set, ArchiveNotificationTool(), sink, ArchiveNotificationHandler(client))
	return set
}
