package quarry

import (
	"context"
	"net/url"
)

// ListNotificationsParams filters ListNotifications.
type ListNotificationsParams struct {
	UnreadOnly bool
	Limit      int
}

// ListNotifications returns the caller's notification inbox, newest first.
// Archived notifications are never included.
func (c *Client) ListNotifications(ctx context.Context, params ListNotificationsParams) ([]Notification, error) {
	query := url.Values{}
	if params.UnreadOnly {
		query.Set("unread", "true")
	}
	setIfPositive(query, "limit", params.Limit)

	var out struct {
		Notifications []Notification `json:"notifications"`
	}
	if err := c.get(ctx, "/v1/notifications", query, &out); err != nil {
		return nil, err
	}
	return out.Notifications, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) (Notification, error) {
	var out Notification
	if err := c.post(ctx, "/v1/notifications/"+url.PathEscape(id)+"/read", nil, &out); err != nil {
		return Notification{}, err
	}
	return out, nil
}

// MarkAllNotificationsRead marks every unread notification as read and
// returns how many were updated.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) (int, error) {
	var out struct {
		Updated int `json:"updated"`
	}
	if err := c.post(ctx, "/v1/notifications/read-all", nil, &out); err != nil {
		return 0, err
	}
	return out.Updated, nil
}

// ArchiveNotification removes a notification from the inbox.
func (c *Client) ArchiveNotification(ctx context.Context, id string) (Notification, error) {
	var out Notification
	if err := c.post(ctx, "/v1/notifications/"+url.PathEscape(id)+"/archive", nil, &out); err != nil {
		return Notification{}, err
	}
	return out, nil
}
