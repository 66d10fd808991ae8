package backend

import (
	"context"
	"fmt"
	"net/http"

	"eventease/internal/models"
)

func (c *Client) Notifications(ctx context.Context, token string, unreadOnly bool) ([]models.Notification, error) {
	path := "/api/notifications"
	if unreadOnly {
		path = "/api/notifications/unread"
	}

	var notifications []models.Notification
	if err := c.do(ctx, token, http.MethodGet, path, nil, &notifications); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// LatestNotifications feeds the bell popover.
func (c *Client) LatestNotifications(ctx context.Context, token string) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := c.do(ctx, token, http.MethodGet, "/api/notifications/latest", nil, &notifications); err != nil {
		return nil, fmt.Errorf("failed to load latest notifications: %w", err)
	}
	return notifications, nil
}

func (c *Client) UnreadCount(ctx context.Context, token string) (int, error) {
	var count int
	if err := c.do(ctx, token, http.MethodGet, "/api/notifications/unread-count", nil, &count); err != nil {
		return 0, fmt.Errorf("failed to load unread count: %w", err)
	}
	return count, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodPatch, fmt.Sprintf("/api/notifications/%d/read", id), nil, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context, token string) error {
	return c.do(ctx, token, http.MethodPatch, "/api/notifications/read-all", nil, nil)
}

func (c *Client) ArchiveNotification(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodPatch, fmt.Sprintf("/api/notifications/%d/archive", id), nil, nil)
}

// Broadcast sends a notification to every user. Admin-only.
func (c *Client) Broadcast(ctx context.Context, token string, req *models.BroadcastRequest) error {
	return c.do(ctx, token, http.MethodPost, "/api/notifications/admin/broadcast", req, nil)
}
