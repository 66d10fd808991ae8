package handlers

import (
	"context"
	"net/http"
	"strconv"

	"eventease/internal/models"
	"eventease/internal/views"

	"github.com/gin-gonic/gin"
)

// NotificationsPage - GET /notifications?tab=all|unread
func (h *Handlers) NotificationsPage(c *gin.Context) {
	s := h.sess(c)

	tab := c.DefaultQuery("tab", "all")
	if tab != "unread" {
		tab = "all"
	}

	// Запрашиваем всегда полный список и фильтруем локально, чтобы счётчик
	// вкладки Unread оставался точным на вкладке All.
	notifications, err := h.backend.Notifications(c.Request.Context(), s.Token, false)
	if err != nil {
		h.render(c, http.StatusOK, "notifications.html", gin.H{
			"Title": "Notifications",
			"Tab":   tab,
			"Err":   errorMessage(err, "Failed to load notifications"),
		})
		return
	}

	h.render(c, http.StatusOK, "notifications.html", gin.H{
		"Title":         "Notifications",
		"Notifications": views.FilterNotifications(notifications, tab),
		"Tab":           tab,
		"Unread":        views.CountUnread(notifications),
		"Err":           c.Query("err"),
	})
}

// MarkNotificationRead - POST /notifications/:id/read
func (h *Handlers) MarkNotificationRead(c *gin.Context) {
	h.notificationAction(c, "", h.backend.MarkNotificationRead)
}

// ArchiveNotification - POST /notifications/:id/archive
func (h *Handlers) ArchiveNotification(c *gin.Context) {
	h.notificationAction(c, "Notification archived", h.backend.ArchiveNotification)
}

func (h *Handlers) notificationAction(c *gin.Context, okMsg string, fn func(ctx context.Context, token string, id int64) error) {
	s := h.sess(c)

	back := c.DefaultPostForm("back", "/notifications")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, back, "")
		return
	}

	if err := fn(c.Request.Context(), s.Token, id); err != nil {
		redirectErr(c, back, errorMessage(err, "Action failed"))
		return
	}

	redirect(c, back, okMsg)
}

// MarkAllNotificationsRead - POST /notifications/read-all
func (h *Handlers) MarkAllNotificationsRead(c *gin.Context) {
	s := h.sess(c)

	back := c.DefaultPostForm("back", "/notifications")
	if err := h.backend.MarkAllNotificationsRead(c.Request.Context(), s.Token); err != nil {
		redirectErr(c, back, errorMessage(err, "Action failed"))
		return
	}

	redirect(c, back, "All notifications marked as read")
}

// AdminNotificationsPage - GET /admin/notifications, форма рассылки
func (h *Handlers) AdminNotificationsPage(c *gin.Context) {
	h.render(c, http.StatusOK, "admin_notifications.html", gin.H{
		"Title": "Broadcast",
		"Err":   c.Query("err"),
	})
}

// Broadcast - POST /admin/notifications, уведомление всем пользователям
func (h *Handlers) Broadcast(c *gin.Context) {
	s := h.sess(c)

	title := c.PostForm("title")
	message := c.PostForm("message")
	if title == "" || message == "" {
		redirectErr(c, "/admin/notifications", "Title and message are required")
		return
	}

	req := &models.BroadcastRequest{
		Title:   title,
		Message: message,
		Type:    c.DefaultPostForm("type", models.NotificationTypeGeneral),
	}
	if err := h.backend.Broadcast(c.Request.Context(), s.Token, req); err != nil {
		redirectErr(c, "/admin/notifications", errorMessage(err, "Broadcast failed"))
		return
	}

	redirect(c, "/admin/notifications", "Broadcast sent")
}
