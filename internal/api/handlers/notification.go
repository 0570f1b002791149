package handlers

import (
	"net/http"
	"strconv"

	"workflow-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the in-app notification feed of the current user
type NotificationHandler struct {
	notifications service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifications service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// ListNotifications handles GET /notifications
// @Summary My notifications
// @Tags notifications
// @Produce json
// @Param unread_only query bool false "Only unread notifications"
// @Success 200 {array} service.NotificationResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	unreadOnly, _ := strconv.ParseBool(c.Query("unread_only"))

	notifications, err := h.notifications.ListForUser(actor.UserID, unreadOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkRead handles POST /notifications/:id/read
// @Summary Mark a notification read
// @Tags notifications
// @Param id path string true "Notification ID (UUID)"
// @Success 204
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "notification", respondError)
	if !ok {
		return
	}

	if err := h.notifications.MarkRead(id, actor.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkAllRead handles POST /notifications/read-all
// @Summary Mark every notification read
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{} "Number of notifications updated"
// @Security BearerAuth
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	updated, err := h.notifications.MarkAllRead(actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
