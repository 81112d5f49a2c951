package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/interfaces/http/response"
	"collabhub.backend/internal/usecases"
)

// NotificationHandler handles notification feed endpoints
type NotificationHandler struct {
	notificationUsecase *usecases.NotificationUsecase
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationUsecase *usecases.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUsecase: notificationUsecase}
}

// ListNotifications returns the caller's most recent notifications
// GET /api/v1/notifications?limit=...
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	notifications, err := h.notificationUsecase.ListForUser(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"notifications": notifications})
}

// MarkRead flips a notification to read
// PUT /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.notificationUsecase.MarkRead(c.Request.Context(), id); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Notification not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Notification marked as read"})
}
