package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"collabhub.backend/internal/domain/entities"
	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/interfaces/http/response"
	"collabhub.backend/internal/usecases"
)

// MessageHandler handles team channel message endpoints
type MessageHandler struct {
	messageUsecase *usecases.MessageUsecase
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageUsecase *usecases.MessageUsecase) *MessageHandler {
	return &MessageHandler{messageUsecase: messageUsecase}
}

// ListMessages returns the trailing window of a team channel
// GET /api/v1/teams/:id/messages?channel=...&limit=...
func (h *MessageHandler) ListMessages(c *gin.Context) {
	teamID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	messages, err := h.messageUsecase.ListMessages(c.Request.Context(), teamID, c.Query("channel"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"messages": messages})
}

// PostMessage appends a message to a team channel
// POST /api/v1/teams/:id/messages
func (h *MessageHandler) PostMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	teamID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.PostMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	message, err := h.messageUsecase.PostMessage(c.Request.Context(), teamID, userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": message})
}
