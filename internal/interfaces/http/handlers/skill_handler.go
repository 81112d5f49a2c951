package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collabhub.backend/internal/domain/entities"
	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/interfaces/http/response"
	"collabhub.backend/internal/usecases"
)

// SkillHandler handles quiz and skill verification endpoints
type SkillHandler struct {
	skillUsecase *usecases.SkillUsecase
}

// NewSkillHandler creates a new skill handler
func NewSkillHandler(skillUsecase *usecases.SkillUsecase) *SkillHandler {
	return &SkillHandler{skillUsecase: skillUsecase}
}

// GetQuiz returns a quiz definition without answer keys
// GET /api/v1/quiz/:id
func (h *SkillHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.skillUsecase.GetQuiz(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quiz": quiz})
}

// SubmitQuiz scores a quiz attempt and verifies the skill on a pass
// POST /api/v1/quiz/submit
func (h *SkillHandler) SubmitQuiz(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var submission entities.QuizSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.skillUsecase.SubmitQuiz(c.Request.Context(), userID, &submission)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// SyncExternal runs the external skill verification for the caller
// POST /api/v1/skills/external-sync
func (h *SkillHandler) SyncExternal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	synced, err := h.skillUsecase.SyncExternal(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Skills synced from external profile",
		"skills":  synced,
	})
}
