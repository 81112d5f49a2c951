package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"collabhub.backend/internal/domain/entities"
	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/interfaces/http/response"
	"collabhub.backend/internal/usecases"
)

// TeamHandler handles team endpoints
type TeamHandler struct {
	teamUsecase *usecases.TeamUsecase
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamUsecase *usecases.TeamUsecase) *TeamHandler {
	return &TeamHandler{teamUsecase: teamUsecase}
}

// FormTeam forms a team on a project and binds it exclusively
// POST /api/v1/teams
func (h *TeamHandler) FormTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.FormTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	team, err := h.teamUsecase.FormTeam(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"team": team})
}

// GetTeam returns a team with member identity snapshots
// GET /api/v1/teams/:id
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	team, err := h.teamUsecase.GetTeam(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Team not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"team": team})
}

// AddMember adds a user to the team roster
// POST /api/v1/teams/:id/members
func (h *TeamHandler) AddMember(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	teamID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input struct {
		UserID string `json:"userId" binding:"required,uuid"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.teamUsecase.AddMember(c.Request.Context(), actor, teamID, uuid.MustParse(input.UserID)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Member added"})
}

// RemoveMember removes a user from the team roster
// DELETE /api/v1/teams/:id/members/:userId
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	teamID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.teamUsecase.RemoveMember(c.Request.Context(), actor, teamID, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Member removed"})
}
