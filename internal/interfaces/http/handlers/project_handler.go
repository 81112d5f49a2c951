package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collabhub.backend/internal/domain/entities"
	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/interfaces/http/response"
	"collabhub.backend/internal/usecases"
)

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	projectUsecase *usecases.ProjectUsecase
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectUsecase *usecases.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{projectUsecase: projectUsecase}
}

// CreateProject opens a new project with its required roles
// POST /api/v1/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	project, err := h.projectUsecase.CreateProject(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"project": project})
}

// ListProjects lists projects with optional search, tech, and status filters
// GET /api/v1/projects?q=...&tech=...&status=...
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	filter := entities.ProjectFilter{
		TextQuery: c.Query("q"),
		TechTag:   c.Query("tech"),
		Status:    entities.ProjectStatus(c.Query("status")),
	}

	projects, err := h.projectUsecase.ListProjects(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"projects": projects})
}

// GetProject returns a project with its roles and applications
// GET /api/v1/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	project, err := h.projectUsecase.GetProject(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Project not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"project": project})
}

// Apply submits an application to one of the project's roles
// POST /api/v1/projects/:id/apply
func (h *ProjectHandler) Apply(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	projectID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.ApplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.projectUsecase.ApplyToRole(c.Request.Context(), projectID, userID, &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "Application submitted"})
}

// Complete marks a project as completed
// POST /api/v1/projects/:id/complete
func (h *ProjectHandler) Complete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	projectID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.projectUsecase.CompleteProject(c.Request.Context(), actor, projectID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Project completed"})
}
