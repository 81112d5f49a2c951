package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collabhub.backend/internal/domain/entities"
	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/interfaces/http/response"
	"collabhub.backend/internal/usecases"
)

// TaskHandler handles team board task endpoints
type TaskHandler struct {
	taskUsecase *usecases.TaskUsecase
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskUsecase *usecases.TaskUsecase) *TaskHandler {
	return &TaskHandler{taskUsecase: taskUsecase}
}

// ListTasks lists a team's board in display order
// GET /api/v1/teams/:id/tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	teamID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.taskUsecase.ListTasks(c.Request.Context(), teamID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tasks": tasks})
}

// CreateTask appends a task to a team's board
// POST /api/v1/teams/:id/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	teamID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	task, err := h.taskUsecase.CreateTask(c.Request.Context(), teamID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"task": task})
}

// UpdateTask applies a partial task edit, including column moves
// PUT /api/v1/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var patch entities.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	task, err := h.taskUsecase.UpdateTask(c.Request.Context(), id, &patch)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Task not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"task": task})
}

// DeleteTask removes a task from the board
// DELETE /api/v1/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.taskUsecase.DeleteTask(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Task deleted"})
}
