package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"collabhub.backend/internal/domain/entities"
	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/domain/repositories"
	"collabhub.backend/pkg/utils"
)

// TaskUsecase owns the per-team task board
type TaskUsecase struct {
	taskRepo repositories.TaskRepository
	teamRepo repositories.TeamRepository
}

// NewTaskUsecase creates a new task usecase
func NewTaskUsecase(taskRepo repositories.TaskRepository, teamRepo repositories.TeamRepository) *TaskUsecase {
	return &TaskUsecase{taskRepo: taskRepo, teamRepo: teamRepo}
}

// CreateTask adds a task to a team's board, at the end of the ordering
func (u *TaskUsecase) CreateTask(ctx context.Context, teamID uuid.UUID, input *entities.CreateTaskInput) (*entities.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.BadRequest("title is required")
	}

	column := entities.TaskColumnTodo
	if input.Column != "" {
		if !entities.ValidTaskColumn(input.Column) {
			return nil, domainerrors.BadRequest("invalid column: " + input.Column)
		}
		column = entities.TaskColumn(input.Column)
	}

	if _, err := u.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}

	order, err := u.taskRepo.NextOrder(ctx, teamID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	task := &entities.Task{
		ID:          utils.GenerateUUIDv7(),
		TeamID:      teamID,
		Title:       input.Title,
		Description: input.Description,
		Column:      column,
		Order:       order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Assignee != "" {
		if _, err := uuid.Parse(input.Assignee); err != nil {
			return nil, domainerrors.BadRequest("invalid assignee id")
		}
		task.Assignee.SetValid(input.Assignee)
	}

	if err := u.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ListTasks returns a team's board ordered by the stored ordering key
func (u *TaskUsecase) ListTasks(ctx context.Context, teamID uuid.UUID) ([]*entities.Task, error) {
	return u.taskRepo.ListByTeam(ctx, teamID)
}

// UpdateTask applies a partial update; any member may move or reassign
// any task, forward or backward
func (u *TaskUsecase) UpdateTask(ctx context.Context, id uuid.UUID, patch *entities.TaskPatch) (*entities.Task, error) {
	if patch.Column != nil && !entities.ValidTaskColumn(*patch.Column) {
		return nil, domainerrors.BadRequest("invalid column: " + *patch.Column)
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, domainerrors.BadRequest("title cannot be empty")
	}
	return u.taskRepo.Update(ctx, id, patch)
}

// DeleteTask removes a task. Deleting an unknown id is a no-op.
func (u *TaskUsecase) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := u.taskRepo.Delete(ctx, id); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}
	return nil
}
