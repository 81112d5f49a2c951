package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"collabhub.backend/internal/domain/entities"
	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/infrastructure/models"
)

// TaskRepository implements task board data operations
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) error {
	m := taskToModel(task)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	task.CreatedAt = m.CreatedAt
	task.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a task by ID
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Task, error) {
	var m models.Task
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return taskToEntity(&m), nil
}

// ListByTeam lists a team's tasks ordered by column position
func (r *TaskRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Task, error) {
	var ms []models.Task
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("display_order ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	tasks := make([]*entities.Task, 0, len(ms))
	for i := range ms {
		tasks = append(tasks, taskToEntity(&ms[i]))
	}
	return tasks, nil
}

// Update applies a partial update to a task. Nil patch fields are left
// untouched; a non-nil empty assignee clears the assignment.
func (r *TaskRepository) Update(ctx context.Context, id uuid.UUID, patch *entities.TaskPatch) (*entities.Task, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Column != nil {
		updates["board_column"] = *patch.Column
	}
	if patch.Assignee != nil {
		if *patch.Assignee == "" {
			updates["assignee_id"] = nil
		} else {
			assigneeID, err := uuid.Parse(*patch.Assignee)
			if err != nil {
				return nil, domainerrors.ErrInvalidInput
			}
			updates["assignee_id"] = assigneeID
		}
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Task{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a task by ID
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// NextOrder returns the next display order slot on a team's board
func (r *TaskRepository) NextOrder(ctx context.Context, teamID uuid.UUID) (int, error) {
	var max *int
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Task{}).
		Where("team_id = ?", teamID).
		Select("MAX(display_order)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max + 1, nil
}

func taskToModel(t *entities.Task) *models.Task {
	m := &models.Task{
		ID:           t.ID,
		TeamID:       t.TeamID,
		Title:        t.Title,
		Description:  t.Description,
		BoardColumn:  string(t.Column),
		DisplayOrder: t.Order,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
	if t.Assignee.Valid {
		if id, err := uuid.Parse(t.Assignee.String); err == nil {
			m.AssigneeID = &id
		}
	}
	return m
}

func taskToEntity(m *models.Task) *entities.Task {
	t := &entities.Task{
		ID:          m.ID,
		TeamID:      m.TeamID,
		Title:       m.Title,
		Description: m.Description,
		Column:      entities.TaskColumn(m.BoardColumn),
		Order:       m.DisplayOrder,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.AssigneeID != nil {
		t.Assignee.SetValid(m.AssigneeID.String())
	}
	return t
}
