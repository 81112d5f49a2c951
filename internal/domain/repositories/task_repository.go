package repositories

import (
	"context"

	"github.com/google/uuid"

	"collabhub.backend/internal/domain/entities"
)

// TaskRepository defines task board data operations
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Task, error)
	// ListByTeam returns tasks ordered by their ordering key ascending.
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Task, error)
	// Update applies a partial update; nil patch fields stay untouched.
	Update(ctx context.Context, id uuid.UUID, patch *entities.TaskPatch) (*entities.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
	NextOrder(ctx context.Context, teamID uuid.UUID) (int, error)
}
