package repositories

import (
	"context"

	"github.com/google/uuid"

	"collabhub.backend/internal/domain/entities"
)

// TeamRepository defines team and membership data operations
type TeamRepository interface {
	Create(ctx context.Context, team *entities.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error)
	AddMember(ctx context.Context, teamID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
