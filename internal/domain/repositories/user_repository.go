package repositories

import (
	"context"

	"github.com/google/uuid"

	"collabhub.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string) ([]*entities.User, error)
	// GetSummaries resolves display identities for the given users.
	// Unknown IDs are simply absent from the result.
	GetSummaries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entities.UserSummary, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// EmailVerificationRepository defines email verification operations
type EmailVerificationRepository interface {
	Create(ctx context.Context, userID uuid.UUID, token string) error
	GetByToken(ctx context.Context, token string) (*entities.User, error)
	MarkVerified(ctx context.Context, token string) error
}

// SkillRepository defines skill ledger operations. Upsert must be atomic
// per (user, name) so concurrent verifications cannot duplicate a skill.
type SkillRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entities.Skill, error)
	Upsert(ctx context.Context, userID uuid.UUID, skill entities.Skill) error
	ReplaceAll(ctx context.Context, userID uuid.UUID, skills []entities.Skill) error
}
