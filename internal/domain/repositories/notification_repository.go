package repositories

import (
	"context"

	"github.com/google/uuid"

	"collabhub.backend/internal/domain/entities"
)

// NotificationRepository defines notification data operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *entities.Notification) error
	// MarkRead is idempotent: re-marking a read notification succeeds.
	// Unknown IDs return ErrNotFound.
	MarkRead(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Notification, error)
}
