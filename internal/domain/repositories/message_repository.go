package repositories

import (
	"context"

	"github.com/google/uuid"

	"collabhub.backend/internal/domain/entities"
)

// MessageRepository defines message log operations
type MessageRepository interface {
	Create(ctx context.Context, message *entities.Message) error
	// ListByChannel returns the most recent `limit` messages of a
	// (team, channel) log in ascending timestamp order, ties broken
	// by insertion order.
	ListByChannel(ctx context.Context, teamID uuid.UUID, channel string, limit int) ([]*entities.Message, error)
}
