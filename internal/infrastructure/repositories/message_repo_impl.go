package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"collabhub.backend/internal/domain/entities"
	"collabhub.backend/internal/infrastructure/models"
)

// MessageRepository implements the team channel message log
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create appends a message to its channel log
func (r *MessageRepository) Create(ctx context.Context, message *entities.Message) error {
	m := &models.Message{
		ID:        message.ID,
		TeamID:    message.TeamID,
		AuthorID:  message.AuthorID,
		Channel:   message.Channel,
		Content:   message.Content,
		CreatedAt: message.Timestamp,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	message.Timestamp = m.CreatedAt
	return nil
}

// ListByChannel returns the trailing window of a channel log in ascending
// order. The query walks the log backwards to find the window, then the
// slice is reversed so callers render oldest first.
func (r *MessageRepository) ListByChannel(ctx context.Context, teamID uuid.UUID, channel string, limit int) ([]*entities.Message, error) {
	var ms []models.Message
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("team_id = ? AND channel = ?", teamID, channel).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, err
	}

	messages := make([]*entities.Message, len(ms))
	for i := range ms {
		m := &ms[len(ms)-1-i]
		messages[i] = &entities.Message{
			ID:        m.ID,
			TeamID:    m.TeamID,
			AuthorID:  m.AuthorID,
			Channel:   m.Channel,
			Content:   m.Content,
			Timestamp: m.CreatedAt,
		}
	}
	return messages, nil
}
