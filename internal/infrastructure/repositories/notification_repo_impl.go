package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"collabhub.backend/internal/domain/entities"
	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/infrastructure/models"
)

// NotificationRepository implements notification data operations
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a notification
func (r *NotificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	m := &models.Notification{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Type:      notification.Type,
		Content:   notification.Content,
		Link:      notification.Link,
		Read:      notification.Read,
		CreatedAt: notification.Timestamp,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	notification.Timestamp = m.CreatedAt
	return nil
}

// MarkRead flips a notification's read flag. Marking an already read
// notification is a no-op, not an error.
func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var m models.Notification
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerrors.ErrNotFound
		}
		return err
	}
	if m.Read {
		return nil
	}
	return db.Model(&models.Notification{}).Where("id = ?", id).Update("read", true).Error
}

// ListByUser returns a user's most recent notifications, newest first
func (r *NotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Notification, error) {
	var ms []models.Notification
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, err
	}

	notifications := make([]*entities.Notification, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		notifications = append(notifications, &entities.Notification{
			ID:        m.ID,
			UserID:    m.UserID,
			Type:      m.Type,
			Content:   m.Content,
			Link:      m.Link,
			Read:      m.Read,
			Timestamp: m.CreatedAt,
		})
	}
	return notifications, nil
}
