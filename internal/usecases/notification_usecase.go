package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"collabhub.backend/internal/domain/entities"
	"collabhub.backend/internal/domain/repositories"
	"collabhub.backend/pkg/utils"
)

const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 200
)

// NotificationUsecase owns the per-user notification feed
type NotificationUsecase struct {
	notificationRepo repositories.NotificationRepository
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(notificationRepo repositories.NotificationRepository) *NotificationUsecase {
	return &NotificationUsecase{notificationRepo: notificationRepo}
}

// Notify appends an unread notification for the recipient
func (u *NotificationUsecase) Notify(ctx context.Context, recipient uuid.UUID, notifType, content, link string) error {
	return u.notificationRepo.Create(ctx, &entities.Notification{
		ID:        utils.GenerateUUIDv7(),
		UserID:    recipient,
		Type:      notifType,
		Content:   content,
		Link:      link,
		Timestamp: time.Now(),
	})
}

// MarkRead flips a notification to read. Re-marking is a no-op.
func (u *NotificationUsecase) MarkRead(ctx context.Context, id uuid.UUID) error {
	return u.notificationRepo.MarkRead(ctx, id)
}

// ListForUser returns the user's most recent notifications
func (u *NotificationUsecase) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Notification, error) {
	limit = utils.ClampLimit(limit, defaultNotificationLimit, maxNotificationLimit)
	return u.notificationRepo.ListByUser(ctx, userID, limit)
}
