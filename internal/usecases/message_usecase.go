package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"collabhub.backend/internal/domain/entities"
	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/domain/repositories"
	"collabhub.backend/pkg/utils"
)

const (
	defaultMessageLimit = 100
	maxMessageLimit     = 500
)

// MessageUsecase owns the per-team channel message log
type MessageUsecase struct {
	messageRepo repositories.MessageRepository
	teamRepo    repositories.TeamRepository
	userRepo    repositories.UserRepository
}

// NewMessageUsecase creates a new message usecase
func NewMessageUsecase(
	messageRepo repositories.MessageRepository,
	teamRepo repositories.TeamRepository,
	userRepo repositories.UserRepository,
) *MessageUsecase {
	return &MessageUsecase{messageRepo: messageRepo, teamRepo: teamRepo, userRepo: userRepo}
}

// PostMessage appends a message to a team channel
func (u *MessageUsecase) PostMessage(ctx context.Context, teamID, authorID uuid.UUID, input *entities.PostMessageInput) (*entities.Message, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, domainerrors.BadRequest("message content is required")
	}

	if _, err := u.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}

	channel := input.Channel
	if channel == "" {
		channel = entities.DefaultChannel
	}

	message := &entities.Message{
		ID:        utils.GenerateUUIDv7(),
		TeamID:    teamID,
		AuthorID:  authorID,
		Channel:   channel,
		Content:   input.Content,
		Timestamp: time.Now(),
	}
	if err := u.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// ListMessages returns the trailing window of a channel in chronological
// order. Author identity is joined at read time, so profile edits change
// how old messages render.
func (u *MessageUsecase) ListMessages(ctx context.Context, teamID uuid.UUID, channel string, limit int) ([]*entities.MessageView, error) {
	if channel == "" {
		channel = entities.DefaultChannel
	}
	limit = utils.ClampLimit(limit, defaultMessageLimit, maxMessageLimit)

	messages, err := u.messageRepo.ListByChannel(ctx, teamID, channel, limit)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]uuid.UUID, 0, len(messages))
	seen := make(map[uuid.UUID]bool, len(messages))
	for _, m := range messages {
		if !seen[m.AuthorID] {
			seen[m.AuthorID] = true
			authorIDs = append(authorIDs, m.AuthorID)
		}
	}

	summaries, err := u.userRepo.GetSummaries(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]*entities.MessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, &entities.MessageView{
			Message: *m,
			Author:  summaries[m.AuthorID],
		})
	}
	return views, nil
}
