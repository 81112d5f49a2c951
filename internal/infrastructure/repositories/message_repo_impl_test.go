package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"collabhub.backend/internal/domain/entities"
	domainerrors "collabhub.backend/internal/domain/errors"
)

func TestMessageRepository_WindowAscending(t *testing.T) {
	db := newTestDB(t)
	createMessageTables(t, db)
	repo := NewMessageRepository(db)
	ctx := context.Background()
	teamID := uuid.New()
	author := uuid.New()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		msg := &entities.Message{
			ID:        uuid.New(),
			TeamID:    teamID,
			AuthorID:  author,
			Channel:   entities.DefaultChannel,
			Content:   fmt.Sprintf("msg-%d", i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(ctx, msg))
	}

	// the window holds the newest messages, rendered oldest first
	window, err := repo.ListByChannel(ctx, teamID, entities.DefaultChannel, 3)
	require.NoError(t, err)
	require.Len(t, window, 3)
	require.Equal(t, "msg-2", window[0].Content)
	require.Equal(t, "msg-4", window[2].Content)

	all, err := repo.ListByChannel(ctx, teamID, entities.DefaultChannel, 100)
	require.NoError(t, err)
	require.Len(t, all, 5)
	require.Equal(t, "msg-0", all[0].Content)
}

func TestMessageRepository_ChannelsAreIsolated(t *testing.T) {
	db := newTestDB(t)
	createMessageTables(t, db)
	repo := NewMessageRepository(db)
	ctx := context.Background()
	teamID := uuid.New()

	require.NoError(t, repo.Create(ctx, &entities.Message{
		ID: uuid.New(), TeamID: teamID, AuthorID: uuid.New(),
		Channel: entities.DefaultChannel, Content: "hello", Timestamp: time.Now(),
	}))
	require.NoError(t, repo.Create(ctx, &entities.Message{
		ID: uuid.New(), TeamID: teamID, AuthorID: uuid.New(),
		Channel: "design", Content: "mockups", Timestamp: time.Now(),
	}))

	general, err := repo.ListByChannel(ctx, teamID, entities.DefaultChannel, 100)
	require.NoError(t, err)
	require.Len(t, general, 1)
	require.Equal(t, "hello", general[0].Content)

	otherTeam, err := repo.ListByChannel(ctx, uuid.New(), entities.DefaultChannel, 100)
	require.NoError(t, err)
	require.Empty(t, otherTeam)
}

func TestNotificationRepository_MarkReadIdempotent(t *testing.T) {
	db := newTestDB(t)
	createMessageTables(t, db)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	n := &entities.Notification{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Type:      entities.NotificationTypeApplication,
		Content:   "Aurora applied for Backend in Chat Service",
		Link:      "/projects/abc",
		Timestamp: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, n))

	require.NoError(t, repo.MarkRead(ctx, n.ID))
	require.NoError(t, repo.MarkRead(ctx, n.ID))
	require.ErrorIs(t, repo.MarkRead(ctx, uuid.New()), domainerrors.ErrNotFound)

	list, err := repo.ListByUser(ctx, n.UserID, 50)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.True(t, list[0].Read)
}

func TestNotificationRepository_ListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	createMessageTables(t, db)
	repo := NewNotificationRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &entities.Notification{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      entities.NotificationTypeApplication,
			Content:   fmt.Sprintf("event-%d", i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	list, err := repo.ListByUser(ctx, userID, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "event-2", list[0].Content)
	require.Equal(t, "event-1", list[1].Content)
}
