package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"collabhub.backend/internal/domain/entities"
	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/usecases"
)

func newAdminFixture() (*usecases.AdminUsecase, *MockUserRepository, *MockProjectRepository, *MockTeamRepository) {
	userRepo := new(MockUserRepository)
	projectRepo := new(MockProjectRepository)
	teamRepo := new(MockTeamRepository)
	return usecases.NewAdminUsecase(userRepo, projectRepo, teamRepo), userRepo, projectRepo, teamRepo
}

func TestAdminUsecase_Stats(t *testing.T) {
	uc, userRepo, projectRepo, teamRepo := newAdminFixture()
	ctx := context.Background()

	userRepo.On("Count", ctx).Return(int64(12), nil)
	projectRepo.On("Count", ctx).Return(int64(7), nil)
	teamRepo.On("Count", ctx).Return(int64(3), nil)
	projectRepo.On("CountByStatus", ctx, entities.ProjectStatusInProgress).Return(int64(3), nil)
	projectRepo.On("CountByStatus", ctx, entities.ProjectStatusCompleted).Return(int64(2), nil)

	stats, err := uc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(12), stats.TotalUsers)
	require.Equal(t, int64(7), stats.TotalProjects)
	require.Equal(t, int64(3), stats.TotalTeams)
	require.Equal(t, int64(3), stats.ActiveProjects)
	require.Equal(t, int64(2), stats.CompletedProjects)
}

func TestAdminUsecase_StatsPropagatesErrors(t *testing.T) {
	uc, userRepo, _, _ := newAdminFixture()
	ctx := context.Background()

	userRepo.On("Count", ctx).Return(int64(0), domainerrors.NewError("db down", nil))

	_, err := uc.Stats(ctx)
	require.Error(t, err)
}

func TestAdminUsecase_DeleteUser(t *testing.T) {
	uc, userRepo, _, _ := newAdminFixture()
	ctx := context.Background()
	id := uuid.New()

	userRepo.On("SoftDelete", ctx, id).Return(nil)
	require.NoError(t, uc.DeleteUser(ctx, id))

	missing := uuid.New()
	userRepo.On("SoftDelete", ctx, missing).Return(domainerrors.ErrNotFound)
	require.ErrorIs(t, uc.DeleteUser(ctx, missing), domainerrors.ErrNotFound)
}
