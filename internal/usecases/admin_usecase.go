package usecases

import (
	"context"

	"github.com/google/uuid"

	"collabhub.backend/internal/domain/entities"
	"collabhub.backend/internal/domain/repositories"
)

// PlatformStats aggregates platform-wide counts for the admin surface
type PlatformStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalProjects     int64 `json:"totalProjects"`
	TotalTeams        int64 `json:"totalTeams"`
	ActiveProjects    int64 `json:"activeProjects"`
	CompletedProjects int64 `json:"completedProjects"`
}

// AdminUsecase covers the admin-only read and delete surface
type AdminUsecase struct {
	userRepo    repositories.UserRepository
	projectRepo repositories.ProjectRepository
	teamRepo    repositories.TeamRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	userRepo repositories.UserRepository,
	projectRepo repositories.ProjectRepository,
	teamRepo repositories.TeamRepository,
) *AdminUsecase {
	return &AdminUsecase{userRepo: userRepo, projectRepo: projectRepo, teamRepo: teamRepo}
}

// ListUsers lists users with an optional name or email search
func (u *AdminUsecase) ListUsers(ctx context.Context, search string) ([]*entities.User, error) {
	return u.userRepo.List(ctx, search)
}

// DeleteUser soft deletes a user
func (u *AdminUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return u.userRepo.SoftDelete(ctx, id)
}

// Stats gathers the aggregate counts shown on the admin dashboard
func (u *AdminUsecase) Stats(ctx context.Context) (*PlatformStats, error) {
	stats := &PlatformStats{}

	var err error
	if stats.TotalUsers, err = u.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalProjects, err = u.projectRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalTeams, err = u.teamRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveProjects, err = u.projectRepo.CountByStatus(ctx, entities.ProjectStatusInProgress); err != nil {
		return nil, err
	}
	if stats.CompletedProjects, err = u.projectRepo.CountByStatus(ctx, entities.ProjectStatusCompleted); err != nil {
		return nil, err
	}
	return stats, nil
}
