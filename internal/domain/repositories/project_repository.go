package repositories

import (
	"context"

	"github.com/google/uuid"

	"collabhub.backend/internal/domain/entities"
)

// ProjectRepository defines project and role data operations
type ProjectRepository interface {
	Create(ctx context.Context, project *entities.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error)
	List(ctx context.Context, filter entities.ProjectFilter) ([]*entities.Project, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ProjectStatus) error
	// BindTeam sets the project's team and moves it to in-progress, but
	// only if no team is bound yet. Returns ErrAlreadyExists when the
	// project is already teamed and ErrNotFound when it does not exist.
	BindTeam(ctx context.Context, projectID, teamID uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entities.ProjectStatus) (int64, error)
}

// ApplicationRepository defines role application operations. Insert relies
// on the (role, applicant) unique constraint: a duplicate application
// surfaces as ErrAlreadyExists, never as a second row.
type ApplicationRepository interface {
	Insert(ctx context.Context, app *entities.Application) error
	ListByRole(ctx context.Context, roleID uuid.UUID) ([]*entities.Application, error)
}
