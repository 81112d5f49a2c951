package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"collabhub.backend/internal/domain/entities"
	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/domain/repositories"
	"collabhub.backend/pkg/logger"
	"collabhub.backend/pkg/utils"
)

// Notifier appends a notification for a user. Callers treat failures as
// non-fatal; the triggering mutation stands either way.
type Notifier interface {
	Notify(ctx context.Context, recipient uuid.UUID, notifType, content, link string) error
}

// ProjectUsecase owns the project and role application workflow
type ProjectUsecase struct {
	projectRepo repositories.ProjectRepository
	appRepo     repositories.ApplicationRepository
	userRepo    repositories.UserRepository
	notifier    Notifier
}

// NewProjectUsecase creates a new project usecase
func NewProjectUsecase(
	projectRepo repositories.ProjectRepository,
	appRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
	notifier Notifier,
) *ProjectUsecase {
	return &ProjectUsecase{
		projectRepo: projectRepo,
		appRepo:     appRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

// CreateProject posts a new project with its open roles
func (u *ProjectUsecase) CreateProject(ctx context.Context, creatorID uuid.UUID, input *entities.CreateProjectInput) (*entities.Project, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, domainerrors.BadRequest("title and description are required")
	}

	now := time.Now()
	project := &entities.Project{
		ID:          utils.GenerateUUIDv7(),
		Title:       input.Title,
		Description: input.Description,
		CreatorID:   creatorID,
		Roles:       make([]entities.Role, 0, len(input.Roles)),
		TechStack:   input.TechStack,
		Status:      entities.ProjectStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, r := range input.Roles {
		project.Roles = append(project.Roles, entities.Role{
			ID:          utils.GenerateUUIDv7(),
			Title:       r.Title,
			Description: r.Description,
			Applicants:  []uuid.UUID{},
		})
	}

	if err := u.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// ListProjects lists projects matching all given filters, newest first
func (u *ProjectUsecase) ListProjects(ctx context.Context, filter entities.ProjectFilter) ([]*entities.Project, error) {
	return u.projectRepo.List(ctx, filter)
}

// GetProject gets a project by ID
func (u *ProjectUsecase) GetProject(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	return u.projectRepo.GetByID(ctx, id)
}

// ApplyToRole records an application to an open role. The applicant set
// rejects duplicates, and the project creator is notified best-effort.
func (u *ProjectUsecase) ApplyToRole(ctx context.Context, projectID, applicantID uuid.UUID, input *entities.ApplyInput) error {
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}

	roleID, err := uuid.Parse(input.RoleID)
	if err != nil {
		return domainerrors.BadRequest("invalid role id")
	}
	role := project.FindRole(roleID)
	if role == nil {
		return domainerrors.NotFound("role not found on this project")
	}

	app := &entities.Application{
		ID:          utils.GenerateUUIDv7(),
		RoleID:      roleID,
		ApplicantID: applicantID,
		CoverLetter: input.CoverLetter,
		CreatedAt:   time.Now(),
	}
	if err := u.appRepo.Insert(ctx, app); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return domainerrors.Conflict("you have already applied to this role")
		}
		return err
	}

	u.notifyCreator(ctx, project, role, applicantID)
	return nil
}

func (u *ProjectUsecase) notifyCreator(ctx context.Context, project *entities.Project, role *entities.Role, applicantID uuid.UUID) {
	if u.notifier == nil {
		return
	}

	applicantName := "Someone"
	if applicant, err := u.userRepo.GetByID(ctx, applicantID); err == nil {
		applicantName = applicant.Name
	}

	content := fmt.Sprintf("%s applied for %s in %s", applicantName, role.Title, project.Title)
	link := "/projects/" + project.ID.String()
	if err := u.notifier.Notify(ctx, project.CreatorID, entities.NotificationTypeApplication, content, link); err != nil {
		logger.Warn(ctx, "application notification failed",
			zap.String("project_id", project.ID.String()), zap.Error(err))
	}
}

// CompleteProject moves a project to completed. Only the creator or an
// admin may complete it.
func (u *ProjectUsecase) CompleteProject(ctx context.Context, actor *entities.User, projectID uuid.UUID) error {
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}

	if !actor.IsAdmin() && actor.ID != project.CreatorID {
		return domainerrors.Forbidden("only the project creator may complete it")
	}

	return u.projectRepo.UpdateStatus(ctx, projectID, entities.ProjectStatusCompleted)
}
