package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"collabhub.backend/internal/domain/entities"
	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/usecases"
)

func newProjectFixture() (*usecases.ProjectUsecase, *MockProjectRepository, *MockApplicationRepository, *MockUserRepository, *MockNotifier) {
	projectRepo := new(MockProjectRepository)
	appRepo := new(MockApplicationRepository)
	userRepo := new(MockUserRepository)
	notifier := new(MockNotifier)
	uc := usecases.NewProjectUsecase(projectRepo, appRepo, userRepo, notifier)
	return uc, projectRepo, appRepo, userRepo, notifier
}

func TestProjectUsecase_CreateProject(t *testing.T) {
	uc, projectRepo, _, _, _ := newProjectFixture()
	ctx := context.Background()
	creator := uuid.New()

	projectRepo.On("Create", ctx, mock.Anything).Return(nil)

	project, err := uc.CreateProject(ctx, creator, &entities.CreateProjectInput{
		Title:       "Aurora",
		Description: "x",
		Roles:       []entities.RoleInput{{Title: "Backend", Description: "APIs"}},
		TechStack:   []string{"Go"},
	})
	require.NoError(t, err)
	require.Equal(t, entities.ProjectStatusOpen, project.Status)
	require.Equal(t, creator, project.CreatorID)
	require.Len(t, project.Roles, 1)
	require.NotEqual(t, uuid.Nil, project.Roles[0].ID)
	require.Empty(t, project.Roles[0].Applicants)
}

func TestProjectUsecase_CreateProjectValidation(t *testing.T) {
	uc, _, _, _, _ := newProjectFixture()
	ctx := context.Background()

	for _, input := range []*entities.CreateProjectInput{
		{Title: "", Description: "x"},
		{Title: "t", Description: "  "},
	} {
		_, err := uc.CreateProject(ctx, uuid.New(), input)
		require.Error(t, err)
		appErr, ok := err.(*domainerrors.AppError)
		require.True(t, ok)
		require.Equal(t, domainerrors.CodeInvalidInput, appErr.Code)
	}
}

func TestProjectUsecase_ApplyToRole(t *testing.T) {
	uc, projectRepo, appRepo, userRepo, notifier := newProjectFixture()
	ctx := context.Background()

	creator := uuid.New()
	applicant := uuid.New()
	roleID := uuid.New()
	project := &entities.Project{
		ID:        uuid.New(),
		Title:     "Aurora",
		CreatorID: creator,
		Roles:     []entities.Role{{ID: roleID, Title: "Backend"}},
	}

	projectRepo.On("GetByID", ctx, project.ID).Return(project, nil)
	appRepo.On("Insert", ctx, mock.MatchedBy(func(a *entities.Application) bool {
		return a.RoleID == roleID && a.ApplicantID == applicant && a.CoverLetter == "hire me"
	})).Return(nil).Once()
	userRepo.On("GetByID", ctx, applicant).Return(&entities.User{ID: applicant, Name: "Uma"}, nil)
	notifier.On("Notify", ctx, creator, entities.NotificationTypeApplication,
		"Uma applied for Backend in Aurora", "/projects/"+project.ID.String()).Return(nil)

	err := uc.ApplyToRole(ctx, project.ID, applicant, &entities.ApplyInput{
		RoleID: roleID.String(), CoverLetter: "hire me",
	})
	require.NoError(t, err)
	notifier.AssertExpectations(t)

	// second application to the same role conflicts
	appRepo.On("Insert", ctx, mock.Anything).Return(domainerrors.ErrAlreadyExists)
	err = uc.ApplyToRole(ctx, project.ID, applicant, &entities.ApplyInput{RoleID: roleID.String()})
	require.Error(t, err)
	appErr, ok := err.(*domainerrors.AppError)
	require.True(t, ok)
	require.Equal(t, domainerrors.CodeConflict, appErr.Code)
}

func TestProjectUsecase_ApplyToRoleNotFound(t *testing.T) {
	uc, projectRepo, _, _, _ := newProjectFixture()
	ctx := context.Background()

	missing := uuid.New()
	projectRepo.On("GetByID", ctx, missing).Return(nil, domainerrors.ErrNotFound)
	err := uc.ApplyToRole(ctx, missing, uuid.New(), &entities.ApplyInput{RoleID: uuid.New().String()})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	project := &entities.Project{ID: uuid.New(), CreatorID: uuid.New()}
	projectRepo.On("GetByID", ctx, project.ID).Return(project, nil)

	err = uc.ApplyToRole(ctx, project.ID, uuid.New(), &entities.ApplyInput{RoleID: uuid.New().String()})
	require.Error(t, err)
	appErr, ok := err.(*domainerrors.AppError)
	require.True(t, ok)
	require.Equal(t, domainerrors.CodeNotFound, appErr.Code)
}

func TestProjectUsecase_ApplySurvivesNotifierFailure(t *testing.T) {
	uc, projectRepo, appRepo, userRepo, notifier := newProjectFixture()
	ctx := context.Background()

	roleID := uuid.New()
	project := &entities.Project{
		ID:        uuid.New(),
		Title:     "P",
		CreatorID: uuid.New(),
		Roles:     []entities.Role{{ID: roleID, Title: "R"}},
	}
	projectRepo.On("GetByID", ctx, project.ID).Return(project, nil)
	appRepo.On("Insert", ctx, mock.Anything).Return(nil)
	userRepo.On("GetByID", ctx, mock.Anything).Return(nil, domainerrors.ErrNotFound)
	notifier.On("Notify", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domainerrors.NewError("sink down", nil))

	err := uc.ApplyToRole(ctx, project.ID, uuid.New(), &entities.ApplyInput{RoleID: roleID.String()})
	require.NoError(t, err, "notification failure must not fail the application")
}

func TestProjectUsecase_CompleteProject(t *testing.T) {
	uc, projectRepo, _, _, _ := newProjectFixture()
	ctx := context.Background()

	creator := uuid.New()
	project := &entities.Project{ID: uuid.New(), CreatorID: creator, Status: entities.ProjectStatusInProgress}
	projectRepo.On("GetByID", ctx, project.ID).Return(project, nil)
	projectRepo.On("UpdateStatus", ctx, project.ID, entities.ProjectStatusCompleted).Return(nil)

	// a stranger cannot complete it
	stranger := &entities.User{ID: uuid.New(), Role: entities.UserRoleUser}
	err := uc.CompleteProject(ctx, stranger, project.ID)
	require.Error(t, err)
	appErr, ok := err.(*domainerrors.AppError)
	require.True(t, ok)
	require.Equal(t, domainerrors.CodeForbidden, appErr.Code)

	// the creator can
	require.NoError(t, uc.CompleteProject(ctx, &entities.User{ID: creator, Role: entities.UserRoleUser}, project.ID))

	// so can an admin
	require.NoError(t, uc.CompleteProject(ctx, &entities.User{ID: uuid.New(), Role: entities.UserRoleAdmin}, project.ID))
}
