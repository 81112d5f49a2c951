package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"collabhub.backend/internal/domain/entities"
	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/infrastructure/models"
)

// ProjectRepository implements project and role data operations
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a project together with its role postings
func (r *ProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	m := &models.Project{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		CreatorID:   project.CreatorID,
		TechStack:   encodeStrings(project.TechStack),
		Status:      string(project.Status),
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
	if err := db.Create(m).Error; err != nil {
		return err
	}

	for i, role := range project.Roles {
		rm := &models.Role{
			ID:          role.ID,
			ProjectID:   project.ID,
			Title:       role.Title,
			Description: role.Description,
			Position:    i,
			CreatedAt:   project.CreatedAt,
		}
		if err := db.Create(rm).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID gets a project with roles and applicant sets
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	var m models.Project
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	project := projectToEntity(&m)
	if err := r.loadRoles(ctx, []*entities.Project{project}); err != nil {
		return nil, err
	}
	return project, nil
}

// List lists projects matching all given filters, most recent first
func (r *ProjectRepository) List(ctx context.Context, filter entities.ProjectFilter) ([]*entities.Project, error) {
	var projectModels []models.Project
	query := GetDB(ctx, r.db).WithContext(ctx).Order("created_at DESC")

	if filter.TextQuery != "" {
		term := "%" + filter.TextQuery + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", term, term)
	}
	if filter.TechTag != "" {
		// tech_stack holds a JSON array of strings, so an exact tag is
		// always surrounded by double quotes
		query = query.Where("tech_stack LIKE ?", `%"`+filter.TechTag+`"%`)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Find(&projectModels).Error; err != nil {
		return nil, err
	}

	projects := make([]*entities.Project, 0, len(projectModels))
	for i := range projectModels {
		projects = append(projects, projectToEntity(&projectModels[i]))
	}

	if err := r.loadRoles(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateStatus moves a project to the given lifecycle status
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ProjectStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Project{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// BindTeam binds a team to a yet-unteamed project and moves it to
// in-progress in one conditional update
func (r *ProjectRepository) BindTeam(ctx context.Context, projectID, teamID uuid.UUID) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Model(&models.Project{}).
		Where("id = ? AND team_id IS NULL", projectID).
		Updates(map[string]interface{}{
			"team_id":    teamID,
			"status":     entities.ProjectStatusInProgress,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either missing or already teamed; look once to tell apart.
		var count int64
		if err := db.Model(&models.Project{}).Where("id = ?", projectID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.ErrAlreadyExists
	}
	return nil
}

// Count returns the number of projects
func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Project{}).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of projects in the given status
func (r *ProjectRepository) CountByStatus(ctx context.Context, status entities.ProjectStatus) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Project{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *ProjectRepository) loadRoles(ctx context.Context, projects []*entities.Project) error {
	if len(projects) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(projects))
	byID := make(map[uuid.UUID]*entities.Project, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
		byID[p.ID] = p
	}

	var roleModels []models.Role
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("project_id IN ?", ids).
		Order("position ASC").
		Find(&roleModels).Error; err != nil {
		return err
	}

	roleIDs := make([]uuid.UUID, 0, len(roleModels))
	roleByID := make(map[uuid.UUID]*entities.Role, len(roleModels))
	for _, rm := range roleModels {
		p := byID[rm.ProjectID]
		p.Roles = append(p.Roles, entities.Role{
			ID:          rm.ID,
			Title:       rm.Title,
			Description: rm.Description,
			Applicants:  []uuid.UUID{},
		})
		roleByID[rm.ID] = &p.Roles[len(p.Roles)-1]
		roleIDs = append(roleIDs, rm.ID)
	}

	if len(roleIDs) == 0 {
		return nil
	}

	var appModels []models.Application
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("role_id IN ?", roleIDs).
		Order("created_at ASC").
		Find(&appModels).Error; err != nil {
		return err
	}

	for _, am := range appModels {
		if role, ok := roleByID[am.RoleID]; ok {
			role.Applicants = append(role.Applicants, am.ApplicantID)
		}
	}
	return nil
}

func projectToEntity(m *models.Project) *entities.Project {
	p := &entities.Project{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		CreatorID:   m.CreatorID,
		Roles:       []entities.Role{},
		TechStack:   decodeStrings(m.TechStack),
		Status:      entities.ProjectStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.TeamID != nil {
		p.TeamID.SetValid(m.TeamID.String())
	}
	return p
}

// ApplicationRepository implements role application operations
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Insert records an application. A duplicate (role, applicant) pair is
// rejected by the unique index, not by a racy pre-read.
func (r *ApplicationRepository) Insert(ctx context.Context, app *entities.Application) error {
	m := &models.Application{
		ID:          app.ID,
		RoleID:      app.RoleID,
		ApplicantID: app.ApplicantID,
		CoverLetter: app.CoverLetter,
		CreatedAt:   app.CreatedAt,
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "role_id"}, {Name: "applicant_id"}},
		DoNothing: true,
	}).Create(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAlreadyExists
	}
	return nil
}

// ListByRole returns a role's applications in application order
func (r *ApplicationRepository) ListByRole(ctx context.Context, roleID uuid.UUID) ([]*entities.Application, error) {
	var appModels []models.Application
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("role_id = ?", roleID).
		Order("created_at ASC").
		Find(&appModels).Error; err != nil {
		return nil, err
	}

	apps := make([]*entities.Application, 0, len(appModels))
	for _, m := range appModels {
		apps = append(apps, &entities.Application{
			ID:          m.ID,
			RoleID:      m.RoleID,
			ApplicantID: m.ApplicantID,
			CoverLetter: m.CoverLetter,
			CreatedAt:   m.CreatedAt,
		})
	}
	return apps, nil
}
