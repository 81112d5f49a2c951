package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"collabhub.backend/internal/domain/entities"
	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/infrastructure/models"
)

// TeamRepository implements team and membership data operations
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a team with its initial member rows
func (r *TeamRepository) Create(ctx context.Context, team *entities.Team) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	m := &models.Team{
		ID:        team.ID,
		Name:      team.Name,
		ProjectID: team.ProjectID,
		CreatedAt: team.CreatedAt,
	}
	if err := db.Create(m).Error; err != nil {
		return err
	}

	for i, userID := range team.Members {
		member := &models.TeamMember{
			ID:        uuid.New(),
			TeamID:    team.ID,
			UserID:    userID,
			Position:  i,
			CreatedAt: team.CreatedAt,
		}
		if err := db.Create(member).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID gets a team with its member list in join order
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	var m models.Team
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	var memberModels []models.TeamMember
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("team_id = ?", id).
		Order("position ASC").
		Find(&memberModels).Error; err != nil {
		return nil, err
	}

	members := make([]uuid.UUID, 0, len(memberModels))
	for _, mm := range memberModels {
		members = append(members, mm.UserID)
	}

	return &entities.Team{
		ID:        m.ID,
		Name:      m.Name,
		ProjectID: m.ProjectID,
		Members:   members,
		CreatedAt: m.CreatedAt,
	}, nil
}

// AddMember adds a user to the team; adding an existing member conflicts
func (r *TeamRepository) AddMember(ctx context.Context, teamID, userID uuid.UUID) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var next int64
	if err := db.Model(&models.TeamMember{}).Where("team_id = ?", teamID).Count(&next).Error; err != nil {
		return err
	}

	member := &models.TeamMember{
		ID:       uuid.New(),
		TeamID:   teamID,
		UserID:   userID,
		Position: int(next),
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "team_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(member)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAlreadyExists
	}
	return nil
}

// RemoveMember removes a user from the team
func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&models.TeamMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Count returns the number of teams
func (r *TeamRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Team{}).Count(&count).Error
	return count, err
}
