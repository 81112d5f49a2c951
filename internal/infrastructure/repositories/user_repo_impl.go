package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"collabhub.backend/internal/domain/entities"
	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		PasswordHash:   user.PasswordHash,
		Image:          user.Image,
		Bio:            user.Bio,
		PortfolioLinks: encodeStrings(user.PortfolioLinks),
		Role:           string(user.Role),
		EmailVerified:  user.EmailVerified,
		Onboarded:      user.Onboarded,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}

	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a user by ID, skills included
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	user := userToEntity(&m)
	skills, err := r.loadSkills(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Skills = skills
	return user, nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	user := userToEntity(&m)
	skills, err := r.loadSkills(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	user.Skills = skills
	return user, nil
}

// Update updates a user's mutable profile fields
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	updates := map[string]interface{}{
		"name":            user.Name,
		"image":           user.Image,
		"bio":             user.Bio,
		"portfolio_links": encodeStrings(user.PortfolioLinks),
		"role":            user.Role,
		"onboarded":       user.Onboarded,
		"updated_at":      time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MarkEmailVerified flips the user's verified-email flag
func (r *UserRepository) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"email_verified": true, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists users with optional search filter
func (r *UserRepository) List(ctx context.Context, search string) ([]*entities.User, error) {
	var userModels []models.User
	query := GetDB(ctx, r.db).WithContext(ctx).Order("created_at DESC")

	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", searchTerm, searchTerm)
	}

	if err := query.Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, nil
}

// GetSummaries resolves display identities for the given user IDs
func (r *UserRepository) GetSummaries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entities.UserSummary, error) {
	out := make(map[uuid.UUID]entities.UserSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var userModels []models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Select("id", "name", "image").
		Where("id IN ?", ids).
		Find(&userModels).Error; err != nil {
		return nil, err
	}

	for _, m := range userModels {
		out[m.ID] = entities.UserSummary{ID: m.ID, Name: m.Name, Image: m.Image}
	}
	return out, nil
}

// SoftDelete soft deletes a user
func (r *UserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Count returns the number of registered users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepository) loadSkills(ctx context.Context, userID uuid.UUID) ([]entities.Skill, error) {
	var skillModels []models.Skill
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&skillModels).Error; err != nil {
		return nil, err
	}

	skills := make([]entities.Skill, 0, len(skillModels))
	for _, m := range skillModels {
		skills = append(skills, entities.Skill{
			Name:     m.Name,
			Verified: m.Verified,
			Method:   entities.VerificationMethod(m.Method),
			Badge:    m.Badge,
		})
	}
	return skills, nil
}

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		Image:          m.Image,
		Bio:            m.Bio,
		PortfolioLinks: decodeStrings(m.PortfolioLinks),
		Role:           entities.UserRole(m.Role),
		EmailVerified:  m.EmailVerified,
		Onboarded:      m.Onboarded,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func encodeStrings(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeStrings(encoded string) []string {
	if encoded == "" {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal([]byte(encoded), &values); err != nil {
		return []string{}
	}
	return values
}

// SkillRepository implements skill ledger operations
type SkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// ListByUser returns the user's skill ledger
func (r *SkillRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entities.Skill, error) {
	repo := UserRepository{db: r.db}
	return repo.loadSkills(ctx, userID)
}

// Upsert writes a skill, overwriting verified/method/badge when a skill
// with that name already exists. The (user_id, name) unique index makes
// this safe under concurrent callers.
func (r *SkillRepository) Upsert(ctx context.Context, userID uuid.UUID, skill entities.Skill) error {
	now := time.Now()
	m := &models.Skill{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      skill.Name,
		Verified:  skill.Verified,
		Method:    string(skill.Method),
		Badge:     skill.Badge,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return GetDB(ctx, r.db).WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"verified", "method", "badge", "updated_at"}),
	}).Create(m).Error
}

// ReplaceAll swaps the user's entire ledger, used by onboarding
func (r *SkillRepository) ReplaceAll(ctx context.Context, userID uuid.UUID, skills []entities.Skill) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	if err := db.Where("user_id = ?", userID).Delete(&models.Skill{}).Error; err != nil {
		return err
	}

	now := time.Now()
	for _, skill := range skills {
		m := &models.Skill{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      skill.Name,
			Verified:  skill.Verified,
			Method:    string(skill.Method),
			Badge:     skill.Badge,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := db.Create(m).Error; err != nil {
			return err
		}
	}
	return nil
}

// EmailVerificationRepository implements email verification operations
type EmailVerificationRepository struct {
	db *gorm.DB
}

// NewEmailVerificationRepository creates a new email verification repository
func NewEmailVerificationRepository(db *gorm.DB) *EmailVerificationRepository {
	return &EmailVerificationRepository{db: db}
}

// Create creates a new email verification
func (r *EmailVerificationRepository) Create(ctx context.Context, userID uuid.UUID, token string) error {
	m := &models.EmailVerification{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(24 * time.Hour),
		CreatedAt: time.Now(),
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByToken gets the user behind an unexpired, unused verification token
func (r *EmailVerificationRepository) GetByToken(ctx context.Context, token string) (*entities.User, error) {
	var userModel models.User

	err := GetDB(ctx, r.db).WithContext(ctx).
		Table("users").
		Joins("JOIN email_verifications ev ON ev.user_id = users.id").
		Where("ev.token = ? AND ev.expires_at > ? AND ev.verified_at IS NULL AND ev.deleted_at IS NULL", token, time.Now()).
		First(&userModel).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	return userToEntity(&userModel), nil
}

// MarkVerified marks an email verification token as used
func (r *EmailVerificationRepository) MarkVerified(ctx context.Context, token string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.EmailVerification{}).
		Where("token = ? AND verified_at IS NULL", token).
		Update("verified_at", time.Now())

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
