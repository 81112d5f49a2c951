package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	Image          string    `gorm:"type:text"`
	Bio            string    `gorm:"type:text"`
	PortfolioLinks string    `gorm:"type:text"` // JSON-encoded list of URLs
	Role           string    `gorm:"type:varchar(50);not null;default:'user'"`
	EmailVerified  bool      `gorm:"not null;default:false"`
	Onboarded      bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

type Skill struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_skills_user_name"`
	Name     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_skills_user_name"`
	Verified bool      `gorm:"not null;default:false"`
	Method   string    `gorm:"type:varchar(50);not null;default:'none'"`
	Badge    string    `gorm:"type:varchar(100)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type EmailVerification struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Token      string    `gorm:"type:varchar(255);not null;index"`
	ExpiresAt  time.Time `gorm:"not null"`
	VerifiedAt *time.Time
	CreatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`

	// Associations
	User User `gorm:"foreignKey:UserID"`
}
