package models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	Title       string     `gorm:"type:varchar(200);not null"`
	Description string     `gorm:"type:text;not null"`
	CreatorID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	TechStack   string     `gorm:"type:text"` // JSON-encoded list of tags
	Status      string     `gorm:"type:varchar(50);not null;default:'open';index"`
	TeamID      *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(120);not null"`
	Description string    `gorm:"type:text;not null"`
	Position    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
}

type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	RoleID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_role_user"`
	ApplicantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_role_user"`
	CoverLetter string    `gorm:"type:text"`
	CreatedAt   time.Time
}
