package models

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(120);not null"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
}

type TeamMember struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	TeamID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_team_members_team_user"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_team_members_team_user"`
	Position int       `gorm:"not null;default:0"`

	CreatedAt time.Time
}
