package models

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	TeamID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title        string     `gorm:"type:varchar(200);not null"`
	Description  string     `gorm:"type:text"`
	BoardColumn  string     `gorm:"type:varchar(50);not null;default:'To Do'"`
	AssigneeID   *uuid.UUID `gorm:"type:uuid"`
	DisplayOrder int        `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
