package models

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	TeamID    uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_team_channel"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"`
	Channel   string    `gorm:"type:varchar(100);not null;default:'general';index:idx_messages_team_channel"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Type      string    `gorm:"type:varchar(50);not null"`
	Content   string    `gorm:"type:text;not null"`
	Link      string    `gorm:"type:text"`
	Read      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}
