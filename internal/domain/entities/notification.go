package entities

import (
	"time"

	"github.com/google/uuid"
)

// Notification types emitted by workflows
const (
	NotificationTypeApplication = "application"
)

// Notification is an append-only per-user event record; only the read
// flag ever transitions, and only from false to true.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Link      string    `json:"link"`
	Read      bool      `json:"read"`
	Timestamp time.Time `json:"timestamp"`
}
