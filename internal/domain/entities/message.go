package entities

import (
	"time"

	"github.com/google/uuid"
)

// DefaultChannel is the channel messages land on when none is given
const DefaultChannel = "general"

// Message is one entry in a team channel's append-only log
type Message struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team"`
	AuthorID  uuid.UUID `json:"author"`
	Channel   string    `json:"channel"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// MessageView is a message augmented with the author's current display
// identity. The join happens at read time, so profile edits change how
// old messages render.
type MessageView struct {
	Message
	Author UserSummary `json:"authorData"`
}

// PostMessageInput represents input for posting a message
type PostMessageInput struct {
	Content string `json:"content"`
	Channel string `json:"channel"`
}
