package entities

import (
	"time"

	"github.com/google/uuid"
)

// Team is the accepted group of collaborators bound to exactly one project
type Team struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	ProjectID uuid.UUID   `json:"project"`
	Members   []uuid.UUID `json:"members"`
	CreatedAt time.Time   `json:"createdAt"`
}

// HasMember reports whether the user is on the team.
func (t *Team) HasMember(userID uuid.UUID) bool {
	for _, m := range t.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// FormTeamInput represents input for forming a team on a project
type FormTeamInput struct {
	Name      string   `json:"name" binding:"required"`
	ProjectID string   `json:"projectId" binding:"required"`
	MemberIDs []string `json:"members"`
}
