package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ProjectStatus represents the project lifecycle state
type ProjectStatus string

const (
	ProjectStatusOpen       ProjectStatus = "open"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// Role is an open position inside a project. Roles live for the lifetime
// of their project and hold a duplicate-free applicant set.
type Role struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Applicants  []uuid.UUID `json:"applicants"`
}

// Project represents a posted project with its open roles
type Project struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	CreatorID   uuid.UUID     `json:"creator"`
	Roles       []Role        `json:"requiredRoles"`
	TechStack   []string      `json:"techStack"`
	Status      ProjectStatus `json:"status"`
	TeamID      null.String   `json:"team,omitempty"` // set when a team is bound
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// FindRole returns the role with the given ID, or nil.
func (p *Project) FindRole(roleID uuid.UUID) *Role {
	for i := range p.Roles {
		if p.Roles[i].ID == roleID {
			return &p.Roles[i]
		}
	}
	return nil
}

// Application records one user applying to one role. The (role, applicant)
// pair is unique; the cover letter is kept with the application.
type Application struct {
	ID          uuid.UUID `json:"id"`
	RoleID      uuid.UUID `json:"roleId"`
	ApplicantID uuid.UUID `json:"applicant"`
	CoverLetter string    `json:"coverLetter"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RoleInput describes a role to open on a new project
type RoleInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Roles       []RoleInput `json:"requiredRoles"`
	TechStack   []string    `json:"techStack"`
}

// ApplyInput represents input for applying to a role
type ApplyInput struct {
	RoleID      string `json:"roleId" binding:"required"`
	CoverLetter string `json:"coverLetter"`
}

// ProjectFilter narrows project listings; zero values mean "no filter".
// All provided filters are combined with logical AND.
type ProjectFilter struct {
	TextQuery string
	TechTag   string
	Status    ProjectStatus
}
