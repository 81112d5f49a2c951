package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents user privilege levels
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// VerificationMethod describes how a skill was verified
type VerificationMethod string

const (
	VerificationNone         VerificationMethod = "none"
	VerificationPortfolio    VerificationMethod = "portfolio"
	VerificationQuiz         VerificationMethod = "quiz"
	VerificationExternalSync VerificationMethod = "external-sync"
)

// Skill is a named skill on a user's ledger. A user holds at most one
// skill per name; verifying methods overwrite method and badge in place.
type Skill struct {
	Name     string             `json:"name"`
	Verified bool               `json:"verified"`
	Method   VerificationMethod `json:"method"`
	Badge    string             `json:"badge"`
}

// User represents a platform user
type User struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	Image          string     `json:"image"`
	Bio            string     `json:"bio"`
	Skills         []Skill    `json:"skills"`
	PortfolioLinks []string   `json:"portfolioLinks"`
	Role           UserRole   `json:"role"`
	EmailVerified  bool       `json:"verified"`
	Onboarded      bool       `json:"onboarded"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	DeletedAt      *time.Time `json:"-"`
}

// IsAdmin reports whether the user holds the admin privilege level.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// UserSummary is the public identity snapshot attached to reads of other
// aggregates (message author, project creator, team member).
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image string    `json:"image"`
}

// Summary returns the public identity snapshot for the user.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Image: u.Image}
}

// CreateUserInput represents input for registration
type CreateUserInput struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"` // If true, store tokens in Redis and return SessionID
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	SessionID    string `json:"sessionId,omitempty"`
	User         *User  `json:"user"`
}

// OnboardInput represents the one-time onboarding payload
type OnboardInput struct {
	Bio            string   `json:"bio"`
	Skills         []string `json:"skills"`
	PortfolioLinks []string `json:"portfolioLinks"`
}

// UpdateProfileInput represents a partial profile edit; nil fields are untouched
type UpdateProfileInput struct {
	Bio            *string   `json:"bio"`
	PortfolioLinks *[]string `json:"portfolioLinks"`
}
