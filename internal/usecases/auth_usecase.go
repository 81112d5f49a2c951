package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"collabhub.backend/internal/domain/entities"
	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/domain/repositories"
	"collabhub.backend/pkg/crypto"
	"collabhub.backend/pkg/jwt"
	"collabhub.backend/pkg/logger"
	"collabhub.backend/pkg/redis"
	"collabhub.backend/pkg/utils"
)

// VerificationMailer delivers the email-verification link. Delivery is a
// best-effort side effect of registration.
type VerificationMailer interface {
	SendVerification(ctx context.Context, to, token string) error
}

// SessionWriter stores server-side sessions for logins that opt out of
// client-held tokens.
type SessionWriter interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthUsecase handles registration, login, and profile lifecycle
type AuthUsecase struct {
	userRepo       repositories.UserRepository
	emailVerifRepo repositories.EmailVerificationRepository
	skillRepo      repositories.SkillRepository
	uow            repositories.UnitOfWork
	jwtService     *jwt.JWTService
	mailer         VerificationMailer
	sessions       SessionWriter
	sessionTTL     time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	emailVerifRepo repositories.EmailVerificationRepository,
	skillRepo repositories.SkillRepository,
	uow repositories.UnitOfWork,
	jwtService *jwt.JWTService,
	mailer VerificationMailer,
	sessions SessionWriter,
	sessionTTL time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:       userRepo,
		emailVerifRepo: emailVerifRepo,
		skillRepo:      skillRepo,
		uow:            uow,
		jwtService:     jwtService,
		mailer:         mailer,
		sessions:       sessions,
		sessionTTL:     sessionTTL,
	}
}

// Register creates a user and issues an email verification token. The
// verification email itself is fire-and-forget.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.Conflict("email already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		ID:             utils.GenerateUUIDv7(),
		Name:           input.Name,
		Email:          input.Email,
		PasswordHash:   passwordHash,
		PortfolioLinks: []string{},
		Role:           entities.UserRoleUser,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	token, err := crypto.GenerateVerificationToken()
	if err != nil {
		return nil, err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		return u.emailVerifRepo.Create(txCtx, user.ID, token)
	})
	if err != nil {
		return nil, err
	}

	if u.mailer != nil {
		if err := u.mailer.SendVerification(ctx, user.Email, token); err != nil {
			logger.Warn(ctx, "verification email failed",
				zap.String("email", user.Email), zap.Error(err))
		}
	}

	return user, nil
}

// Login authenticates a user. With UseSession set, tokens live server-side
// and only an opaque session ID is handed back.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, domainerrors.ErrEmailNotVerified
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	if input.UseSession && u.sessions != nil {
		sessionID, err := crypto.GenerateRandomToken(32)
		if err != nil {
			return nil, err
		}
		data := &redis.SessionData{
			AccessToken:  tokenPair.AccessToken,
			RefreshToken: tokenPair.RefreshToken,
		}
		if err := u.sessions.CreateSession(ctx, sessionID, data, u.sessionTTL); err != nil {
			return nil, err
		}
		return &entities.AuthResponse{SessionID: sessionID, User: user}, nil
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// Logout drops a server-side session, if the login created one.
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" || u.sessions == nil {
		return nil
	}
	return u.sessions.DeleteSession(ctx, sessionID)
}

// VerifyEmail redeems a verification token and flips the user's flag
func (u *AuthUsecase) VerifyEmail(ctx context.Context, token string) error {
	user, err := u.emailVerifRepo.GetByToken(ctx, token)
	if err != nil {
		return err
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.emailVerifRepo.MarkVerified(txCtx, token); err != nil {
			return err
		}
		return u.userRepo.MarkEmailVerified(txCtx, user.ID)
	})
}

// Onboard records the one-time profile setup: bio, starting skill names,
// and portfolio links.
func (u *AuthUsecase) Onboard(ctx context.Context, userID uuid.UUID, input *entities.OnboardInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Bio = input.Bio
	if input.PortfolioLinks != nil {
		user.PortfolioLinks = input.PortfolioLinks
	}
	user.Onboarded = true

	skills := make([]entities.Skill, 0, len(input.Skills))
	for _, name := range input.Skills {
		if name == "" {
			continue
		}
		skills = append(skills, entities.Skill{Name: name, Method: entities.VerificationNone})
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Update(txCtx, user); err != nil {
			return err
		}
		return u.skillRepo.ReplaceAll(txCtx, userID, skills)
	})
	if err != nil {
		return nil, err
	}

	user.Skills = skills
	return user, nil
}

// UpdateProfile applies a partial profile edit
func (u *AuthUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.PortfolioLinks != nil {
		user.PortfolioLinks = *input.PortfolioLinks
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
