package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"collabhub.backend/internal/domain/entities"
	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/domain/repositories"
	"collabhub.backend/pkg/utils"
)

// TeamView is a team with member display identities joined at read time
type TeamView struct {
	entities.Team
	MemberData []entities.UserSummary `json:"memberData"`
}

// TeamUsecase owns team formation and membership
type TeamUsecase struct {
	teamRepo    repositories.TeamRepository
	projectRepo repositories.ProjectRepository
	userRepo    repositories.UserRepository
	uow         repositories.UnitOfWork
}

// NewTeamUsecase creates a new team usecase
func NewTeamUsecase(
	teamRepo repositories.TeamRepository,
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
) *TeamUsecase {
	return &TeamUsecase{
		teamRepo:    teamRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		uow:         uow,
	}
}

// FormTeam creates a team on a project and moves the project to
// in-progress. A project holds at most one team, so forming a second
// fails with a conflict. The founder is always the first member.
func (u *TeamUsecase) FormTeam(ctx context.Context, founderID uuid.UUID, input *entities.FormTeamInput) (*entities.Team, error) {
	projectID, err := uuid.Parse(input.ProjectID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid project id")
	}

	members := []uuid.UUID{founderID}
	seen := map[uuid.UUID]bool{founderID: true}
	for _, raw := range input.MemberIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid member id: " + raw)
		}
		if !seen[id] {
			seen[id] = true
			members = append(members, id)
		}
	}

	team := &entities.Team{
		ID:        utils.GenerateUUIDv7(),
		Name:      input.Name,
		ProjectID: projectID,
		Members:   members,
		CreatedAt: time.Now(),
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.projectRepo.BindTeam(txCtx, projectID, team.ID); err != nil {
			return err
		}
		return u.teamRepo.Create(txCtx, team)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("project not found")
		}
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("project already has a team")
		}
		return nil, err
	}

	return team, nil
}

// GetTeam gets a team with member display identities
func (u *TeamUsecase) GetTeam(ctx context.Context, id uuid.UUID) (*TeamView, error) {
	team, err := u.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	summaries, err := u.userRepo.GetSummaries(ctx, team.Members)
	if err != nil {
		return nil, err
	}

	view := &TeamView{Team: *team, MemberData: make([]entities.UserSummary, 0, len(team.Members))}
	for _, memberID := range team.Members {
		if s, ok := summaries[memberID]; ok {
			view.MemberData = append(view.MemberData, s)
		}
	}
	return view, nil
}

// AddMember adds a user to the team. Only the founder or an admin may
// change membership.
func (u *TeamUsecase) AddMember(ctx context.Context, actor *entities.User, teamID, userID uuid.UUID) error {
	team, err := u.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return err
	}
	if err := u.authorizeMembershipChange(actor, team); err != nil {
		return err
	}

	if err := u.teamRepo.AddMember(ctx, teamID, userID); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return domainerrors.Conflict("user is already a team member")
		}
		return err
	}
	return nil
}

// RemoveMember removes a user from the team. The founder cannot be
// removed, which keeps every bound team at one member minimum.
func (u *TeamUsecase) RemoveMember(ctx context.Context, actor *entities.User, teamID, userID uuid.UUID) error {
	team, err := u.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return err
	}
	if err := u.authorizeMembershipChange(actor, team); err != nil {
		return err
	}
	if len(team.Members) > 0 && team.Members[0] == userID {
		return domainerrors.BadRequest("the team founder cannot be removed")
	}

	if err := u.teamRepo.RemoveMember(ctx, teamID, userID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("user is not a team member")
		}
		return err
	}
	return nil
}

// authorizeMembershipChange enforces the founder-or-admin rule. The
// founder is the first member recorded at formation.
func (u *TeamUsecase) authorizeMembershipChange(actor *entities.User, team *entities.Team) error {
	if actor.IsAdmin() {
		return nil
	}
	if len(team.Members) > 0 && team.Members[0] == actor.ID {
		return nil
	}
	return domainerrors.Forbidden("only the team founder may change membership")
}
