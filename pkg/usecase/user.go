package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/domain/interfaces"
	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/model/auth"
	"github.com/lensworks/crewdesk/pkg/domain/types"
)

type UserUseCase struct {
	repo interfaces.Repository
}

func NewUserUseCase(repo interfaces.Repository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (uc *UserUseCase) Get(ctx context.Context, id model.UserID) (*model.User, error) {
	return uc.repo.User().Get(ctx, id)
}

// ProfilePatch carries the profile fields a user may change about
// themselves. Nil fields are left untouched.
type ProfilePatch struct {
	Name        *string
	Designation *string
	AvatarURL   *string
}

// UpdateProfile applies a profile patch to the session user. Role changes
// go through PromoteRole, never through here.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, sess *auth.Session, patch *ProfilePatch) (*model.User, error) {
	user, err := uc.repo.User().Get(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Designation != nil {
		user.Designation = *patch.Designation
	}
	if patch.AvatarURL != nil {
		user.AvatarURL = *patch.AvatarURL
	}

	return uc.repo.User().Update(ctx, user)
}

// PromoteRole changes a user's role. Executives only.
func (uc *UserUseCase) PromoteRole(ctx context.Context, sess *auth.Session, id model.UserID, role types.Role) (*model.User, error) {
	if sess.Role != types.RoleExecutive {
		return nil, goerr.Wrap(ErrForbidden, "only executives can change roles")
	}
	if !role.IsValid() {
		return nil, goerr.Wrap(ErrValidation, "invalid role", goerr.V("role", role))
	}

	user, err := uc.repo.User().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = role
	return uc.repo.User().Update(ctx, user)
}

// ListByRole retrieves the users holding a role, used for the executive
// team view and notification fan-out.
func (uc *UserUseCase) ListByRole(ctx context.Context, role types.Role) ([]*model.User, error) {
	return uc.repo.User().ListByRole(ctx, role)
}
