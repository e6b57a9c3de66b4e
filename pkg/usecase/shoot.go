package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/domain/interfaces"
	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/model/auth"
	"github.com/lensworks/crewdesk/pkg/domain/types"
)

type ShootUseCase struct {
	repo interfaces.Repository
}

func NewShootUseCase(repo interfaces.Repository) *ShootUseCase {
	return &ShootUseCase{repo: repo}
}

// CreateShootInput carries the caller-supplied shoot fields.
type CreateShootInput struct {
	ClientID  model.ClientID
	Title     string
	Date      time.Time
	Location  string
	Details   string
	Equipment []string
	Notes     string
}

func (uc *ShootUseCase) Create(ctx context.Context, sess *auth.Session, input *CreateShootInput) (*model.Shoot, error) {
	if input.Title == "" {
		return nil, goerr.Wrap(ErrValidation, "shoot title is required")
	}
	if input.Date.IsZero() {
		return nil, goerr.Wrap(ErrValidation, "shoot date is required")
	}
	if input.ClientID == "" {
		return nil, goerr.Wrap(ErrValidation, "shoot clientId is required")
	}

	// the client must exist before scheduling against it
	if _, err := uc.repo.Client().Get(ctx, input.ClientID); err != nil {
		return nil, goerr.Wrap(err, "failed to resolve shoot client", goerr.V("clientId", input.ClientID))
	}

	shoot := &model.Shoot{
		ClientID:  input.ClientID,
		Title:     input.Title,
		Date:      input.Date,
		Location:  input.Location,
		Details:   input.Details,
		Equipment: input.Equipment,
		Notes:     input.Notes,
		CreatedBy: sess.UserID,
	}

	created, err := uc.repo.Shoot().Create(ctx, shoot)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create shoot")
	}
	return created, nil
}

func (uc *ShootUseCase) Get(ctx context.Context, id model.ShootID) (*model.Shoot, error) {
	return uc.repo.Shoot().Get(ctx, id)
}

// ListByClient returns a client's shoots, latest date first.
func (uc *ShootUseCase) ListByClient(ctx context.Context, clientID model.ClientID) ([]*model.Shoot, error) {
	return uc.repo.Shoot().ListByClient(ctx, clientID)
}

// ListUpcoming returns shoots from now onward, earliest first.
func (uc *ShootUseCase) ListUpcoming(ctx context.Context) ([]*model.Shoot, error) {
	return uc.repo.Shoot().ListUpcoming(ctx, time.Now().UTC())
}

// UpdateStatus moves a shoot through its lifecycle.
func (uc *ShootUseCase) UpdateStatus(ctx context.Context, id model.ShootID, status types.ShootStatus) (*model.Shoot, error) {
	if !status.IsValid() {
		return nil, goerr.Wrap(ErrValidation, "invalid shoot status", goerr.V("status", status))
	}

	shoot, err := uc.repo.Shoot().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	shoot.Status = status
	return uc.repo.Shoot().Update(ctx, shoot)
}

// Assign appends a crew assignment to the shoot. Assignments are
// append-only; reassignment means a new record.
func (uc *ShootUseCase) Assign(ctx context.Context, shootID model.ShootID, userID model.UserID, role string) (*model.ShootAssignment, error) {
	if userID == "" {
		return nil, goerr.Wrap(ErrValidation, "assignment userId is required")
	}
	if role == "" {
		return nil, goerr.Wrap(ErrValidation, "assignment role is required")
	}

	assignment, err := uc.repo.Shoot().AddAssignment(ctx, &model.ShootAssignment{
		ShootID: shootID,
		UserID:  userID,
		Role:    role,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to add shoot assignment", goerr.V("shootID", shootID))
	}
	return assignment, nil
}

func (uc *ShootUseCase) ListAssignments(ctx context.Context, shootID model.ShootID) ([]*model.ShootAssignment, error) {
	return uc.repo.Shoot().ListAssignments(ctx, shootID)
}
