package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/domain/interfaces"
	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/types"
	"github.com/lensworks/crewdesk/pkg/service/slack"
	"github.com/lensworks/crewdesk/pkg/utils/async"
	"github.com/lensworks/crewdesk/pkg/utils/errutil"
)

type LeadUseCase struct {
	repo         interfaces.Repository
	slackService slack.Service
}

func NewLeadUseCase(repo interfaces.Repository, slackService slack.Service) *LeadUseCase {
	return &LeadUseCase{
		repo:         repo,
		slackService: slackService,
	}
}

// CreateLeadInput carries the caller-supplied lead fields.
type CreateLeadInput struct {
	ClientName   string
	Company      string
	ContactEmail string
	ContactPhone string
	Source       string
	Demands      string
	Budget       float64
	Notes        string
}

// Create stores a new lead and fans out a notification to every executive.
// Notification delivery is best-effort and never fails the create.
func (uc *LeadUseCase) Create(ctx context.Context, input *CreateLeadInput) (*model.Lead, error) {
	if input.ClientName == "" {
		return nil, goerr.Wrap(ErrValidation, "lead client_name is required")
	}
	if input.ContactEmail == "" {
		return nil, goerr.Wrap(ErrValidation, "lead contact_email is required")
	}

	lead := &model.Lead{
		ClientName:   input.ClientName,
		Company:      input.Company,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		Source:       input.Source,
		Demands:      input.Demands,
		Budget:       input.Budget,
		Notes:        input.Notes,
	}

	created, err := uc.repo.Lead().Create(ctx, lead)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create lead")
	}

	uc.notifyExecutives(ctx, created)

	return created, nil
}

func (uc *LeadUseCase) notifyExecutives(ctx context.Context, lead *model.Lead) {
	executives, err := uc.repo.User().ListByRole(ctx, types.RoleExecutive)
	if err != nil {
		errutil.Handle(ctx, err, "failed to list executives for lead notification")
		return
	}

	for _, exec := range executives {
		_, err := uc.repo.Notification().Create(ctx, &model.Notification{
			UserID:    exec.ID,
			Type:      types.NotificationTypeLead,
			Title:     "New lead received",
			Message:   fmt.Sprintf("%s submitted a new inquiry", lead.ClientName),
			ActionURL: "/dashboard/executive/leads",
			Metadata:  map[string]any{"leadId": lead.ID.String()},
		})
		if err != nil {
			errutil.Handle(ctx, err, "failed to create lead notification")
		}
	}

	if uc.slackService != nil {
		async.Dispatch(ctx, func(ctx context.Context) error {
			return errutil.Handle(ctx, uc.slackService.AnnounceLead(ctx, lead), "failed to announce lead to Slack")
		})
	}
}

func (uc *LeadUseCase) Get(ctx context.Context, id model.LeadID) (*model.Lead, error) {
	return uc.repo.Lead().Get(ctx, id)
}

// List returns all leads, newest first. newOnly restricts to the "new"
// pipeline stage.
func (uc *LeadUseCase) List(ctx context.Context, newOnly bool) ([]*model.Lead, error) {
	if newOnly {
		return uc.repo.Lead().ListByStatus(ctx, types.LeadStatusNew)
	}
	return uc.repo.Lead().List(ctx)
}

func (uc *LeadUseCase) ListByStatus(ctx context.Context, status types.LeadStatus) ([]*model.Lead, error) {
	if !status.IsValid() {
		return nil, goerr.Wrap(ErrValidation, "invalid lead status", goerr.V("status", status))
	}
	return uc.repo.Lead().ListByStatus(ctx, status)
}

// UpdateStatus moves a lead through the pipeline. A reason is recorded when
// given (typically on lost leads).
func (uc *LeadUseCase) UpdateStatus(ctx context.Context, id model.LeadID, status types.LeadStatus, reason string, handledBy model.UserID) (*model.Lead, error) {
	if !status.IsValid() {
		return nil, goerr.Wrap(ErrValidation, "invalid lead status", goerr.V("status", status))
	}

	lead, err := uc.repo.Lead().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	lead.Status = status
	if reason != "" {
		lead.Reason = reason
	}
	if handledBy != "" {
		lead.HandledBy = handledBy
	}

	updated, err := uc.repo.Lead().Update(ctx, lead)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update lead status", goerr.V("id", id))
	}
	return updated, nil
}
