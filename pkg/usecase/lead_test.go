package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/types"
	"github.com/lensworks/crewdesk/pkg/repository/memory"
	"github.com/lensworks/crewdesk/pkg/usecase"
)

func TestCreateLead(t *testing.T) {
	t.Run("missing client name fails", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		_, err := uc.Lead.Create(ctx, &usecase.CreateLeadInput{
			ContactEmail: "dana@example.com",
		})
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()
	})

	t.Run("missing contact email fails", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		_, err := uc.Lead.Create(ctx, &usecase.CreateLeadInput{
			ClientName: "Dana",
		})
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()
	})

	t.Run("notifies every executive, no one else", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()

		for _, u := range []*model.User{
			{ID: "uid-bob", Name: "Bob", Email: "bob@example.com", Role: types.RoleExecutive},
			{ID: "uid-carol", Name: "Carol", Email: "carol@example.com", Role: types.RoleExecutive},
			{ID: "uid-alice", Name: "Alice", Email: "alice@example.com", Role: types.RoleEmployee},
		} {
			_, err := repo.User().Create(ctx, u)
			gt.NoError(t, err).Required()
		}

		created, err := uc.Lead.Create(ctx, &usecase.CreateLeadInput{
			ClientName:   "Dana",
			ContactEmail: "dana@example.com",
			Budget:       5000,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.Status).Equal(types.LeadStatusNew)

		for _, execID := range []model.UserID{"uid-bob", "uid-carol"} {
			feed, err := repo.Notification().ListByUser(ctx, execID, true, 50)
			gt.NoError(t, err).Required()
			gt.Array(t, feed).Length(1)
			gt.Value(t, feed[0].Type).Equal(types.NotificationTypeLead)
			gt.Value(t, feed[0].Metadata["leadId"]).Equal(created.ID.String())
		}

		employeeFeed, err := repo.Notification().ListByUser(ctx, "uid-alice", true, 50)
		gt.NoError(t, err).Required()
		gt.Array(t, employeeFeed).Length(0)
	})
}

func TestUpdateLeadStatus(t *testing.T) {
	t.Run("records rejection reason on lost leads", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		created, err := uc.Lead.Create(ctx, &usecase.CreateLeadInput{
			ClientName:   "Dana",
			ContactEmail: "dana@example.com",
		})
		gt.NoError(t, err).Required()

		updated, err := uc.Lead.UpdateStatus(ctx, created.ID, types.LeadStatusLost, "budget too small", "uid-bob")
		gt.NoError(t, err).Required()

		gt.Value(t, updated.Status).Equal(types.LeadStatusLost)
		gt.Value(t, updated.Reason).Equal("budget too small")
		gt.Value(t, updated.HandledBy).Equal(model.UserID("uid-bob"))
	})

	t.Run("rejects unknown pipeline stage", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		created, err := uc.Lead.Create(ctx, &usecase.CreateLeadInput{
			ClientName:   "Dana",
			ContactEmail: "dana@example.com",
		})
		gt.NoError(t, err).Required()

		_, err = uc.Lead.UpdateStatus(ctx, created.ID, types.LeadStatus("ghosted"), "", "")
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()
	})
}

func TestListLeads(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)
	ctx := context.Background()

	_, err := uc.Lead.Create(ctx, &usecase.CreateLeadInput{
		ClientName: "Dana", ContactEmail: "dana@example.com",
	})
	gt.NoError(t, err).Required()

	contacted, err := uc.Lead.Create(ctx, &usecase.CreateLeadInput{
		ClientName: "Eve", ContactEmail: "eve@example.com",
	})
	gt.NoError(t, err).Required()
	_, err = uc.Lead.UpdateStatus(ctx, contacted.ID, types.LeadStatusContacted, "", "")
	gt.NoError(t, err).Required()

	all, err := uc.Lead.List(ctx, false)
	gt.NoError(t, err).Required()
	gt.Array(t, all).Length(2)

	newOnly, err := uc.Lead.List(ctx, true)
	gt.NoError(t, err).Required()
	gt.Array(t, newOnly).Length(1)
	gt.Value(t, newOnly[0].ClientName).Equal("Dana")
}
