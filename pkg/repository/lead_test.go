package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/lensworks/crewdesk/pkg/domain/interfaces"
	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/types"
	"github.com/lensworks/crewdesk/pkg/repository/memory"
)

func runLeadRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create defaults status to new", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Lead().Create(ctx, &model.Lead{
			ClientName:   "Dana",
			ContactEmail: "dana@example.com",
		})
		gt.NoError(t, err).Required()

		gt.String(t, string(created.ID)).NotEqual("")
		gt.Value(t, created.Status).Equal(types.LeadStatusNew)
		gt.Bool(t, created.CreatedAt.IsZero()).False()
	})

	t.Run("List returns newest first", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Lead().Create(ctx, &model.Lead{
			ClientName: "Dana", ContactEmail: "dana@example.com",
		})
		gt.NoError(t, err).Required()
		time.Sleep(5 * time.Millisecond)

		newer, err := repo.Lead().Create(ctx, &model.Lead{
			ClientName: "Eve", ContactEmail: "eve@example.com",
		})
		gt.NoError(t, err).Required()

		leads, err := repo.Lead().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, leads).Length(2)
		gt.Value(t, leads[0].ID).Equal(newer.ID)
	})

	t.Run("ListByStatus filters by pipeline stage", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Lead().Create(ctx, &model.Lead{
			ClientName: "Dana", ContactEmail: "dana@example.com",
		})
		gt.NoError(t, err).Required()
		qualified, err := repo.Lead().Create(ctx, &model.Lead{
			ClientName: "Eve", ContactEmail: "eve@example.com",
			Status: types.LeadStatusQualified,
		})
		gt.NoError(t, err).Required()

		leads, err := repo.Lead().ListByStatus(ctx, types.LeadStatusQualified)
		gt.NoError(t, err).Required()
		gt.Array(t, leads).Length(1)
		gt.Value(t, leads[0].ID).Equal(qualified.ID)
	})

	t.Run("Update moves lead through pipeline", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Lead().Create(ctx, &model.Lead{
			ClientName: "Dana", ContactEmail: "dana@example.com",
		})
		gt.NoError(t, err).Required()

		created.Status = types.LeadStatusWon
		created.HandledBy = "uid-bob"
		updated, err := repo.Lead().Update(ctx, created)
		gt.NoError(t, err).Required()

		gt.Value(t, updated.Status).Equal(types.LeadStatusWon)
		gt.Value(t, updated.HandledBy).Equal(model.UserID("uid-bob"))
	})
}

func TestMemoryLeadRepository(t *testing.T) {
	runLeadRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreLeadRepository(t *testing.T) {
	runLeadRepositoryTest(t, newFirestoreTestRepository)
}
