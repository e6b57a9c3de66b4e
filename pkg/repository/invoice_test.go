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

func runInvoiceRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	now := time.Now().UTC()

	t.Run("Create defaults status to draft", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Invoice().Create(ctx, &model.Invoice{
			InvoiceNumber: "INV-001",
			ClientID:      "client-1",
			IssuedAt:      now,
			DueDate:       now.Add(14 * 24 * time.Hour),
		})
		gt.NoError(t, err).Required()

		gt.String(t, string(created.ID)).NotEqual("")
		gt.Value(t, created.Status).Equal(types.InvoiceStatusDraft)
		gt.Bool(t, created.CreatedAt.IsZero()).False()
	})

	t.Run("ListUnpaid returns sent and overdue by due date", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Invoice().Create(ctx, &model.Invoice{
			InvoiceNumber: "INV-001", ClientID: "client-1",
			Status:  types.InvoiceStatusSent,
			DueDate: now.Add(7 * 24 * time.Hour),
		})
		gt.NoError(t, err).Required()
		overdue, err := repo.Invoice().Create(ctx, &model.Invoice{
			InvoiceNumber: "INV-002", ClientID: "client-1",
			Status:  types.InvoiceStatusOverdue,
			DueDate: now.Add(-7 * 24 * time.Hour),
		})
		gt.NoError(t, err).Required()
		_, err = repo.Invoice().Create(ctx, &model.Invoice{
			InvoiceNumber: "INV-003", ClientID: "client-1",
			Status:  types.InvoiceStatusPaid,
			DueDate: now.Add(-30 * 24 * time.Hour),
			PaidAt:  now.Add(-20 * 24 * time.Hour),
		})
		gt.NoError(t, err).Required()

		unpaid, err := repo.Invoice().ListUnpaid(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, unpaid).Length(2)
		gt.Value(t, unpaid[0].ID).Equal(overdue.ID)
	})

	t.Run("ListByClient returns issue date descending", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Invoice().Create(ctx, &model.Invoice{
			InvoiceNumber: "INV-001", ClientID: "client-1",
			IssuedAt: now.Add(-60 * 24 * time.Hour),
			DueDate:  now,
		})
		gt.NoError(t, err).Required()
		latest, err := repo.Invoice().Create(ctx, &model.Invoice{
			InvoiceNumber: "INV-002", ClientID: "client-1",
			IssuedAt: now.Add(-10 * 24 * time.Hour),
			DueDate:  now,
		})
		gt.NoError(t, err).Required()
		_, err = repo.Invoice().Create(ctx, &model.Invoice{
			InvoiceNumber: "INV-003", ClientID: "client-2",
			IssuedAt: now,
			DueDate:  now,
		})
		gt.NoError(t, err).Required()

		invoices, err := repo.Invoice().ListByClient(ctx, "client-1")
		gt.NoError(t, err).Required()
		gt.Array(t, invoices).Length(2)
		gt.Value(t, invoices[0].ID).Equal(latest.ID)
	})

	t.Run("ListPaidBetween uses half-open interval on paid_at", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		inside, err := repo.Invoice().Create(ctx, &model.Invoice{
			InvoiceNumber: "INV-001", ClientID: "client-1",
			Status: types.InvoiceStatusPaid,
			PaidAt: now.Add(-45 * 24 * time.Hour),
		})
		gt.NoError(t, err).Required()
		_, err = repo.Invoice().Create(ctx, &model.Invoice{
			InvoiceNumber: "INV-002", ClientID: "client-1",
			Status: types.InvoiceStatusPaid,
			PaidAt: now.Add(-100 * 24 * time.Hour),
		})
		gt.NoError(t, err).Required()
		_, err = repo.Invoice().Create(ctx, &model.Invoice{
			InvoiceNumber: "INV-003", ClientID: "client-1",
			Status: types.InvoiceStatusSent,
		})
		gt.NoError(t, err).Required()

		paid, err := repo.Invoice().ListPaidBetween(ctx,
			now.Add(-50*24*time.Hour), now)
		gt.NoError(t, err).Required()
		gt.Array(t, paid).Length(1)
		gt.Value(t, paid[0].ID).Equal(inside.ID)
	})

	t.Run("Update marks invoice paid", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Invoice().Create(ctx, &model.Invoice{
			InvoiceNumber: "INV-001", ClientID: "client-1",
			Status:  types.InvoiceStatusSent,
			DueDate: now.Add(14 * 24 * time.Hour),
		})
		gt.NoError(t, err).Required()

		created.Status = types.InvoiceStatusPaid
		created.PaidAt = now
		created.PaymentMethod = "bank_transfer"
		updated, err := repo.Invoice().Update(ctx, created)
		gt.NoError(t, err).Required()

		gt.Value(t, updated.Status).Equal(types.InvoiceStatusPaid)
		gt.Value(t, updated.PaymentMethod).Equal("bank_transfer")
	})
}

func TestMemoryInvoiceRepository(t *testing.T) {
	runInvoiceRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreInvoiceRepository(t *testing.T) {
	runInvoiceRepositoryTest(t, newFirestoreTestRepository)
}
