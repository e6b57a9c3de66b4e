package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/domain/interfaces"
	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/types"
)

type InvoiceUseCase struct {
	repo interfaces.Repository
}

func NewInvoiceUseCase(repo interfaces.Repository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

// CreateInvoiceInput carries the caller-supplied invoice fields. Item
// amounts and totals are always recomputed server-side.
type CreateInvoiceInput struct {
	InvoiceNumber string
	ClientID      model.ClientID
	Tax           float64
	Items         []model.InvoiceItem
	IssuedAt      time.Time
	DueDate       time.Time
	Notes         string
}

func (uc *InvoiceUseCase) Create(ctx context.Context, input *CreateInvoiceInput) (*model.Invoice, error) {
	if input.ClientID == "" {
		return nil, goerr.Wrap(ErrValidation, "invoice clientId is required")
	}
	if len(input.Items) == 0 {
		return nil, goerr.Wrap(ErrValidation, "invoice needs at least one item")
	}
	for i, item := range input.Items {
		if item.Description == "" {
			return nil, goerr.Wrap(ErrValidation, "invoice item description is required", goerr.V("index", i))
		}
		if item.Quantity <= 0 || item.Rate < 0 {
			return nil, goerr.Wrap(ErrValidation, "invoice item quantity/rate out of range", goerr.V("index", i))
		}
	}

	if _, err := uc.repo.Client().Get(ctx, input.ClientID); err != nil {
		return nil, goerr.Wrap(err, "failed to resolve invoice client", goerr.V("clientId", input.ClientID))
	}

	issuedAt := input.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now().UTC()
	}
	invoiceNumber := input.InvoiceNumber
	if invoiceNumber == "" {
		invoiceNumber = fmt.Sprintf("INV-%d", time.Now().UTC().UnixMilli())
	}

	invoice := &model.Invoice{
		InvoiceNumber: invoiceNumber,
		ClientID:      input.ClientID,
		Tax:           input.Tax,
		Items:         input.Items,
		IssuedAt:      issuedAt,
		DueDate:       input.DueDate,
		Notes:         input.Notes,
	}
	invoice.ComputeTotals()

	created, err := uc.repo.Invoice().Create(ctx, invoice)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create invoice")
	}
	return created, nil
}

func (uc *InvoiceUseCase) Get(ctx context.Context, id model.InvoiceID) (*model.Invoice, error) {
	return uc.repo.Invoice().Get(ctx, id)
}

func (uc *InvoiceUseCase) List(ctx context.Context) ([]*model.Invoice, error) {
	return uc.repo.Invoice().List(ctx)
}

// ListUnpaid returns outstanding invoices, earliest due date first.
func (uc *InvoiceUseCase) ListUnpaid(ctx context.Context) ([]*model.Invoice, error) {
	return uc.repo.Invoice().ListUnpaid(ctx)
}

// ListByClient returns a client's invoices, latest issued first.
func (uc *InvoiceUseCase) ListByClient(ctx context.Context, clientID model.ClientID) ([]*model.Invoice, error) {
	return uc.repo.Invoice().ListByClient(ctx, clientID)
}

// MarkPaid settles an invoice, recording when and how it was paid.
func (uc *InvoiceUseCase) MarkPaid(ctx context.Context, id model.InvoiceID, paymentMethod string) (*model.Invoice, error) {
	invoice, err := uc.repo.Invoice().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if invoice.Status == types.InvoiceStatusPaid {
		return nil, goerr.Wrap(ErrValidation, "invoice is already paid", goerr.V("id", id))
	}
	if invoice.Status == types.InvoiceStatusCancelled {
		return nil, goerr.Wrap(ErrValidation, "cancelled invoice cannot be paid", goerr.V("id", id))
	}

	invoice.Status = types.InvoiceStatusPaid
	invoice.PaidAt = time.Now().UTC()
	invoice.PaymentMethod = paymentMethod

	updated, err := uc.repo.Invoice().Update(ctx, invoice)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to mark invoice paid", goerr.V("id", id))
	}
	return updated, nil
}

// RevenueByMonth sums the totals of invoices paid within the given month.
// Month format is "YYYY-MM"; the window is [monthStart, monthStart+1mo).
func (uc *InvoiceUseCase) RevenueByMonth(ctx context.Context, month string) (float64, error) {
	monthStart, err := time.Parse("2006-01", month)
	if err != nil {
		return 0, goerr.Wrap(ErrValidation, "invalid month format, want YYYY-MM", goerr.V("month", month))
	}

	paid, err := uc.repo.Invoice().ListPaidBetween(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list paid invoices", goerr.V("month", month))
	}

	var total float64
	for _, invoice := range paid {
		total += invoice.Total
	}
	return total, nil
}
