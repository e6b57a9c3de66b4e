package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/types"
	"github.com/lensworks/crewdesk/pkg/repository"
)

type invoiceRepository struct {
	mu       sync.RWMutex
	invoices map[model.InvoiceID]*model.Invoice
}

func newInvoiceRepository() *invoiceRepository {
	return &invoiceRepository{
		invoices: make(map[model.InvoiceID]*model.Invoice),
	}
}

func copyInvoice(i *model.Invoice) *model.Invoice {
	c := *i
	c.Items = append([]model.InvoiceItem(nil), i.Items...)
	return &c
}

func (r *invoiceRepository) Create(_ context.Context, invoice *model.Invoice) (*model.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if invoice.ID == "" {
		invoice.ID = model.NewInvoiceID()
	}
	invoice.Status = invoice.Status.Normalize()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	r.invoices[invoice.ID] = copyInvoice(invoice)
	return invoice, nil
}

func (r *invoiceRepository) Get(_ context.Context, id model.InvoiceID) (*model.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	invoice, ok := r.invoices[id]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "invoice not found", goerr.V("id", id))
	}
	return copyInvoice(invoice), nil
}

func (r *invoiceRepository) List(_ context.Context) ([]*model.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var invoices []*model.Invoice
	for _, i := range r.invoices {
		invoices = append(invoices, copyInvoice(i))
	}
	return invoices, nil
}

func (r *invoiceRepository) ListUnpaid(_ context.Context) ([]*model.Invoice, error) {
	unpaid := make(map[types.InvoiceStatus]bool)
	for _, s := range types.UnpaidInvoiceStatuses() {
		unpaid[s] = true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var invoices []*model.Invoice
	for _, i := range r.invoices {
		if unpaid[i.Status] {
			invoices = append(invoices, copyInvoice(i))
		}
	}
	sort.Slice(invoices, func(i, j int) bool {
		return invoices[i].DueDate.Before(invoices[j].DueDate)
	})
	return invoices, nil
}

func (r *invoiceRepository) ListByClient(_ context.Context, clientID model.ClientID) ([]*model.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var invoices []*model.Invoice
	for _, i := range r.invoices {
		if i.ClientID == clientID {
			invoices = append(invoices, copyInvoice(i))
		}
	}
	sort.Slice(invoices, func(i, j int) bool {
		return invoices[i].IssuedAt.After(invoices[j].IssuedAt)
	})
	return invoices, nil
}

func (r *invoiceRepository) ListPaidBetween(_ context.Context, from, to time.Time) ([]*model.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var invoices []*model.Invoice
	for _, i := range r.invoices {
		if i.Status != types.InvoiceStatusPaid {
			continue
		}
		if i.PaidAt.Before(from) || !i.PaidAt.Before(to) {
			continue
		}
		invoices = append(invoices, copyInvoice(i))
	}
	return invoices, nil
}

func (r *invoiceRepository) Update(_ context.Context, invoice *model.Invoice) (*model.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.invoices[invoice.ID]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "invoice not found", goerr.V("id", invoice.ID))
	}

	invoice.CreatedAt = existing.CreatedAt
	invoice.UpdatedAt = time.Now().UTC()
	r.invoices[invoice.ID] = copyInvoice(invoice)
	return invoice, nil
}
