package interfaces

import (
	"context"
	"time"

	"github.com/lensworks/crewdesk/pkg/domain/model"
)

// InvoiceRepository defines the interface for Invoice data access
type InvoiceRepository interface {
	// Create creates a new invoice
	Create(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error)

	// Get retrieves an invoice by ID
	Get(ctx context.Context, id model.InvoiceID) (*model.Invoice, error)

	// List retrieves all invoices
	List(ctx context.Context) ([]*model.Invoice, error)

	// ListUnpaid retrieves invoices with status in {sent, overdue},
	// due date ascending
	ListUnpaid(ctx context.Context) ([]*model.Invoice, error)

	// ListByClient retrieves a client's invoices, issue date descending
	ListByClient(ctx context.Context, clientID model.ClientID) ([]*model.Invoice, error)

	// ListPaidBetween retrieves paid invoices with paid_at in [from, to)
	ListPaidBetween(ctx context.Context, from, to time.Time) ([]*model.Invoice, error)

	// Update updates an existing invoice
	Update(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error)
}
