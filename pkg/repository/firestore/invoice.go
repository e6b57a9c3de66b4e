package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/types"
)

type invoiceRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newInvoiceRepository(client *firestore.Client) *invoiceRepository {
	return &invoiceRepository{client: client}
}

func (r *invoiceRepository) invoicesCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_invoices"
	}
	return "invoices"
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error) {
	now := time.Now().UTC()
	if invoice.ID == "" {
		invoice.ID = model.NewInvoiceID()
	}
	invoice.Status = invoice.Status.Normalize()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	docRef := r.client.Collection(r.invoicesCollection()).Doc(invoice.ID.String())
	if _, err := docRef.Set(ctx, invoice); err != nil {
		return nil, goerr.Wrap(err, "failed to create invoice", goerr.V("id", invoice.ID))
	}

	return invoice, nil
}

func (r *invoiceRepository) Get(ctx context.Context, id model.InvoiceID) (*model.Invoice, error) {
	docSnap, err := r.client.Collection(r.invoicesCollection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "invoice not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get invoice", goerr.V("id", id))
	}

	var invoice model.Invoice
	if err := docSnap.DataTo(&invoice); err != nil {
		return nil, goerr.Wrap(err, "failed to decode invoice", goerr.V("id", id))
	}
	invoice.ID = id

	return &invoice, nil
}

func (r *invoiceRepository) collectInvoices(iter *firestore.DocumentIterator) ([]*model.Invoice, error) {
	defer iter.Stop()

	var invoices []*model.Invoice
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate invoices")
		}

		var invoice model.Invoice
		if err := docSnap.DataTo(&invoice); err != nil {
			return nil, goerr.Wrap(err, "failed to decode invoice", goerr.V("doc_id", docSnap.Ref.ID))
		}
		invoice.ID = model.InvoiceID(docSnap.Ref.ID)

		invoices = append(invoices, &invoice)
	}

	return invoices, nil
}

func (r *invoiceRepository) List(ctx context.Context) ([]*model.Invoice, error) {
	return r.collectInvoices(r.client.Collection(r.invoicesCollection()).Documents(ctx))
}

func (r *invoiceRepository) ListUnpaid(ctx context.Context) ([]*model.Invoice, error) {
	unpaid := make([]string, 0, 2)
	for _, s := range types.UnpaidInvoiceStatuses() {
		unpaid = append(unpaid, s.String())
	}

	iter := r.client.Collection(r.invoicesCollection()).
		Where("status", "in", unpaid).
		OrderBy("due_date", firestore.Asc).
		Documents(ctx)
	return r.collectInvoices(iter)
}

func (r *invoiceRepository) ListByClient(ctx context.Context, clientID model.ClientID) ([]*model.Invoice, error) {
	iter := r.client.Collection(r.invoicesCollection()).
		Where("clientId", "==", clientID.String()).
		OrderBy("issued_at", firestore.Desc).
		Documents(ctx)
	return r.collectInvoices(iter)
}

func (r *invoiceRepository) ListPaidBetween(ctx context.Context, from, to time.Time) ([]*model.Invoice, error) {
	iter := r.client.Collection(r.invoicesCollection()).
		Where("status", "==", types.InvoiceStatusPaid.String()).
		Where("paid_at", ">=", from).
		Where("paid_at", "<", to).
		Documents(ctx)
	return r.collectInvoices(iter)
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error) {
	docRef := r.client.Collection(r.invoicesCollection()).Doc(invoice.ID.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "invoice not found", goerr.V("id", invoice.ID))
		}
		return nil, goerr.Wrap(err, "failed to check invoice existence", goerr.V("id", invoice.ID))
	}

	invoice.UpdatedAt = time.Now().UTC()
	if _, err := docRef.Set(ctx, invoice); err != nil {
		return nil, goerr.Wrap(err, "failed to update invoice", goerr.V("id", invoice.ID))
	}

	return invoice, nil
}
