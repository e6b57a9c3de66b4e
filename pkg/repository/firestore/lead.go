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

type leadRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newLeadRepository(client *firestore.Client) *leadRepository {
	return &leadRepository{client: client}
}

func (r *leadRepository) leadsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_leads"
	}
	return "leads"
}

func (r *leadRepository) Create(ctx context.Context, lead *model.Lead) (*model.Lead, error) {
	now := time.Now().UTC()
	if lead.ID == "" {
		lead.ID = model.NewLeadID()
	}
	lead.Status = lead.Status.Normalize()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	docRef := r.client.Collection(r.leadsCollection()).Doc(lead.ID.String())
	if _, err := docRef.Set(ctx, lead); err != nil {
		return nil, goerr.Wrap(err, "failed to create lead", goerr.V("id", lead.ID))
	}

	return lead, nil
}

func (r *leadRepository) Get(ctx context.Context, id model.LeadID) (*model.Lead, error) {
	docSnap, err := r.client.Collection(r.leadsCollection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "lead not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get lead", goerr.V("id", id))
	}

	var lead model.Lead
	if err := docSnap.DataTo(&lead); err != nil {
		return nil, goerr.Wrap(err, "failed to decode lead", goerr.V("id", id))
	}
	lead.ID = id

	return &lead, nil
}

func (r *leadRepository) collectLeads(iter *firestore.DocumentIterator) ([]*model.Lead, error) {
	defer iter.Stop()

	var leads []*model.Lead
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate leads")
		}

		var lead model.Lead
		if err := docSnap.DataTo(&lead); err != nil {
			return nil, goerr.Wrap(err, "failed to decode lead", goerr.V("doc_id", docSnap.Ref.ID))
		}
		lead.ID = model.LeadID(docSnap.Ref.ID)

		leads = append(leads, &lead)
	}

	return leads, nil
}

func (r *leadRepository) List(ctx context.Context) ([]*model.Lead, error) {
	iter := r.client.Collection(r.leadsCollection()).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	return r.collectLeads(iter)
}

func (r *leadRepository) ListByStatus(ctx context.Context, status types.LeadStatus) ([]*model.Lead, error) {
	iter := r.client.Collection(r.leadsCollection()).
		Where("status", "==", status.String()).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	return r.collectLeads(iter)
}

func (r *leadRepository) Update(ctx context.Context, lead *model.Lead) (*model.Lead, error) {
	docRef := r.client.Collection(r.leadsCollection()).Doc(lead.ID.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "lead not found", goerr.V("id", lead.ID))
		}
		return nil, goerr.Wrap(err, "failed to check lead existence", goerr.V("id", lead.ID))
	}

	lead.UpdatedAt = time.Now().UTC()
	if _, err := docRef.Set(ctx, lead); err != nil {
		return nil, goerr.Wrap(err, "failed to update lead", goerr.V("id", lead.ID))
	}

	return lead, nil
}
