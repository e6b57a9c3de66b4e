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

type leadRepository struct {
	mu    sync.RWMutex
	leads map[model.LeadID]*model.Lead
}

func newLeadRepository() *leadRepository {
	return &leadRepository{
		leads: make(map[model.LeadID]*model.Lead),
	}
}

func copyLead(l *model.Lead) *model.Lead {
	c := *l
	return &c
}

func (r *leadRepository) Create(_ context.Context, lead *model.Lead) (*model.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if lead.ID == "" {
		lead.ID = model.NewLeadID()
	}
	lead.Status = lead.Status.Normalize()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	r.leads[lead.ID] = copyLead(lead)
	return lead, nil
}

func (r *leadRepository) Get(_ context.Context, id model.LeadID) (*model.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lead, ok := r.leads[id]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "lead not found", goerr.V("id", id))
	}
	return copyLead(lead), nil
}

func sortLeadsByCreatedDesc(leads []*model.Lead) {
	sort.Slice(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})
}

func (r *leadRepository) List(_ context.Context) ([]*model.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var leads []*model.Lead
	for _, l := range r.leads {
		leads = append(leads, copyLead(l))
	}
	sortLeadsByCreatedDesc(leads)
	return leads, nil
}

func (r *leadRepository) ListByStatus(_ context.Context, status types.LeadStatus) ([]*model.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var leads []*model.Lead
	for _, l := range r.leads {
		if l.Status == status {
			leads = append(leads, copyLead(l))
		}
	}
	sortLeadsByCreatedDesc(leads)
	return leads, nil
}

func (r *leadRepository) Update(_ context.Context, lead *model.Lead) (*model.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.leads[lead.ID]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "lead not found", goerr.V("id", lead.ID))
	}

	lead.CreatedAt = existing.CreatedAt
	lead.UpdatedAt = time.Now().UTC()
	r.leads[lead.ID] = copyLead(lead)
	return lead, nil
}
