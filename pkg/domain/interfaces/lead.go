package interfaces

import (
	"context"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/types"
)

// LeadRepository defines the interface for Lead data access
type LeadRepository interface {
	// Create creates a new lead
	Create(ctx context.Context, lead *model.Lead) (*model.Lead, error)

	// Get retrieves a lead by ID
	Get(ctx context.Context, id model.LeadID) (*model.Lead, error)

	// List retrieves all leads, creation descending
	List(ctx context.Context) ([]*model.Lead, error)

	// ListByStatus retrieves leads in the given pipeline stage, creation
	// descending
	ListByStatus(ctx context.Context, status types.LeadStatus) ([]*model.Lead, error)

	// Update updates an existing lead
	Update(ctx context.Context, lead *model.Lead) (*model.Lead, error)
}
