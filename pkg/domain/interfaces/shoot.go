package interfaces

import (
	"context"
	"time"

	"github.com/lensworks/crewdesk/pkg/domain/model"
)

// ShootRepository defines the interface for Shoot data access
type ShootRepository interface {
	// Create creates a new shoot
	Create(ctx context.Context, shoot *model.Shoot) (*model.Shoot, error)

	// Get retrieves a shoot by ID
	Get(ctx context.Context, id model.ShootID) (*model.Shoot, error)

	// List retrieves all shoots
	List(ctx context.Context) ([]*model.Shoot, error)

	// ListByClient retrieves a client's shoots, date descending
	ListByClient(ctx context.Context, clientID model.ClientID) ([]*model.Shoot, error)

	// ListUpcoming retrieves shoots with date >= from, date ascending
	ListUpcoming(ctx context.Context, from time.Time) ([]*model.Shoot, error)

	// Update updates an existing shoot
	Update(ctx context.Context, shoot *model.Shoot) (*model.Shoot, error)

	// AddAssignment appends a crew assignment to the shoot's assignment
	// child collection. Assignments are never updated in place.
	AddAssignment(ctx context.Context, assignment *model.ShootAssignment) (*model.ShootAssignment, error)

	// ListAssignments retrieves the crew assignments of a shoot
	ListAssignments(ctx context.Context, shootID model.ShootID) ([]*model.ShootAssignment, error)
}
