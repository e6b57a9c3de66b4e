package interfaces

import (
	"context"

	"github.com/lensworks/crewdesk/pkg/domain/model"
)

// ClientRepository defines the interface for Client data access
type ClientRepository interface {
	// Create creates a new client
	Create(ctx context.Context, client *model.Client) (*model.Client, error)

	// Get retrieves a client by ID
	Get(ctx context.Context, id model.ClientID) (*model.Client, error)

	// List retrieves all clients
	List(ctx context.Context) ([]*model.Client, error)
}
