package interfaces

import (
	"context"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/types"
)

// UserRepository defines the interface for User data access
type UserRepository interface {
	// Create stores a new user under the identity-provider uid
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// Get retrieves a user by ID. Returns ErrNotFound when absent.
	Get(ctx context.Context, id model.UserID) (*model.User, error)

	// Update updates an existing user's profile fields
	Update(ctx context.Context, user *model.User) (*model.User, error)

	// ListByRole retrieves all users holding the given role
	ListByRole(ctx context.Context, role types.Role) ([]*model.User, error)

	// AppendLoginHistory appends an audit record to the user's login
	// history. Best effort; failures must not block session issuance.
	AppendLoginHistory(ctx context.Context, id model.UserID, entry *model.LoginHistory) error
}
