package interfaces

import (
	"context"

	"github.com/lensworks/crewdesk/pkg/domain/model"
)

// TaskRepository defines the interface for Task data access
type TaskRepository interface {
	// Create creates a new task with store-assigned timestamps
	Create(ctx context.Context, task *model.Task) (*model.Task, error)

	// Get retrieves a task by ID
	Get(ctx context.Context, id model.TaskID) (*model.Task, error)

	// List retrieves tasks matching the given query options. Filters are
	// combined conjunctively; there is no disjunction support.
	List(ctx context.Context, opts ...ListTaskOption) ([]*model.Task, error)

	// Update updates an existing task, re-stamping updated_at
	Update(ctx context.Context, task *model.Task) (*model.Task, error)

	// Delete deletes a task by ID
	Delete(ctx context.Context, id model.TaskID) error
}
