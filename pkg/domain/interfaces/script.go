package interfaces

import (
	"context"

	"github.com/lensworks/crewdesk/pkg/domain/model"
)

// ScriptRepository defines the interface for Script data access
type ScriptRepository interface {
	// Create creates a new script
	Create(ctx context.Context, script *model.Script) (*model.Script, error)

	// Get retrieves a script by ID
	Get(ctx context.Context, id model.ScriptID) (*model.Script, error)

	// AddVersion appends an immutable version to the script's version
	// child collection
	AddVersion(ctx context.Context, version *model.ScriptVersion) (*model.ScriptVersion, error)

	// ListVersions retrieves a script's versions, version number ascending
	ListVersions(ctx context.Context, scriptID model.ScriptID) ([]*model.ScriptVersion, error)
}
