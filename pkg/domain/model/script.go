package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lensworks/crewdesk/pkg/domain/types"
)

// ScriptID is the identifier of a script
type ScriptID string

// NewScriptID generates a new random script ID
func NewScriptID() ScriptID {
	return ScriptID(uuid.New().String())
}

// String returns the string representation of the script ID
func (id ScriptID) String() string {
	return string(id)
}

// Script represents a content-studio script. Version content is immutable;
// edits land as new versions.
type Script struct {
	ID             ScriptID         `firestore:"-" json:"id"`
	Title          string           `firestore:"title" json:"title"`
	Content        string           `firestore:"content" json:"content"`
	Tone           types.ScriptTone `firestore:"tone" json:"tone"`
	TargetAudience string           `firestore:"target_audience,omitempty" json:"target_audience,omitempty"`
	Duration       int              `firestore:"duration,omitempty" json:"duration,omitempty"`
	CreatedBy      UserID           `firestore:"created_by" json:"created_by"`
	Tags           []string         `firestore:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt      time.Time        `firestore:"created_at" json:"created_at"`
	UpdatedAt      time.Time        `firestore:"updated_at" json:"updated_at"`
}

// ScriptVersion is one immutable variation of a script
type ScriptVersion struct {
	ID             string    `firestore:"-" json:"id"`
	ScriptID       ScriptID  `firestore:"scriptId" json:"scriptId"`
	VersionNumber  int       `firestore:"version_number" json:"version_number"`
	Content        string    `firestore:"content" json:"content"`
	ChangesSummary string    `firestore:"changes_summary,omitempty" json:"changes_summary,omitempty"`
	CreatedBy      UserID    `firestore:"created_by" json:"created_by"`
	CreatedAt      time.Time `firestore:"created_at" json:"created_at"`
}
