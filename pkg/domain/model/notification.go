package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lensworks/crewdesk/pkg/domain/types"
)

// NotificationID is the identifier of a notification
type NotificationID string

// NewNotificationID generates a new random notification ID
func NewNotificationID() NotificationID {
	return NotificationID(uuid.New().String())
}

// String returns the string representation of the notification ID
func (id NotificationID) String() string {
	return string(id)
}

// Notification targets a single user. Once created, the only mutation is
// flipping the read flag.
type Notification struct {
	ID        NotificationID         `firestore:"-" json:"id"`
	UserID    UserID                 `firestore:"userId" json:"userId"`
	Type      types.NotificationType `firestore:"type" json:"type"`
	Title     string                 `firestore:"title" json:"title"`
	Message   string                 `firestore:"message" json:"message"`
	Read      bool                   `firestore:"read" json:"read"`
	ActionURL string                 `firestore:"actionUrl,omitempty" json:"actionUrl,omitempty"`
	Metadata  map[string]any         `firestore:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt time.Time              `firestore:"created_at" json:"created_at"`
}
