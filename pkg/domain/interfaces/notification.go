package interfaces

import (
	"context"

	"github.com/lensworks/crewdesk/pkg/domain/model"
)

// NotificationRepository defines the interface for Notification data access
type NotificationRepository interface {
	// Create creates a new notification
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)

	// ListByUser retrieves a user's feed, creation descending, capped at
	// limit entries. unreadOnly restricts to read == false.
	ListByUser(ctx context.Context, userID model.UserID, unreadOnly bool, limit int) ([]*model.Notification, error)

	// MarkRead flips a single notification to read
	MarkRead(ctx context.Context, id model.NotificationID) error

	// MarkAllRead flips the user's whole unread set to read in a single
	// atomic batch: either every notification flips or none do. Returns
	// the number of notifications flipped.
	MarkAllRead(ctx context.Context, userID model.UserID) (int, error)
}
