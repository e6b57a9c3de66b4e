package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/repository"
)

type notificationRepository struct {
	mu            sync.RWMutex
	notifications map[model.NotificationID]*model.Notification
}

func newNotificationRepository() *notificationRepository {
	return &notificationRepository{
		notifications: make(map[model.NotificationID]*model.Notification),
	}
}

func copyNotification(n *model.Notification) *model.Notification {
	c := *n
	if n.Metadata != nil {
		c.Metadata = make(map[string]any, len(n.Metadata))
		for k, v := range n.Metadata {
			c.Metadata[k] = v
		}
	}
	return &c
}

func (r *notificationRepository) Create(_ context.Context, n *model.Notification) (*model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" {
		n.ID = model.NewNotificationID()
	}
	n.Read = false
	n.CreatedAt = time.Now().UTC()

	r.notifications[n.ID] = copyNotification(n)
	return n, nil
}

func (r *notificationRepository) ListByUser(_ context.Context, userID model.UserID, unreadOnly bool, limit int) ([]*model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var notifications []*model.Notification
	for _, n := range r.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		notifications = append(notifications, copyNotification(n))
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	if limit > 0 && len(notifications) > limit {
		notifications = notifications[:limit]
	}

	return notifications, nil
}

func (r *notificationRepository) MarkRead(_ context.Context, id model.NotificationID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id]
	if !ok {
		return goerr.Wrap(repository.ErrNotFound, "notification not found", goerr.V("id", id))
	}
	n.Read = true
	return nil
}

// MarkAllRead flips every unread notification of the user under one lock,
// so concurrent readers see either the old or the new state of the whole
// set, never a partial one.
func (r *notificationRepository) MarkAllRead(_ context.Context, userID model.UserID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int
	for _, n := range r.notifications {
		if n.UserID == userID && !n.Read {
			n.Read = true
			count++
		}
	}
	return count, nil
}
