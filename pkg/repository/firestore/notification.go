package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lensworks/crewdesk/pkg/domain/model"
)

type notificationRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newNotificationRepository(client *firestore.Client) *notificationRepository {
	return &notificationRepository{client: client}
}

func (r *notificationRepository) notificationsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_notifications"
	}
	return "notifications"
}

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	if n.ID == "" {
		n.ID = model.NewNotificationID()
	}
	n.Read = false
	n.CreatedAt = time.Now().UTC()

	docRef := r.client.Collection(r.notificationsCollection()).Doc(n.ID.String())
	if _, err := docRef.Set(ctx, n); err != nil {
		return nil, goerr.Wrap(err, "failed to create notification", goerr.V("id", n.ID))
	}

	return n, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID model.UserID, unreadOnly bool, limit int) ([]*model.Notification, error) {
	query := r.client.Collection(r.notificationsCollection()).
		Where("userId", "==", userID.String())
	if unreadOnly {
		query = query.Where("read", "==", false)
	}
	query = query.OrderBy("created_at", firestore.Desc).Limit(limit)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var notifications []*model.Notification
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate notifications")
		}

		var n model.Notification
		if err := docSnap.DataTo(&n); err != nil {
			return nil, goerr.Wrap(err, "failed to decode notification", goerr.V("doc_id", docSnap.Ref.ID))
		}
		n.ID = model.NotificationID(docSnap.Ref.ID)

		notifications = append(notifications, &n)
	}

	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id model.NotificationID) error {
	docRef := r.client.Collection(r.notificationsCollection()).Doc(id.String())

	_, err := docRef.Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "notification not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to mark notification read", goerr.V("id", id))
	}

	return nil
}

// MarkAllRead flips the user's unread set inside a single transaction so a
// partial-read state is never observable.
func (r *notificationRepository) MarkAllRead(ctx context.Context, userID model.UserID) (int, error) {
	var count int

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		query := r.client.Collection(r.notificationsCollection()).
			Where("userId", "==", userID.String()).
			Where("read", "==", false)

		docs, err := tx.Documents(query).GetAll()
		if err != nil {
			return goerr.Wrap(err, "failed to query unread notifications")
		}

		for _, doc := range docs {
			if err := tx.Update(doc.Ref, []firestore.Update{
				{Path: "read", Value: true},
			}); err != nil {
				return goerr.Wrap(err, "failed to update notification", goerr.V("doc_id", doc.Ref.ID))
			}
		}

		count = len(docs)
		return nil
	})
	if err != nil {
		return 0, goerr.Wrap(err, "failed to mark all notifications read", goerr.V("userID", userID))
	}

	return count, nil
}
