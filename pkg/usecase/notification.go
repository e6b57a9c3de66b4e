package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/domain/interfaces"
	"github.com/lensworks/crewdesk/pkg/domain/model"
)

// FeedLimit caps the per-user notification feed
const FeedLimit = 50

type NotificationUseCase struct {
	repo interfaces.Repository
}

func NewNotificationUseCase(repo interfaces.Repository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// Notify creates a notification for a user.
func (uc *NotificationUseCase) Notify(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	if n.UserID == "" {
		return nil, goerr.Wrap(ErrValidation, "notification userId is required")
	}
	if n.Title == "" {
		return nil, goerr.Wrap(ErrValidation, "notification title is required")
	}
	if !n.Type.IsValid() {
		return nil, goerr.Wrap(ErrValidation, "invalid notification type", goerr.V("type", n.Type))
	}

	created, err := uc.repo.Notification().Create(ctx, n)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create notification")
	}
	return created, nil
}

// Feed returns the user's notifications, newest first, capped at FeedLimit.
func (uc *NotificationUseCase) Feed(ctx context.Context, userID model.UserID, unreadOnly bool) ([]*model.Notification, error) {
	return uc.repo.Notification().ListByUser(ctx, userID, unreadOnly, FeedLimit)
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, id model.NotificationID) error {
	return uc.repo.Notification().MarkRead(ctx, id)
}

// MarkAllRead flips the user's whole unread set. All or nothing; a partial
// flip is never observable.
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID model.UserID) (int, error) {
	return uc.repo.Notification().MarkAllRead(ctx, userID)
}
