package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/lensworks/crewdesk/pkg/domain/interfaces"
	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/types"
	"github.com/lensworks/crewdesk/pkg/repository"
	"github.com/lensworks/crewdesk/pkg/repository/memory"
)

func runNotificationRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create always starts unread", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Notification().Create(ctx, &model.Notification{
			UserID:  "uid-alice",
			Type:    types.NotificationTypeTask,
			Title:   "Task assigned",
			Message: "You have a new task",
			Read:    true, // caller cannot pre-mark as read
		})
		gt.NoError(t, err).Required()

		gt.String(t, string(created.ID)).NotEqual("")
		gt.Bool(t, created.Read).False()
		gt.Bool(t, created.CreatedAt.IsZero()).False()
	})

	t.Run("ListByUser returns newest first with limit", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		var last *model.Notification
		for i := 0; i < 3; i++ {
			var err error
			last, err = repo.Notification().Create(ctx, &model.Notification{
				UserID:  "uid-alice",
				Type:    types.NotificationTypeTask,
				Title:   fmt.Sprintf("Task %d assigned", i),
				Message: "You have a new task",
			})
			gt.NoError(t, err).Required()
			time.Sleep(5 * time.Millisecond)
		}
		_, err := repo.Notification().Create(ctx, &model.Notification{
			UserID: "uid-other",
			Type:   types.NotificationTypeSystem,
			Title:  "Someone else's notification",
		})
		gt.NoError(t, err).Required()

		feed, err := repo.Notification().ListByUser(ctx, "uid-alice", false, 50)
		gt.NoError(t, err).Required()
		gt.Array(t, feed).Length(3)
		gt.Value(t, feed[0].ID).Equal(last.ID)

		capped, err := repo.Notification().ListByUser(ctx, "uid-alice", false, 2)
		gt.NoError(t, err).Required()
		gt.Array(t, capped).Length(2)
	})

	t.Run("MarkRead flips a single notification", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, err := repo.Notification().Create(ctx, &model.Notification{
			UserID: "uid-alice", Type: types.NotificationTypeTask, Title: "One",
		})
		gt.NoError(t, err).Required()
		_, err = repo.Notification().Create(ctx, &model.Notification{
			UserID: "uid-alice", Type: types.NotificationTypeTask, Title: "Two",
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Notification().MarkRead(ctx, first.ID))

		unread, err := repo.Notification().ListByUser(ctx, "uid-alice", true, 50)
		gt.NoError(t, err).Required()
		gt.Array(t, unread).Length(1)
		gt.Value(t, unread[0].Title).Equal("Two")
	})

	t.Run("MarkRead fails for absent notification", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		err := repo.Notification().MarkRead(ctx, "no-such-notification")
		gt.Bool(t, errors.Is(err, repository.ErrNotFound)).True()
	})

	t.Run("MarkAllRead flips only the user's unread set", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			_, err := repo.Notification().Create(ctx, &model.Notification{
				UserID: "uid-alice", Type: types.NotificationTypeTask,
				Title: fmt.Sprintf("Task %d", i),
			})
			gt.NoError(t, err).Required()
		}
		_, err := repo.Notification().Create(ctx, &model.Notification{
			UserID: "uid-other", Type: types.NotificationTypeSystem, Title: "Other",
		})
		gt.NoError(t, err).Required()

		count, err := repo.Notification().MarkAllRead(ctx, "uid-alice")
		gt.NoError(t, err).Required()
		gt.Value(t, count).Equal(3)

		unread, err := repo.Notification().ListByUser(ctx, "uid-alice", true, 50)
		gt.NoError(t, err).Required()
		gt.Array(t, unread).Length(0)

		otherUnread, err := repo.Notification().ListByUser(ctx, "uid-other", true, 50)
		gt.NoError(t, err).Required()
		gt.Array(t, otherUnread).Length(1)
	})

	t.Run("MarkAllRead with nothing unread returns zero", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		count, err := repo.Notification().MarkAllRead(ctx, "uid-alice")
		gt.NoError(t, err).Required()
		gt.Value(t, count).Equal(0)
	})
}

func TestMemoryNotificationRepository(t *testing.T) {
	runNotificationRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreNotificationRepository(t *testing.T) {
	runNotificationRepositoryTest(t, newFirestoreTestRepository)
}
