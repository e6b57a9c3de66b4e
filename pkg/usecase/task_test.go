package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/model/auth"
	"github.com/lensworks/crewdesk/pkg/domain/types"
	"github.com/lensworks/crewdesk/pkg/repository"
	"github.com/lensworks/crewdesk/pkg/repository/memory"
	"github.com/lensworks/crewdesk/pkg/usecase"
)

func employeeSession(userID model.UserID) *auth.Session {
	return &auth.Session{UserID: userID, Email: string(userID) + "@example.com", Role: types.RoleEmployee}
}

func executiveSession(userID model.UserID) *auth.Session {
	return &auth.Session{UserID: userID, Email: string(userID) + "@example.com", Role: types.RoleExecutive}
}

func TestCreateTask(t *testing.T) {
	deadline := time.Now().UTC().Add(48 * time.Hour)

	t.Run("missing title fails before any write", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()

		_, err := uc.Task.Create(ctx, employeeSession("uid-alice"), &usecase.CreateTaskInput{
			Deadline: deadline,
		})
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()

		tasks, err := repo.Task().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, tasks).Length(0)
	})

	t.Run("missing deadline fails", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		_, err := uc.Task.Create(ctx, employeeSession("uid-alice"), &usecase.CreateTaskInput{
			Title: "Edit highlight reel",
		})
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()
	})

	t.Run("defaults assignees to the creator", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		created, err := uc.Task.Create(ctx, employeeSession("uid-alice"), &usecase.CreateTaskInput{
			Title:    "Edit highlight reel",
			Deadline: deadline,
		})
		gt.NoError(t, err).Required()

		gt.Array(t, created.AssignedTo).Length(1)
		gt.Value(t, created.AssignedTo[0]).Equal(model.UserID("uid-alice"))
		gt.Value(t, created.CreatedBy).Equal(model.UserID("uid-alice"))
		gt.Value(t, created.Status).Equal(types.TaskStatusPending)
		gt.Value(t, created.Priority).Equal(types.TaskPriorityMedium)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		_, err := uc.Task.Create(ctx, employeeSession("uid-alice"), &usecase.CreateTaskInput{
			Title:    "Edit highlight reel",
			Deadline: deadline,
			Status:   types.TaskStatus("paused"),
		})
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()
	})
}

func TestPatchTask(t *testing.T) {
	deadline := time.Now().UTC().Add(48 * time.Hour)

	t.Run("applies partial updates, keeps provenance", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		created, err := uc.Task.Create(ctx, employeeSession("uid-alice"), &usecase.CreateTaskInput{
			Title:    "Edit highlight reel",
			Deadline: deadline,
		})
		gt.NoError(t, err).Required()

		status := types.TaskStatusInProgress
		title := "Edit final cut"
		patched, err := uc.Task.Patch(ctx, created.ID, &usecase.TaskPatch{
			Title:  &title,
			Status: &status,
		})
		gt.NoError(t, err).Required()

		gt.Value(t, patched.ID).Equal(created.ID)
		gt.Value(t, patched.Title).Equal("Edit final cut")
		gt.Value(t, patched.Status).Equal(types.TaskStatusInProgress)
		gt.Value(t, patched.CreatedBy).Equal(model.UserID("uid-alice"))
		gt.Value(t, patched.CreatedAt).Equal(created.CreatedAt)
	})

	t.Run("rejects clearing the assignee set", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		created, err := uc.Task.Create(ctx, employeeSession("uid-alice"), &usecase.CreateTaskInput{
			Title:    "Edit highlight reel",
			Deadline: deadline,
		})
		gt.NoError(t, err).Required()

		_, err = uc.Task.Patch(ctx, created.ID, &usecase.TaskPatch{
			AssignedTo: []model.UserID{},
		})
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()
	})

	t.Run("absent task yields not found", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		title := "anything"
		_, err := uc.Task.Patch(ctx, "no-such-task", &usecase.TaskPatch{Title: &title})
		gt.Bool(t, errors.Is(err, repository.ErrNotFound)).True()
	})
}

func TestDeleteTask(t *testing.T) {
	deadline := time.Now().UTC().Add(48 * time.Hour)

	t.Run("employees cannot delete", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()

		created, err := uc.Task.Create(ctx, employeeSession("uid-alice"), &usecase.CreateTaskInput{
			Title:    "Edit highlight reel",
			Deadline: deadline,
		})
		gt.NoError(t, err).Required()

		err = uc.Task.Delete(ctx, employeeSession("uid-alice"), created.ID)
		gt.Bool(t, errors.Is(err, usecase.ErrForbidden)).True()

		// still there
		_, err = repo.Task().Get(ctx, created.ID)
		gt.NoError(t, err)
	})

	t.Run("executives can delete", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()

		created, err := uc.Task.Create(ctx, employeeSession("uid-alice"), &usecase.CreateTaskInput{
			Title:    "Edit highlight reel",
			Deadline: deadline,
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, uc.Task.Delete(ctx, executiveSession("uid-bob"), created.ID))

		_, err = repo.Task().Get(ctx, created.ID)
		gt.Bool(t, errors.Is(err, repository.ErrNotFound)).True()
	})
}

func TestListUpcomingTasks(t *testing.T) {
	uc := usecase.New(memory.New())
	ctx := context.Background()
	sess := employeeSession("uid-alice")

	soon, err := uc.Task.Create(ctx, sess, &usecase.CreateTaskInput{
		Title:    "Due soon",
		Deadline: time.Now().UTC().Add(48 * time.Hour),
	})
	gt.NoError(t, err).Required()

	_, err = uc.Task.Create(ctx, sess, &usecase.CreateTaskInput{
		Title:    "Due far out",
		Deadline: time.Now().UTC().Add(20 * 24 * time.Hour),
	})
	gt.NoError(t, err).Required()

	_, err = uc.Task.Create(ctx, sess, &usecase.CreateTaskInput{
		Title:    "Already done",
		Status:   types.TaskStatusCompleted,
		Deadline: time.Now().UTC().Add(24 * time.Hour),
	})
	gt.NoError(t, err).Required()

	upcoming, err := uc.Task.ListUpcoming(ctx, "uid-alice", 0)
	gt.NoError(t, err).Required()
	gt.Array(t, upcoming).Length(1)
	gt.Value(t, upcoming[0].ID).Equal(soon.ID)
}
