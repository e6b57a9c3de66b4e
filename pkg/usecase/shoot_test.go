package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/lensworks/crewdesk/pkg/domain/interfaces"
	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/types"
	"github.com/lensworks/crewdesk/pkg/repository"
	"github.com/lensworks/crewdesk/pkg/repository/memory"
	"github.com/lensworks/crewdesk/pkg/usecase"
)

func createShootForTest(t *testing.T, uc *usecase.UseCases, repo interfaces.Repository, date time.Time) *model.Shoot {
	t.Helper()
	client := createTestClient(t, repo)
	shoot, err := uc.Shoot.Create(context.Background(), employeeSession("uid-alice"), &usecase.CreateShootInput{
		ClientID: client.ID,
		Title:    "Corporate promo",
		Date:     date,
		Location: "Studio B",
	})
	gt.NoError(t, err).Required()
	return shoot
}

func TestCreateShoot(t *testing.T) {
	t.Run("defaults to scheduled", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)

		shoot := createShootForTest(t, uc, repo, time.Now().UTC().Add(72*time.Hour))
		gt.Value(t, shoot.Status).Equal(types.ShootStatusScheduled)
		gt.Value(t, shoot.CreatedBy).Equal(model.UserID("uid-alice"))
	})

	t.Run("rejects unknown client", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		_, err := uc.Shoot.Create(ctx, employeeSession("uid-alice"), &usecase.CreateShootInput{
			ClientID: "no-such-client",
			Title:    "Corporate promo",
			Date:     time.Now().UTC().Add(72 * time.Hour),
		})
		gt.Bool(t, errors.Is(err, repository.ErrNotFound)).True()
	})

	t.Run("missing date fails", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		client := createTestClient(t, repo)

		_, err := uc.Shoot.Create(context.Background(), employeeSession("uid-alice"), &usecase.CreateShootInput{
			ClientID: client.ID,
			Title:    "Corporate promo",
		})
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()
	})
}

func TestShootAssignments(t *testing.T) {
	t.Run("append and list", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()

		shoot := createShootForTest(t, uc, repo, time.Now().UTC().Add(72*time.Hour))

		first, err := uc.Shoot.Assign(ctx, shoot.ID, "uid-alice", "camera_operator")
		gt.NoError(t, err).Required()
		gt.String(t, first.ID).NotEqual("")

		_, err = uc.Shoot.Assign(ctx, shoot.ID, "uid-bob", "sound_engineer")
		gt.NoError(t, err).Required()

		assignments, err := uc.Shoot.ListAssignments(ctx, shoot.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, assignments).Length(2)
	})

	t.Run("missing role fails", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)

		shoot := createShootForTest(t, uc, repo, time.Now().UTC().Add(72*time.Hour))

		_, err := uc.Shoot.Assign(context.Background(), shoot.ID, "uid-alice", "")
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()
	})
}

func TestShootStatus(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)
	ctx := context.Background()

	shoot := createShootForTest(t, uc, repo, time.Now().UTC().Add(72*time.Hour))

	updated, err := uc.Shoot.UpdateStatus(ctx, shoot.ID, types.ShootStatusCompleted)
	gt.NoError(t, err).Required()
	gt.Value(t, updated.Status).Equal(types.ShootStatusCompleted)

	_, err = uc.Shoot.UpdateStatus(ctx, shoot.ID, types.ShootStatus("abandoned"))
	gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()
}
