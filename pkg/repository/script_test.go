package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/lensworks/crewdesk/pkg/domain/interfaces"
	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/types"
	"github.com/lensworks/crewdesk/pkg/repository"
	"github.com/lensworks/crewdesk/pkg/repository/memory"
)

func runScriptRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create normalizes unknown tone to professional", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Script().Create(ctx, &model.Script{
			Title:     "Product launch teaser",
			Content:   "Opening shot...",
			Tone:      types.ScriptTone("sarcastic"),
			CreatedBy: "uid-alice",
		})
		gt.NoError(t, err).Required()

		gt.String(t, string(created.ID)).NotEqual("")
		gt.Value(t, created.Tone).Equal(types.ScriptToneProfessional)
		gt.Bool(t, created.CreatedAt.IsZero()).False()
	})

	t.Run("ListVersions returns version number ascending", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		script, err := repo.Script().Create(ctx, &model.Script{
			Title:     "Product launch teaser",
			Content:   "Opening shot...",
			CreatedBy: "uid-alice",
		})
		gt.NoError(t, err).Required()

		for i := 3; i >= 1; i-- {
			_, err := repo.Script().AddVersion(ctx, &model.ScriptVersion{
				ScriptID:      script.ID,
				VersionNumber: i,
				Content:       fmt.Sprintf("Draft %d", i),
				CreatedBy:     "uid-alice",
			})
			gt.NoError(t, err).Required()
		}

		versions, err := repo.Script().ListVersions(ctx, script.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, versions).Length(3)
		gt.Value(t, versions[0].VersionNumber).Equal(1)
		gt.Value(t, versions[2].VersionNumber).Equal(3)
	})

	t.Run("AddVersion fails for absent script", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Script().AddVersion(ctx, &model.ScriptVersion{
			ScriptID:      "no-such-script",
			VersionNumber: 1,
		})
		gt.Bool(t, errors.Is(err, repository.ErrNotFound)).True()
	})
}

func TestMemoryScriptRepository(t *testing.T) {
	runScriptRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreScriptRepository(t *testing.T) {
	runScriptRepositoryTest(t, newFirestoreTestRepository)
}
