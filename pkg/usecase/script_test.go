package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/lensworks/crewdesk/pkg/domain/types"
	"github.com/lensworks/crewdesk/pkg/repository/memory"
	"github.com/lensworks/crewdesk/pkg/usecase"
)

func TestGenerateScript(t *testing.T) {
	t.Run("persists the script and three versions", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()

		result, err := uc.Script.Generate(ctx, employeeSession("uid-alice"), &usecase.GenerateScriptInput{
			Title:          "Product launch teaser",
			Topic:          "our new camera rig",
			Tone:           "casual",
			TargetAudience: "indie filmmakers",
			Duration:       60,
			KeyPoints:      []string{"weight", "price", "mount options"},
		})
		gt.NoError(t, err).Required()

		gt.Value(t, result.Script.Tone).Equal(types.ScriptToneCasual)
		gt.Value(t, result.Script.CreatedBy.String()).Equal("uid-alice")
		gt.String(t, result.Script.Content).NotEqual("")
		gt.Array(t, result.Versions).Length(3)
		gt.Value(t, result.Versions[0].Content).Equal(result.Script.Content)

		stored, err := uc.Script.ListVersions(ctx, result.Script.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, stored).Length(3)
		gt.Value(t, stored[0].VersionNumber).Equal(1)
		gt.Value(t, stored[2].VersionNumber).Equal(3)
	})

	t.Run("unknown tone degrades to professional", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		result, err := uc.Script.Generate(ctx, employeeSession("uid-alice"), &usecase.GenerateScriptInput{
			Title: "Corporate overview",
			Topic: "our services",
			Tone:  "sarcastic",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, result.Script.Tone).Equal(types.ScriptToneProfessional)
	})

	t.Run("missing topic fails", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		_, err := uc.Script.Generate(ctx, employeeSession("uid-alice"), &usecase.GenerateScriptInput{
			Title: "Untitled",
		})
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()
	})
}
