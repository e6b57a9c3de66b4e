package scriptgen_test

import (
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/lensworks/crewdesk/pkg/domain/types"
	"github.com/lensworks/crewdesk/pkg/service/scriptgen"
)

func TestTemplateGenerate(t *testing.T) {
	g := scriptgen.NewTemplate()
	ctx := context.Background()

	t.Run("produces all three sections", func(t *testing.T) {
		draft, err := g.Generate(ctx, &scriptgen.Request{
			Topic: "drone cinematography",
			Tone:  types.ScriptToneCasual,
		})
		gt.NoError(t, err).Required()

		gt.Bool(t, strings.Contains(draft, "[HOOK]")).True()
		gt.Bool(t, strings.Contains(draft, "[MAIN]")).True()
		gt.Bool(t, strings.Contains(draft, "[OUTRO]")).True()
		gt.Bool(t, strings.Contains(draft, "drone cinematography")).True()
	})

	t.Run("numbers the key points", func(t *testing.T) {
		draft, err := g.Generate(ctx, &scriptgen.Request{
			Topic:     "studio lighting",
			Tone:      types.ScriptToneEducational,
			KeyPoints: []string{"three-point setup", "color temperature"},
		})
		gt.NoError(t, err).Required()

		gt.Bool(t, strings.Contains(draft, "1. three-point setup")).True()
		gt.Bool(t, strings.Contains(draft, "2. color temperature")).True()
	})

	t.Run("mentions audience and runtime when given", func(t *testing.T) {
		draft, err := g.Generate(ctx, &scriptgen.Request{
			Topic:          "studio lighting",
			Tone:           types.ScriptToneProfessional,
			TargetAudience: "wedding videographers",
			Duration:       90,
		})
		gt.NoError(t, err).Required()

		gt.Bool(t, strings.Contains(draft, "wedding videographers")).True()
		gt.Bool(t, strings.Contains(draft, "90 seconds")).True()
	})

	t.Run("unknown tone falls back to professional bank", func(t *testing.T) {
		draft, err := g.Generate(ctx, &scriptgen.Request{
			Topic: "studio lighting",
			Tone:  types.ScriptTone("sarcastic"),
		})
		gt.NoError(t, err).Required()
		gt.String(t, draft).NotEqual("")
	})

	t.Run("missing topic fails", func(t *testing.T) {
		_, err := g.Generate(ctx, &scriptgen.Request{})
		gt.Error(t, err)
	})
}
