package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/domain/interfaces"
	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/model/auth"
	"github.com/lensworks/crewdesk/pkg/domain/types"
	"github.com/lensworks/crewdesk/pkg/service/scriptgen"
)

// variationCount is how many drafts each generation produces
const variationCount = 3

type ScriptUseCase struct {
	repo      interfaces.Repository
	generator scriptgen.Generator
}

func NewScriptUseCase(repo interfaces.Repository, generator scriptgen.Generator) *ScriptUseCase {
	return &ScriptUseCase{
		repo:      repo,
		generator: generator,
	}
}

// GenerateScriptInput carries the content-studio generation request.
type GenerateScriptInput struct {
	Title          string
	Topic          string
	Tone           string
	TargetAudience string
	Duration       int
	KeyPoints      []string
	Tags           []string
}

// GenerateResult is the stored script plus every generated variation.
type GenerateResult struct {
	Script   *model.Script
	Versions []*model.ScriptVersion
}

// Generate drafts script variations, persists the script with the first
// draft as its content and each draft as an immutable version.
func (uc *ScriptUseCase) Generate(ctx context.Context, sess *auth.Session, input *GenerateScriptInput) (*GenerateResult, error) {
	if input.Title == "" {
		return nil, goerr.Wrap(ErrValidation, "script title is required")
	}
	if input.Topic == "" {
		return nil, goerr.Wrap(ErrValidation, "script topic is required")
	}

	// unknown tones degrade to professional rather than failing
	req := &scriptgen.Request{
		Topic:          input.Topic,
		Tone:           types.ScriptTone(input.Tone).Normalize(),
		TargetAudience: input.TargetAudience,
		Duration:       input.Duration,
		KeyPoints:      input.KeyPoints,
	}

	drafts := make([]string, 0, variationCount)
	for i := 0; i < variationCount; i++ {
		draft, err := uc.generator.Generate(ctx, req)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to generate script draft", goerr.V("variation", i+1))
		}
		drafts = append(drafts, draft)
	}

	script, err := uc.repo.Script().Create(ctx, &model.Script{
		Title:          input.Title,
		Content:        drafts[0],
		Tone:           req.Tone,
		TargetAudience: input.TargetAudience,
		Duration:       input.Duration,
		CreatedBy:      sess.UserID,
		Tags:           input.Tags,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to store script")
	}

	versions := make([]*model.ScriptVersion, 0, len(drafts))
	for i, draft := range drafts {
		version, err := uc.repo.Script().AddVersion(ctx, &model.ScriptVersion{
			ScriptID:      script.ID,
			VersionNumber: i + 1,
			Content:       draft,
			CreatedBy:     sess.UserID,
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to store script version", goerr.V("version", i+1))
		}
		versions = append(versions, version)
	}

	return &GenerateResult{Script: script, Versions: versions}, nil
}

func (uc *ScriptUseCase) Get(ctx context.Context, id model.ScriptID) (*model.Script, error) {
	return uc.repo.Script().Get(ctx, id)
}

func (uc *ScriptUseCase) ListVersions(ctx context.Context, id model.ScriptID) ([]*model.ScriptVersion, error) {
	return uc.repo.Script().ListVersions(ctx, id)
}
