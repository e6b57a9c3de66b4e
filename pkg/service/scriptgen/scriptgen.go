// Package scriptgen produces draft video scripts for the content studio.
// Drafts come from a built-in template bank, or from an LLM when one is
// configured.
package scriptgen

import (
	"context"

	"github.com/lensworks/crewdesk/pkg/domain/types"
)

// Request describes the script to draft.
type Request struct {
	Topic          string
	Tone           types.ScriptTone
	TargetAudience string
	Duration       int // target length in seconds
	KeyPoints      []string
}

// Generator drafts script content from a request.
type Generator interface {
	Generate(ctx context.Context, req *Request) (string, error)
}
