package scriptgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

// LLM drafts scripts with a configured LLM client.
type LLM struct {
	client gollem.LLMClient
}

func NewLLM(client gollem.LLMClient) (*LLM, error) {
	if client == nil {
		return nil, goerr.New("LLM client is required")
	}
	return &LLM{client: client}, nil
}

var _ Generator = &LLM{}

func (g *LLM) Generate(ctx context.Context, req *Request) (string, error) {
	if req.Topic == "" {
		return "", goerr.New("script topic is required")
	}

	session, err := g.client.NewSession(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session")
	}

	var constraints []string
	if req.TargetAudience != "" {
		constraints = append(constraints, fmt.Sprintf("The target audience is %s.", req.TargetAudience))
	}
	if req.Duration > 0 {
		constraints = append(constraints, fmt.Sprintf("The script should run about %d seconds when read aloud.", req.Duration))
	}
	if len(req.KeyPoints) > 0 {
		constraints = append(constraints, "Cover these key points in order:\n- "+strings.Join(req.KeyPoints, "\n- "))
	}

	prompt := fmt.Sprintf(`Write a video script about the following topic in a %s tone.
Structure it as [HOOK], [MAIN] and [OUTRO] sections. Output the script text only.
%s
Topic: %s`, req.Tone.Normalize(), strings.Join(constraints, "\n"), req.Topic)

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate script")
	}
	if len(resp.Texts) == 0 {
		return "", goerr.New("script generation returned empty result")
	}

	return resp.Texts[0], nil
}
