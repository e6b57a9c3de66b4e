package scriptgen

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/domain/types"
)

// hook and outro banks per tone. Each tone carries a few variations so
// repeated generations do not read identically.
var hooks = map[types.ScriptTone][]string{
	types.ScriptToneProfessional: {
		"In today's competitive landscape, %s has become essential.",
		"Let's take a closer look at %s and what it means for your business.",
		"Industry leaders agree: %s is changing how we work.",
	},
	types.ScriptToneCasual: {
		"Hey everyone! Today we're talking about %s.",
		"So, %s. Let's get into it.",
		"You've probably heard about %s - here's the real story.",
	},
	types.ScriptToneHumorous: {
		"Brace yourselves: %s is about to get interesting.",
		"They said %s couldn't be fun. They were wrong.",
		"What do you get when you cross %s with a camera crew? This video.",
	},
	types.ScriptToneInspirational: {
		"Every great story starts somewhere. Ours starts with %s.",
		"Imagine what's possible when %s meets determination.",
		"This is more than %s. This is a turning point.",
	},
	types.ScriptToneEducational: {
		"By the end of this video, you'll understand %s.",
		"Let's break down %s, step by step.",
		"Three things you need to know about %s.",
	},
}

var outros = map[types.ScriptTone][]string{
	types.ScriptToneProfessional: {
		"Contact us to learn how this applies to your organization.",
		"Reach out to our team for a tailored consultation.",
	},
	types.ScriptToneCasual: {
		"Thanks for watching - drop a comment and let us know what you think!",
		"If you liked this one, stick around. There's more coming.",
	},
	types.ScriptToneHumorous: {
		"Like, subscribe, and tell your pets about us.",
		"That's all folks. We'll be here all week.",
	},
	types.ScriptToneInspirational: {
		"The next chapter is yours to write.",
		"Start today. The rest will follow.",
	},
	types.ScriptToneEducational: {
		"Recap the key points and try them yourself.",
		"Next lesson, we go deeper. See you there.",
	},
}

// Template drafts scripts from the built-in tone bank without any external
// dependency. It is the fallback when no LLM client is configured.
type Template struct{}

func NewTemplate() *Template {
	return &Template{}
}

var _ Generator = &Template{}

func (g *Template) Generate(_ context.Context, req *Request) (string, error) {
	if req.Topic == "" {
		return "", goerr.New("script topic is required")
	}

	tone := req.Tone.Normalize()
	hookBank := hooks[tone]
	outroBank := outros[tone]

	var b strings.Builder

	b.WriteString("[HOOK]\n")
	fmt.Fprintf(&b, hookBank[rand.Intn(len(hookBank))], req.Topic)
	b.WriteString("\n\n[MAIN]\n")

	if len(req.KeyPoints) > 0 {
		for i, point := range req.KeyPoints {
			fmt.Fprintf(&b, "%d. %s\n", i+1, point)
		}
	} else {
		fmt.Fprintf(&b, "Walk the viewer through %s with concrete examples and visuals.\n", req.Topic)
	}

	if req.TargetAudience != "" {
		fmt.Fprintf(&b, "\nSpeak directly to %s throughout.\n", req.TargetAudience)
	}
	if req.Duration > 0 {
		fmt.Fprintf(&b, "\nTarget runtime: about %d seconds.\n", req.Duration)
	}

	b.WriteString("\n[OUTRO]\n")
	b.WriteString(outroBank[rand.Intn(len(outroBank))])
	b.WriteString("\n")

	return b.String(), nil
}
