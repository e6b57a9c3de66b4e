package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lensworks/crewdesk/pkg/service/slack"
)

// Slack holds CLI flags for the Slack lead announcement service
type Slack struct {
	botToken string
	channel  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack bot token for lead announcements",
			Sources:     cli.EnvVars("CREWDESK_SLACK_BOT_TOKEN"),
			Destination: &s.botToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel for lead announcements",
			Sources:     cli.EnvVars("CREWDESK_SLACK_CHANNEL"),
			Destination: &s.channel,
		},
	}
}

// IsConfigured reports whether both the token and the channel are set
func (s *Slack) IsConfigured() bool {
	return s.botToken != "" && s.channel != ""
}

// Configure builds the Slack service. Returns nil when not configured.
func (s *Slack) Configure() (slack.Service, error) {
	if !s.IsConfigured() {
		return nil, nil
	}

	svc, err := slack.New(s.botToken, s.channel)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure Slack service")
	}
	return svc, nil
}

// LogValue renders the configuration with the token redacted
func (s *Slack) LogValue() slog.Value {
	token := "(not set)"
	if s.botToken != "" {
		token = "(redacted)"
	}
	return slog.GroupValue(
		slog.String("bot_token", token),
		slog.String("channel", s.channel),
	)
}
