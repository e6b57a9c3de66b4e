package config

import (
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Sentry holds CLI flags for error reporting
type Sentry struct {
	dsn string
	env string
}

// Flags returns CLI flags for Sentry configuration
func (s *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for error reporting",
			Sources:     cli.EnvVars("CREWDESK_SENTRY_DSN"),
			Destination: &s.dsn,
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment tag",
			Value:       "production",
			Sources:     cli.EnvVars("CREWDESK_SENTRY_ENV"),
			Destination: &s.env,
		},
	}
}

// Configure initializes the Sentry SDK. A missing DSN leaves reporting
// disabled; sentry-go silently drops events in that case.
func (s *Sentry) Configure() error {
	if s.dsn == "" {
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         s.dsn,
		Environment: s.env,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to initialize Sentry")
	}
	return nil
}

// LogValue renders the configuration with the DSN redacted
func (s *Sentry) LogValue() slog.Value {
	dsn := "(not set)"
	if s.dsn != "" {
		dsn = "(redacted)"
	}
	return slog.GroupValue(
		slog.String("dsn", dsn),
		slog.String("env", s.env),
	)
}
