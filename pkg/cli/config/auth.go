package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lensworks/crewdesk/pkg/service/idp"
)

// Auth holds CLI flags for the session and identity-provider layer
type Auth struct {
	firebaseProject string
	tokenSecret     string
	tokenTTL        time.Duration
}

// Flags returns CLI flags for auth configuration
func (a *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firebase-project-id",
			Usage:       "Firebase project ID used to verify sign-in ID tokens",
			Sources:     cli.EnvVars("CREWDESK_FIREBASE_PROJECT_ID"),
			Destination: &a.firebaseProject,
		},
		&cli.StringFlag{
			Name:        "token-secret",
			Usage:       "HS256 signing secret for session tokens (required)",
			Sources:     cli.EnvVars("CREWDESK_TOKEN_SECRET"),
			Destination: &a.tokenSecret,
		},
		&cli.DurationFlag{
			Name:        "token-ttl",
			Usage:       "Session token lifetime",
			Value:       7 * 24 * time.Hour,
			Sources:     cli.EnvVars("CREWDESK_TOKEN_TTL"),
			Destination: &a.tokenTTL,
		},
	}
}

// TokenSecret returns the configured signing secret
func (a *Auth) TokenSecret() []byte {
	return []byte(a.tokenSecret)
}

// TokenTTL returns the configured session token lifetime
func (a *Auth) TokenTTL() time.Duration {
	return a.tokenTTL
}

// Validate checks the auth configuration. A missing signing secret is a
// startup failure, never silently replaced by a default.
func (a *Auth) Validate() error {
	if a.tokenSecret == "" {
		return goerr.New("token-secret is required; refusing to start without a session signing secret")
	}
	return nil
}

// Configure builds the ID-token verifier. Returns nil when no Firebase
// project is configured, which disables login.
func (a *Auth) Configure() (idp.Verifier, error) {
	if a.firebaseProject == "" {
		return nil, nil
	}

	verifier, err := idp.NewFirebase(a.firebaseProject)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure Firebase verifier")
	}
	return verifier, nil
}

// LogValue renders the configuration with the secret redacted
func (a *Auth) LogValue() slog.Value {
	secret := "(not set)"
	if a.tokenSecret != "" {
		secret = "(redacted)"
	}
	return slog.GroupValue(
		slog.String("firebase_project", a.firebaseProject),
		slog.String("token_secret", secret),
		slog.Duration("token_ttl", a.tokenTTL),
	)
}
