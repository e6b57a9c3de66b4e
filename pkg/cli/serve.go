package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lensworks/crewdesk/pkg/cli/config"
	httpctrl "github.com/lensworks/crewdesk/pkg/controller/http"
	"github.com/lensworks/crewdesk/pkg/service/scriptgen"
	"github.com/lensworks/crewdesk/pkg/usecase"
	"github.com/lensworks/crewdesk/pkg/utils/logging"
	"github.com/lensworks/crewdesk/pkg/utils/safe"
)

func cmdServe() *cli.Command {
	var addr string
	var secureCookies bool
	var authCfg config.Auth
	var repoCfg config.Repository
	var slackCfg config.Slack
	var geminiCfg config.Gemini
	var sentryCfg config.Sentry
	var routesCfg config.Routes

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("CREWDESK_ADDR"),
			Destination: &addr,
		},
		&cli.BoolFlag{
			Name:        "secure-cookies",
			Usage:       "Mark session cookies secure (enable behind TLS termination)",
			Value:       true,
			Sources:     cli.EnvVars("CREWDESK_SECURE_COOKIES"),
			Destination: &secureCookies,
		},
	}
	flags = append(flags, authCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)
	flags = append(flags, routesCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := authCfg.Validate(); err != nil {
				return err
			}

			if err := sentryCfg.Configure(); err != nil {
				return goerr.Wrap(err, "failed to configure error reporting")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			verifier, err := authCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure authentication")
			}
			if verifier == nil {
				logging.Default().Warn("Firebase project not configured, login is disabled")
			}

			ucOpts := []usecase.Option{
				usecase.WithTokenSecret(authCfg.TokenSecret()),
				usecase.WithTokenTTL(authCfg.TokenTTL()),
			}
			if verifier != nil {
				ucOpts = append(ucOpts, usecase.WithVerifier(verifier))
			}

			slackSvc, err := slackCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure Slack service")
			}
			if slackSvc != nil {
				ucOpts = append(ucOpts, usecase.WithSlackService(slackSvc))
				logging.Default().Info("Slack lead announcements enabled", "slack", slackCfg.LogValue())
			}

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}
			if llmClient != nil {
				generator, err := scriptgen.NewLLM(llmClient)
				if err != nil {
					return goerr.Wrap(err, "failed to configure LLM script generator")
				}
				ucOpts = append(ucOpts, usecase.WithScriptGenerator(generator))
				logging.Default().Info("LLM script generation enabled", "gemini", geminiCfg.LogValue())
			} else {
				logging.Default().Info("Gemini not configured, using template script generation")
			}

			uc := usecase.New(repo, ucOpts...)

			roleRoutes, err := routesCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load role-route table")
			}

			handler := httpctrl.New(uc,
				httpctrl.WithSecureCookies(secureCookies),
				httpctrl.WithRoleRoutes(roleRoutes),
			)

			server := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
