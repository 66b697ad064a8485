package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/stevedore/pkg/cli/config"
	controller "github.com/m-mizutani/stevedore/pkg/controller/http"
	"github.com/m-mizutani/stevedore/pkg/domain/interfaces"
	"github.com/m-mizutani/stevedore/pkg/domain/model"
	execinfra "github.com/m-mizutani/stevedore/pkg/infra/exec"
	githubinfra "github.com/m-mizutani/stevedore/pkg/infra/github"
	slackinfra "github.com/m-mizutani/stevedore/pkg/infra/slack"
	"github.com/m-mizutani/stevedore/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		githubCfg config.GitHub
		buildCfg  config.Build
		sentryCfg config.Sentry
		slackCfg  config.Slack
	)

	flags := append(serverCfg.Flags(), githubCfg.Flags()...)
	flags = append(flags, buildCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run the pipeline as a webhook server reacting to tag creation",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := buildCfg.Load(); err != nil {
				return err
			}
			if err := sentryCfg.Configure(); err != nil {
				return err
			}

			host, err := githubinfra.NewClient(githubCfg.Token, githubCfg.Owner, githubCfg.Repo)
			if err != nil {
				return goerr.Wrap(err, "failed to create release host client")
			}
			builder := execinfra.NewRunner(buildCfg.Command, buildCfg.Args, "")

			var notifier interfaces.Notifier
			if slackCfg.WebhookURL != "" {
				notifier = slackinfra.NewNotifier(slackCfg.WebhookURL)
			}

			publishUC := usecase.NewPublish(host, builder)
			webhookUC := usecase.NewWebhook(publishUC, notifier, model.PublishRequest{
				App:         buildCfg.App,
				Owner:       githubCfg.Owner,
				Repo:        githubCfg.Repo,
				ArtifactDir: buildCfg.ArtifactDir,
			})

			server, err := controller.NewServer(
				ctx,
				webhookUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithWebhookSecret(serverCfg.WebhookSecret),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
