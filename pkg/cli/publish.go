package cli

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/stevedore/pkg/cli/config"
	"github.com/m-mizutani/stevedore/pkg/domain/model"
	execinfra "github.com/m-mizutani/stevedore/pkg/infra/exec"
	githubinfra "github.com/m-mizutani/stevedore/pkg/infra/github"
	"github.com/m-mizutani/stevedore/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdPublish() *cli.Command {
	var (
		githubCfg    config.GitHub
		buildCfg     config.Build
		ref          string
		reuseRelease bool
	)

	flags := append(githubCfg.Flags(), buildCfg.Flags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:        "ref",
			Usage:       "Triggering git reference (refs/tags/<version>)",
			Required:    true,
			Destination: &ref,
			Sources:     cli.EnvVars("STEVEDORE_REF", "GITHUB_REF"),
		},
		&cli.BoolFlag{
			Name:        "reuse-release",
			Usage:       "Upload into an existing release for the tag instead of creating one",
			Destination: &reuseRelease,
			Sources:     cli.EnvVars("STEVEDORE_REUSE_RELEASE"),
		},
	)

	return &cli.Command{
		Name:    "publish",
		Aliases: []string{"p"},
		Usage:   "Build installer artifacts and publish a draft release for a tag",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := buildCfg.Load(); err != nil {
				return err
			}

			host, err := githubinfra.NewClient(githubCfg.Token, githubCfg.Owner, githubCfg.Repo)
			if err != nil {
				return goerr.Wrap(err, "failed to create release host client")
			}
			builder := execinfra.NewRunner(buildCfg.Command, buildCfg.Args, "")

			publishUC := usecase.NewPublish(host, builder)

			req := &model.PublishRequest{
				RunID:        uuid.NewString(),
				Ref:          ref,
				App:          buildCfg.App,
				Owner:        githubCfg.Owner,
				Repo:         githubCfg.Repo,
				ArtifactDir:  buildCfg.ArtifactDir,
				ReuseRelease: reuseRelease,
			}

			logger.Info("Starting release pipeline",
				slog.String("run_id", req.RunID),
				slog.String("ref", req.Ref),
				slog.String("app", req.App),
			)

			result, err := publishUC.Publish(ctx, req)
			if err != nil {
				return goerr.Wrap(err, "release pipeline failed", goerr.V("run_id", req.RunID))
			}

			logger.Info("Release pipeline complete",
				slog.String("run_id", result.RunID),
				slog.String("version", result.Version),
				slog.Int64("release_id", result.ReleaseID),
				slog.Any("uploaded", result.Uploaded),
			)
			return nil
		},
	}
}
