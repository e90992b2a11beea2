package cli

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/ascensive/stevedore/pkg/cli/config"
	"github.com/ascensive/stevedore/pkg/domain/model"
	"github.com/ascensive/stevedore/pkg/infra/build"
	"github.com/ascensive/stevedore/pkg/infra/dockerhub"
	"github.com/ascensive/stevedore/pkg/infra/notify"
	"github.com/ascensive/stevedore/pkg/usecase"
)

func cmdRun() *cli.Command {
	var (
		eventName   string
		ref         string
		commitSHA   string
		actor       string
		registryCfg config.Registry
		buildCfg    config.Build
		policyCfg   config.Policy
		notifyCfg   config.Notify
		sentryCfg   config.Sentry
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "event",
			Usage:       "Trigger event (push, pull_request, release)",
			Required:    true,
			Destination: &eventName,
			Sources:     cli.EnvVars("STEVEDORE_EVENT", "GITHUB_EVENT_NAME"),
		},
		&cli.StringFlag{
			Name:        "ref",
			Usage:       "Git ref, e.g. refs/heads/master or refs/tags/v1.2.3",
			Required:    true,
			Destination: &ref,
			Sources:     cli.EnvVars("STEVEDORE_REF", "GITHUB_REF"),
		},
		&cli.StringFlag{
			Name:        "sha",
			Usage:       "Commit SHA of the trigger",
			Destination: &commitSHA,
			Sources:     cli.EnvVars("STEVEDORE_SHA", "GITHUB_SHA"),
		},
		&cli.StringFlag{
			Name:        "actor",
			Usage:       "User who triggered the run",
			Destination: &actor,
			Sources:     cli.EnvVars("STEVEDORE_ACTOR", "GITHUB_ACTOR"),
		},
	}
	flags = append(flags, registryCfg.Flags()...)
	flags = append(flags, buildCfg.Flags()...)
	flags = append(flags, policyCfg.Flags()...)
	flags = append(flags, notifyCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:  "run",
		Usage: "Run the build-and-publish pipeline once for an explicit trigger",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := sentryCfg.Init(); err != nil {
				return err
			}
			defer sentry.Flush(2 * time.Second)

			pol, err := policyCfg.Load()
			if err != nil {
				return err
			}

			runner := build.NewRunner(buildCfg.WorkDir)
			builder := build.NewBuilder(runner,
				build.WithEngine(buildCfg.Engine),
				build.WithBuildContext(buildCfg.Context),
			)
			registry := dockerhub.NewClient(runner,
				dockerhub.WithAPIBase(registryCfg.APIBase),
				dockerhub.WithEngine(buildCfg.Engine),
			)

			var publishOpts []usecase.PublishOption
			if notifyCfg.Enabled() {
				publishOpts = append(publishOpts,
					usecase.WithNotifier(notify.NewSlack(notifyCfg.SlackToken, notifyCfg.SlackChannel)))
			}

			publishUC := usecase.NewPublish(pol, builder, registry, registryCfg.Credential(), publishOpts...)

			trigger := &model.TriggerContext{
				Event:      model.ParseTriggerEvent(eventName),
				Ref:        model.GitRef(ref),
				Repository: pol.Repository,
				Actor:      actor,
				CommitSHA:  commitSHA,
				DeliveryID: uuid.NewString(),
				ReceivedAt: time.Now(),
			}

			result, err := publishUC.ProcessTrigger(ctx, trigger)
			if err != nil {
				return err
			}

			logger.Info("run finished",
				"tag", result.Tag.String(),
				"published", result.Published,
			)
			return nil
		},
	}
}
