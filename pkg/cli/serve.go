package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/ascensive/stevedore/pkg/cli/config"
	githubctrl "github.com/ascensive/stevedore/pkg/controller/github"
	controller "github.com/ascensive/stevedore/pkg/controller/http"
	"github.com/ascensive/stevedore/pkg/infra/build"
	"github.com/ascensive/stevedore/pkg/infra/dockerhub"
	"github.com/ascensive/stevedore/pkg/infra/notify"
	"github.com/ascensive/stevedore/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		serverCfg   config.Server
		githubCfg   config.GitHub
		registryCfg config.Registry
		buildCfg    config.Build
		policyCfg   config.Policy
		notifyCfg   config.Notify
		sentryCfg   config.Sentry
	)

	flags := serverCfg.Flags()
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, registryCfg.Flags()...)
	flags = append(flags, buildCfg.Flags()...)
	flags = append(flags, policyCfg.Flags()...)
	flags = append(flags, notifyCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server receiving GitHub webhook events",
		Flags:   flags,
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

			logger.Info("starting stevedore server",
				slog.String("addr", serverCfg.Addr),
				slog.String("repository", pol.Repository),
			)

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
			webhookUC := usecase.NewWebhook()
			processor := githubctrl.NewEventProcessor(publishUC)

			server, err := controller.NewServer(
				ctx,
				webhookUC,
				processor,
				controller.WithAddr(serverCfg.Addr),
				controller.WithWebhookSecret(githubCfg.WebhookSecret),
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
				logger.Info("context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("server shutdown complete")
			return nil
		},
	}
}
