package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/ascensive/stevedore/pkg/cli/config"
	"github.com/ascensive/stevedore/pkg/domain/model"
)

func cmdResolve() *cli.Command {
	var (
		eventName string
		ref       string
		policyCfg config.Policy
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
	}
	flags = append(flags, policyCfg.Flags()...)

	return &cli.Command{
		Name:  "resolve",
		Usage: "Print the image tag and publish decision for a trigger, without side effects",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			pol, err := policyCfg.Load()
			if err != nil {
				return err
			}

			event := model.ParseTriggerEvent(eventName)
			gitRef := model.GitRef(ref)

			tag, err := pol.ResolveTag(event, gitRef)
			if err != nil {
				return err
			}
			publish := pol.ShouldPublish(event, gitRef)

			fmt.Printf("tag: %s\n", tag.String())
			if publish {
				color.New(color.FgGreen).Println("publish: true")
			} else {
				color.New(color.FgYellow).Println("publish: false")
			}

			return nil
		},
	}
}
