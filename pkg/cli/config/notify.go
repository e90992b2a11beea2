package config

import "github.com/urfave/cli/v3"

// Notify holds Slack notification configuration
type Notify struct {
	SlackToken   string
	SlackChannel string
}

// Flags returns CLI flags for notification configuration
func (c *Notify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-token",
			Usage:       "Slack bot token for result notification",
			Destination: &c.SlackToken,
			Sources:     cli.EnvVars("STEVEDORE_SLACK_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel for result notification",
			Destination: &c.SlackChannel,
			Sources:     cli.EnvVars("STEVEDORE_SLACK_CHANNEL"),
		},
	}
}

// Enabled reports whether notification is configured
func (c *Notify) Enabled() bool {
	return c.SlackToken != "" && c.SlackChannel != ""
}
