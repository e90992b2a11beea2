package config

import (
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/ascensive/stevedore/pkg/domain/types"
)

// Sentry holds error reporting configuration
type Sentry struct {
	DSN string
}

// Flags returns CLI flags for Sentry configuration
func (c *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN, error reporting disabled when unset",
			Destination: &c.DSN,
			Sources:     cli.EnvVars("STEVEDORE_SENTRY_DSN", "SENTRY_DSN"),
		},
	}
}

// Init initializes the Sentry SDK. No-op when no DSN is configured.
func (c *Sentry) Init() error {
	if c.DSN == "" {
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:     c.DSN,
		Release: "stevedore@" + types.Version,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry")
	}

	return nil
}
