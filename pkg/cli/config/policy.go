package config

import (
	"github.com/urfave/cli/v3"

	"github.com/ascensive/stevedore/pkg/policy"
)

// Policy holds publish policy configuration
type Policy struct {
	Path string
}

// Flags returns CLI flags for policy configuration
func (c *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "policy",
			Usage:       "Path to publish policy YAML file (built-in defaults when unset)",
			Destination: &c.Path,
			Sources:     cli.EnvVars("STEVEDORE_POLICY"),
		},
	}
}

// Load returns the publish policy, built-in defaults when no file is
// configured
func (c *Policy) Load() (*policy.PublishPolicy, error) {
	if c.Path == "" {
		return policy.Default(), nil
	}
	return policy.Load(c.Path)
}
