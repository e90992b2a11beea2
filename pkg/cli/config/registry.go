package config

import (
	"github.com/urfave/cli/v3"

	"github.com/ascensive/stevedore/pkg/domain/model"
)

// Registry holds registry credential and endpoint configuration.
// Credentials are scoped to one run and never persisted.
type Registry struct {
	Username string
	Token    string
	APIBase  string
}

// Flags returns CLI flags for registry configuration
func (c *Registry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "registry-username",
			Usage:       "Docker Hub username",
			Destination: &c.Username,
			Sources:     cli.EnvVars("STEVEDORE_REGISTRY_USERNAME", "DOCKER_HUB_USERNAME"),
		},
		&cli.StringFlag{
			Name:        "registry-token",
			Usage:       "Docker Hub access token",
			Destination: &c.Token,
			Sources:     cli.EnvVars("STEVEDORE_REGISTRY_TOKEN", "DOCKER_HUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "registry-api",
			Usage:       "Registry API base URL",
			Value:       "https://hub.docker.com",
			Destination: &c.APIBase,
			Sources:     cli.EnvVars("STEVEDORE_REGISTRY_API"),
		},
	}
}

// Credential returns the credential for one run
func (c *Registry) Credential() model.Credential {
	return model.Credential{
		Username: c.Username,
		Token:    c.Token,
	}
}
