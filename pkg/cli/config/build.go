package config

import "github.com/urfave/cli/v3"

// Build holds build tool configuration
type Build struct {
	Engine  string
	Context string
	WorkDir string
}

// Flags returns CLI flags for build configuration
func (c *Build) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "build-engine",
			Usage:       "Container engine binary",
			Value:       "docker",
			Destination: &c.Engine,
			Sources:     cli.EnvVars("STEVEDORE_BUILD_ENGINE"),
		},
		&cli.StringFlag{
			Name:        "build-context",
			Usage:       "Image build context directory",
			Value:       ".",
			Destination: &c.Context,
			Sources:     cli.EnvVars("STEVEDORE_BUILD_CONTEXT"),
		},
		&cli.StringFlag{
			Name:        "build-workdir",
			Usage:       "Working directory for build tool invocations",
			Destination: &c.WorkDir,
			Sources:     cli.EnvVars("STEVEDORE_BUILD_WORKDIR"),
		},
	}
}
