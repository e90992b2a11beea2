// Package build invokes the external container build tool.
package build

import (
	"context"
	"os/exec"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Runner executes external commands and captures combined
// stdout+stderr output. A non-zero exit is returned as an error
// carrying the output; there is no retry.
type Runner struct {
	dir string
}

// NewRunner creates a Runner. Pass empty dir to use the current
// working directory.
func NewRunner(dir string) *Runner {
	return &Runner{dir: dir}
}

// Run executes the named command
func (r *Runner) Run(ctx context.Context, name string, arg ...string) (string, error) {
	return r.run(ctx, "", name, arg...)
}

// RunInput executes the named command feeding stdin to it. Used for
// commands that read secrets from stdin; stdin is never logged.
func (r *Runner) RunInput(ctx context.Context, stdin string, name string, arg ...string) (string, error) {
	return r.run(ctx, stdin, name, arg...)
}

func (r *Runner) run(ctx context.Context, stdin, name string, arg ...string) (string, error) {
	logger := ctxlog.From(ctx)
	logger.Info("executing command",
		"cmd", name,
		"args", strings.Join(arg, " "),
	)

	cmd := exec.CommandContext(ctx, name, arg...)
	if r.dir != "" {
		cmd.Dir = r.dir
	}
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	out, err := cmd.CombinedOutput()
	logger.Debug("command output", "output", string(out))

	if err != nil {
		return string(out), goerr.Wrap(err, "command failed",
			goerr.V("cmd", name),
			goerr.V("args", strings.Join(arg, " ")),
			goerr.V("output", string(out)),
		)
	}

	return string(out), nil
}
