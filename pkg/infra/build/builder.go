package build

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ascensive/stevedore/pkg/domain/model"
	"github.com/ascensive/stevedore/pkg/domain/types"
)

const (
	defaultEngine  = "docker"
	defaultContext = "."
)

// Builder builds the container image with an external engine
type Builder struct {
	runner   *Runner
	engine   string
	buildCtx string
}

// BuilderOption is a functional option for Builder configuration
type BuilderOption func(*Builder)

// WithEngine sets the container engine binary (default "docker")
func WithEngine(engine string) BuilderOption {
	return func(b *Builder) {
		b.engine = engine
	}
}

// WithBuildContext sets the build context directory (default ".")
func WithBuildContext(dir string) BuilderOption {
	return func(b *Builder) {
		b.buildCtx = dir
	}
}

// NewBuilder creates a Builder
func NewBuilder(runner *Runner, opts ...BuilderOption) *Builder {
	b := &Builder{
		runner:   runner,
		engine:   defaultEngine,
		buildCtx: defaultContext,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build builds the image under the given tag. A non-zero exit of the
// build tool is surfaced directly as a build-tagged error.
func (b *Builder) Build(ctx context.Context, tag model.ImageTag) error {
	logger := ctxlog.From(ctx)
	logger.Info("building image", "tag", tag.String(), "engine", b.engine)

	out, err := b.runner.Run(ctx, b.engine, "build", "-t", tag.String(), b.buildCtx)
	if err != nil {
		return goerr.Wrap(err, "image build failed",
			goerr.V("tag", tag.String()),
			goerr.V("output", out),
			goerr.T(types.ErrTagBuild),
		)
	}

	return nil
}
