package build_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascensive/stevedore/pkg/domain/types"
	"github.com/ascensive/stevedore/pkg/infra/build"
)

func TestBuilder_Build_success(t *testing.T) {
	t.Parallel()

	// "echo build -t <tag> ." stands in for the real engine.
	b := build.NewBuilder(build.NewRunner(""), build.WithEngine("echo"))

	err := b.Build(context.Background(), "ascensive/irc-rss-feed-bot:latest")
	require.NoError(t, err)
}

func TestBuilder_Build_failure(t *testing.T) {
	t.Parallel()

	b := build.NewBuilder(build.NewRunner(""), build.WithEngine("false"))

	err := b.Build(context.Background(), "ascensive/irc-rss-feed-bot:latest")
	require.Error(t, err)
	assert.True(t, goerr.HasTag(err, types.ErrTagBuild))
}
