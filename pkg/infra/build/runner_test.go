package build_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascensive/stevedore/pkg/infra/build"
)

func TestRunner_Run_success(t *testing.T) {
	t.Parallel()

	r := build.NewRunner("")
	out, err := r.Run(context.Background(), "echo", "hello")

	require.NoError(t, err)
	assert.Contains(t, out, "hello")
}

func TestRunner_Run_with_dir(t *testing.T) {
	t.Parallel()

	r := build.NewRunner("/tmp")
	out, err := r.Run(context.Background(), "pwd")

	require.NoError(t, err)
	assert.Contains(t, out, "/tmp")
}

func TestRunner_Run_failure(t *testing.T) {
	t.Parallel()

	r := build.NewRunner("")
	_, err := r.Run(context.Background(), "false")

	assert.Error(t, err)
}

func TestRunner_RunInput(t *testing.T) {
	t.Parallel()

	r := build.NewRunner("")
	out, err := r.RunInput(context.Background(), "sekrit\n", "cat")

	require.NoError(t, err)
	assert.Contains(t, out, "sekrit")
}
