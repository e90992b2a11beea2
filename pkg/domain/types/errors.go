package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify pipeline failures. Every failure is terminal for
// the run that produced it; tags exist so callers and tests can tell
// the stages apart.
var (
	// ErrTagInvalidRef marks a ref that does not match the prefix
	// convention expected for its trigger event.
	ErrTagInvalidRef = goerr.NewTag("invalid_ref_format")

	// ErrTagAuth marks a missing, empty or rejected registry credential.
	ErrTagAuth = goerr.NewTag("authentication")

	// ErrTagBuild marks a non-zero exit of the image build tool.
	ErrTagBuild = goerr.NewTag("build")

	// ErrTagPush marks a failed push to the registry.
	ErrTagPush = goerr.NewTag("push")
)
