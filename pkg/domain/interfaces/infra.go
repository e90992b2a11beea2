package interfaces

import (
	"context"

	"github.com/ascensive/stevedore/pkg/domain/model"
)

// RegistryClient defines operations against the image registry
type RegistryClient interface {
	// Authenticate exchanges the credential for an authenticated
	// session. It fails when the credential is empty or rejected.
	Authenticate(ctx context.Context, cred model.Credential) (*model.Session, error)

	// Push publishes the built image under tag. Registry state mutates
	// on success; there is no rollback.
	Push(ctx context.Context, sess *model.Session, tag model.ImageTag) (*model.Receipt, error)
}

// ImageBuilder builds the container image for a resolved tag
type ImageBuilder interface {
	Build(ctx context.Context, tag model.ImageTag) error
}

// Notifier delivers the outcome of a pipeline run
type Notifier interface {
	// NotifyResult is called after every run. result may be nil when
	// the pipeline failed before resolving a tag; runErr is nil on
	// success.
	NotifyResult(ctx context.Context, trigger *model.TriggerContext, result *model.PublishResult, runErr error) error
}
