package interfaces

import (
	"context"

	"github.com/ascensive/stevedore/pkg/domain/model"
)

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// ProcessEvent validates and records a webhook event
	ProcessEvent(ctx context.Context, event *model.WebhookEvent) error
}

// PublishUseCase runs the build-and-publish pipeline for one trigger
type PublishUseCase interface {
	// ProcessTrigger resolves the image tag, builds the image, and
	// pushes it when the publish policy allows. The returned result
	// reflects how far the pipeline got.
	ProcessTrigger(ctx context.Context, trigger *model.TriggerContext) (*model.PublishResult, error)
}
