package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"

	"github.com/ascensive/stevedore/pkg/domain/model"
)

type webhookUseCase struct{}

// NewWebhook creates a new instance of WebhookUseCase
func NewWebhook() *webhookUseCase {
	return &webhookUseCase{}
}

// ProcessEvent records a webhook event. Unsupported events are logged
// and ignored; they never fail the request.
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) error {
	logger := ctxlog.From(ctx)

	logger.Info("received webhook event",
		"id", event.ID,
		"type", event.Type,
		"action", event.Action,
		"repository", event.Repository,
		"sender", event.Sender,
		"supported", event.IsSupportedEvent(),
	)

	if !event.IsSupportedEvent() {
		logger.Warn("unsupported event received",
			"type", event.Type,
			"action", event.Action,
		)
	}

	return nil
}
