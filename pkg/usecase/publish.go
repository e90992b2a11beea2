package usecase

import (
	"context"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"

	"github.com/ascensive/stevedore/pkg/domain/interfaces"
	"github.com/ascensive/stevedore/pkg/domain/model"
	"github.com/ascensive/stevedore/pkg/policy"
)

type publishUseCase struct {
	policy   *policy.PublishPolicy
	builder  interfaces.ImageBuilder
	registry interfaces.RegistryClient
	cred     model.Credential
	notifier interfaces.Notifier
}

// PublishOption is a functional option for the publish use case
type PublishOption func(*publishUseCase)

// WithNotifier enables result notification after each run
func WithNotifier(n interfaces.Notifier) PublishOption {
	return func(uc *publishUseCase) {
		uc.notifier = n
	}
}

// NewPublish creates a new instance of PublishUseCase
func NewPublish(
	pol *policy.PublishPolicy,
	builder interfaces.ImageBuilder,
	registry interfaces.RegistryClient,
	cred model.Credential,
	opts ...PublishOption,
) interfaces.PublishUseCase {
	uc := &publishUseCase{
		policy:   pol,
		builder:  builder,
		registry: registry,
		cred:     cred,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ProcessTrigger runs the pipeline for one trigger: resolve the tag,
// build the image, and push when the policy allows. Every failure is
// terminal for the run; nothing is retried.
func (uc *publishUseCase) ProcessTrigger(ctx context.Context, trigger *model.TriggerContext) (*model.PublishResult, error) {
	result, err := uc.run(ctx, trigger)

	if uc.notifier != nil {
		if nerr := uc.notifier.NotifyResult(ctx, trigger, result, err); nerr != nil {
			ctxlog.From(ctx).Warn("failed to notify result", "error", nerr)
		}
	}

	if err != nil {
		sentry.CaptureException(err)
	}

	return result, err
}

func (uc *publishUseCase) run(ctx context.Context, trigger *model.TriggerContext) (*model.PublishResult, error) {
	logger := ctxlog.From(ctx)

	decision := uc.policy.ShouldPublish(trigger.Event, trigger.Ref)

	// Tag resolution happens before the build so a malformed ref fails
	// the run without invoking the build tool.
	tag, err := uc.policy.ResolveTag(trigger.Event, trigger.Ref)
	if err != nil {
		logger.Error("failed to resolve image tag",
			"error", err,
			"event", trigger.Event,
			"ref", trigger.Ref.String(),
		)
		return nil, err
	}

	logger.Info("resolved image tag",
		"tag", tag.String(),
		"event", trigger.Event,
		"ref", trigger.Ref.String(),
		"publish", decision,
		"delivery_id", trigger.DeliveryID,
	)

	if err := uc.builder.Build(ctx, tag); err != nil {
		logger.Error("image build failed", "error", err, "tag", tag.String())
		return nil, err
	}

	if !decision {
		logger.Info("build finished, publish skipped by policy",
			"tag", tag.String(),
			"event", trigger.Event,
			"ref", trigger.Ref.String(),
		)
		return &model.PublishResult{Tag: tag}, nil
	}

	// Authentication always precedes the push; its failure aborts the
	// run before any registry mutation.
	sess, err := uc.registry.Authenticate(ctx, uc.cred)
	if err != nil {
		logger.Error("registry authentication failed", "error", err)
		return nil, err
	}

	receipt, err := uc.registry.Push(ctx, sess, tag)
	if err != nil {
		logger.Error("image push failed", "error", err, "tag", tag.String())
		return nil, err
	}

	logger.Info("published image",
		"tag", tag.String(),
		"digest", receipt.Digest,
		"receipt_id", receipt.ID,
	)

	return &model.PublishResult{
		Tag:       tag,
		Published: true,
		Receipt:   receipt,
	}, nil
}
