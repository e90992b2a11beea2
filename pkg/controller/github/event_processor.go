package github

import (
	"context"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ascensive/stevedore/pkg/domain/interfaces"
	"github.com/ascensive/stevedore/pkg/domain/model"
)

// EventProcessor turns GitHub webhook payloads into pipeline triggers
type EventProcessor struct {
	publishUC interfaces.PublishUseCase
}

// NewEventProcessor creates a new GitHub event processor
func NewEventProcessor(publishUC interfaces.PublishUseCase) *EventProcessor {
	return &EventProcessor{
		publishUC: publishUC,
	}
}

// ProcessEvent processes a GitHub webhook event. Events outside the
// push / pull_request / release triad are logged and ignored.
func (p *EventProcessor) ProcessEvent(ctx context.Context, deliveryID string, payload interface{}) error {
	logger := ctxlog.From(ctx)

	var (
		trigger *model.TriggerContext
		err     error
	)

	switch e := payload.(type) {
	case *github.PushEvent:
		trigger, err = extractPushTrigger(e)
	case *github.PullRequestEvent:
		switch e.GetAction() {
		case "opened", "synchronize", "reopened":
			trigger, err = extractPullRequestTrigger(e)
		default:
			logger.Info("ignoring pull request action", "action", e.GetAction())
			return nil
		}
	case *github.ReleaseEvent:
		if e.GetAction() != "released" {
			logger.Info("ignoring release event with non-released action",
				"action", e.GetAction(),
			)
			return nil
		}
		trigger, err = extractReleaseTrigger(e)
	default:
		logger.Info("ignoring unsupported event payload")
		return nil
	}

	if err != nil {
		logger.Error("failed to extract trigger from event", "error", err)
		return err
	}

	trigger.DeliveryID = deliveryID
	trigger.ReceivedAt = time.Now()

	result, err := p.publishUC.ProcessTrigger(ctx, trigger)
	if err != nil {
		return err
	}

	logger.Info("pipeline run finished",
		"tag", result.Tag.String(),
		"published", result.Published,
		"delivery_id", deliveryID,
	)
	return nil
}

func extractPushTrigger(event *github.PushEvent) (*model.TriggerContext, error) {
	ref := event.GetRef()
	repo := event.GetRepo().GetFullName()
	if ref == "" || repo == "" {
		return nil, goerr.New("push event misses required fields",
			goerr.V("ref", ref), goerr.V("repo", repo))
	}

	return &model.TriggerContext{
		Event:      model.EventPush,
		Ref:        model.GitRef(ref),
		Repository: repo,
		Actor:      event.GetSender().GetLogin(),
		CommitSHA:  event.GetAfter(),
	}, nil
}

func extractPullRequestTrigger(event *github.PullRequestEvent) (*model.TriggerContext, error) {
	head := event.GetPullRequest().GetHead()
	repo := event.GetRepo().GetFullName()
	if head.GetRef() == "" || repo == "" {
		return nil, goerr.New("pull request event misses required fields",
			goerr.V("repo", repo))
	}

	return &model.TriggerContext{
		Event:      model.EventPullRequest,
		Ref:        model.GitRef("refs/heads/" + head.GetRef()),
		Repository: repo,
		Actor:      event.GetSender().GetLogin(),
		CommitSHA:  head.GetSHA(),
	}, nil
}

func extractReleaseTrigger(event *github.ReleaseEvent) (*model.TriggerContext, error) {
	tag := event.GetRelease().GetTagName()
	repo := event.GetRepo().GetFullName()
	if tag == "" || repo == "" {
		return nil, goerr.New("release event misses required fields",
			goerr.V("tag", tag), goerr.V("repo", repo))
	}

	return &model.TriggerContext{
		Event:      model.EventRelease,
		Ref:        model.GitRef("refs/tags/" + tag),
		Repository: repo,
		Actor:      event.GetSender().GetLogin(),
		CommitSHA:  event.GetRelease().GetTargetCommitish(),
	}, nil
}
