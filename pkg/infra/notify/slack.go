// Package notify delivers pipeline results to chat.
package notify

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/ascensive/stevedore/pkg/domain/interfaces"
	"github.com/ascensive/stevedore/pkg/domain/model"
)

// SlackNotifier posts pipeline results to a Slack channel
type SlackNotifier struct {
	client  *slack.Client
	channel string
}

// NewSlack creates a SlackNotifier
func NewSlack(token, channel string) interfaces.Notifier {
	return &SlackNotifier{
		client:  slack.New(token),
		channel: channel,
	}
}

// NotifyResult posts a summary of the run to the configured channel
func (n *SlackNotifier) NotifyResult(ctx context.Context, trigger *model.TriggerContext, result *model.PublishResult, runErr error) error {
	msg := buildMessage(trigger, result, runErr)

	if _, _, err := n.client.PostMessageContext(ctx, n.channel, slack.MsgOptionText(msg, false)); err != nil {
		return goerr.Wrap(err, "failed to post slack message", goerr.V("channel", n.channel))
	}

	ctxlog.From(ctx).Debug("posted slack notification", "channel", n.channel)
	return nil
}

func buildMessage(trigger *model.TriggerContext, result *model.PublishResult, runErr error) string {
	if runErr != nil {
		return fmt.Sprintf(":x: %s run failed for %s (%s): %v",
			trigger.Event, trigger.Repository, trigger.Ref, runErr)
	}
	if result != nil && result.Published {
		msg := fmt.Sprintf(":ship: published %s (%s on %s)",
			result.Tag, trigger.Event, trigger.Ref)
		if result.Receipt != nil && result.Receipt.Digest != "" {
			msg += " digest " + result.Receipt.Digest
		}
		return msg
	}
	tag := model.ImageTag("")
	if result != nil {
		tag = result.Tag
	}
	return fmt.Sprintf(":hammer: built %s (%s on %s), publish skipped",
		tag, trigger.Event, trigger.Ref)
}
