package notify

import (
	"errors"
	"strings"
	"testing"

	"github.com/ascensive/stevedore/pkg/domain/model"
)

func TestBuildMessage(t *testing.T) {
	trigger := &model.TriggerContext{
		Event:      model.EventRelease,
		Ref:        "refs/tags/v2.0.0",
		Repository: "ascensive/irc-rss-feed-bot",
	}

	t.Run("published with digest", func(t *testing.T) {
		result := &model.PublishResult{
			Tag:       "ascensive/irc-rss-feed-bot:v2.0.0",
			Published: true,
			Receipt: &model.Receipt{
				ID:     "receipt-1",
				Tag:    "ascensive/irc-rss-feed-bot:v2.0.0",
				Digest: "sha256:feed",
			},
		}

		msg := buildMessage(trigger, result, nil)
		if !strings.Contains(msg, "published ascensive/irc-rss-feed-bot:v2.0.0") {
			t.Errorf("message misses tag: %q", msg)
		}
		if !strings.Contains(msg, "sha256:feed") {
			t.Errorf("message misses digest: %q", msg)
		}
	})

	t.Run("build only", func(t *testing.T) {
		result := &model.PublishResult{Tag: "ascensive/irc-rss-feed-bot:latest"}

		msg := buildMessage(trigger, result, nil)
		if !strings.Contains(msg, "publish skipped") {
			t.Errorf("message misses skip note: %q", msg)
		}
	})

	t.Run("failure", func(t *testing.T) {
		msg := buildMessage(trigger, nil, errors.New("build tool exited with 2"))
		if !strings.Contains(msg, "run failed") {
			t.Errorf("message misses failure note: %q", msg)
		}
		if !strings.Contains(msg, "build tool exited with 2") {
			t.Errorf("message misses error detail: %q", msg)
		}
	})
}
