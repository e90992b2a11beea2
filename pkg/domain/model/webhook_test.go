package model_test

import (
	"testing"

	"github.com/ascensive/stevedore/pkg/domain/model"
)

func TestWebhookEvent_IsSupportedEvent(t *testing.T) {
	tests := []struct {
		name     string
		event    *model.WebhookEvent
		expected bool
	}{
		{
			name: "push event - supported",
			event: &model.WebhookEvent{
				Type:   model.EventPush,
				Action: "",
			},
			expected: true,
		},
		{
			name: "pull request opened - supported",
			event: &model.WebhookEvent{
				Type:   model.EventPullRequest,
				Action: "opened",
			},
			expected: true,
		},
		{
			name: "pull request synchronize - supported",
			event: &model.WebhookEvent{
				Type:   model.EventPullRequest,
				Action: "synchronize",
			},
			expected: true,
		},
		{
			name: "pull request reopened - supported",
			event: &model.WebhookEvent{
				Type:   model.EventPullRequest,
				Action: "reopened",
			},
			expected: true,
		},
		{
			name: "pull request closed - not supported",
			event: &model.WebhookEvent{
				Type:   model.EventPullRequest,
				Action: "closed",
			},
			expected: false,
		},
		{
			name: "release released - supported",
			event: &model.WebhookEvent{
				Type:   model.EventRelease,
				Action: "released",
			},
			expected: true,
		},
		{
			name: "release created - not supported",
			event: &model.WebhookEvent{
				Type:   model.EventRelease,
				Action: "created",
			},
			expected: false,
		},
		{
			name: "unknown event type",
			event: &model.WebhookEvent{
				Type:   model.EventUnknown,
				Action: "opened",
			},
			expected: false,
		},
		{
			name: "different event type",
			event: &model.WebhookEvent{
				Type:   model.TriggerEvent("issues"),
				Action: "opened",
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.event.IsSupportedEvent()
			if got != tt.expected {
				t.Errorf("IsSupportedEvent() = %v, want %v", got, tt.expected)
			}
		})
	}
}
