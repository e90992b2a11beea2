package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/ascensive/stevedore/pkg/domain/model"
	"github.com/ascensive/stevedore/pkg/usecase"
)

func TestWebhookUseCase_ProcessEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   *model.WebhookEvent
		wantErr bool
	}{
		{
			name: "push event",
			event: &model.WebhookEvent{
				ID:         "test-delivery-1",
				Type:       model.EventPush,
				Repository: "ascensive/irc-rss-feed-bot",
				Sender:     "testuser",
				ReceivedAt: time.Now(),
				RawPayload: []byte(`{"ref":"refs/heads/master"}`),
			},
			wantErr: false,
		},
		{
			name: "release released event",
			event: &model.WebhookEvent{
				ID:         "test-delivery-2",
				Type:       model.EventRelease,
				Action:     "released",
				Repository: "ascensive/irc-rss-feed-bot",
				Sender:     "testuser",
				ReceivedAt: time.Now(),
				RawPayload: []byte(`{"action":"released"}`),
			},
			wantErr: false,
		},
		{
			name: "unsupported pull request action",
			event: &model.WebhookEvent{
				ID:         "test-delivery-3",
				Type:       model.EventPullRequest,
				Action:     "closed",
				Repository: "ascensive/irc-rss-feed-bot",
				Sender:     "testuser",
				ReceivedAt: time.Now(),
				RawPayload: []byte(`{"action":"closed"}`),
			},
			wantErr: false, // logged as warning, never an error
		},
		{
			name: "unknown event type",
			event: &model.WebhookEvent{
				ID:         "test-delivery-4",
				Type:       model.EventUnknown,
				Action:     "unknown",
				Repository: "ascensive/irc-rss-feed-bot",
				Sender:     "testuser",
				ReceivedAt: time.Now(),
				RawPayload: []byte(`{}`),
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewWebhook()
			ctx := context.Background()

			err := uc.ProcessEvent(ctx, tt.event)
			if (err != nil) != tt.wantErr {
				t.Errorf("ProcessEvent() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
