package model

import "time"

// WebhookEvent represents a webhook event received from GitHub
type WebhookEvent struct {
	ID         string       // Retrieved from X-GitHub-Delivery header
	Type       TriggerEvent // Retrieved from X-GitHub-Event header
	Action     string       // Event action (e.g. opened, released); empty for push
	Repository string       // Repository full name
	Sender     string       // Sender username
	ReceivedAt time.Time    // Time when the event was received
	RawPayload []byte       // Raw JSON payload
}

// IsSupportedEvent checks if the event starts a pipeline run
func (e *WebhookEvent) IsSupportedEvent() bool {
	switch e.Type {
	case EventPush:
		return true
	case EventPullRequest:
		switch e.Action {
		case "opened", "synchronize", "reopened":
			return true
		}
		return false
	case EventRelease:
		return e.Action == "released"
	default:
		return false
	}
}
