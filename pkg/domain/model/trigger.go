package model

import (
	"strings"
	"time"
)

// TriggerEvent represents the repository action that starts a run
type TriggerEvent string

const (
	EventPush        TriggerEvent = "push"
	EventPullRequest TriggerEvent = "pull_request"
	EventRelease     TriggerEvent = "release"
	EventUnknown     TriggerEvent = "unknown"
)

// ParseTriggerEvent maps an event name to a TriggerEvent
func ParseTriggerEvent(s string) TriggerEvent {
	switch s {
	case "push":
		return EventPush
	case "pull_request":
		return EventPullRequest
	case "release":
		return EventRelease
	default:
		return EventUnknown
	}
}

const (
	branchRefPrefix = "refs/heads/"
	tagRefPrefix    = "refs/tags/"
	pullRefPrefix   = "refs/pull/"
)

// GitRef is a version-control reference string such as
// "refs/heads/master" or "refs/tags/v1.2.3"
type GitRef string

func (r GitRef) String() string {
	return string(r)
}

// IsBranch reports whether the ref points at a branch
func (r GitRef) IsBranch() bool {
	return strings.HasPrefix(string(r), branchRefPrefix)
}

// IsTag reports whether the ref points at a tag
func (r GitRef) IsTag() bool {
	return strings.HasPrefix(string(r), tagRefPrefix)
}

// IsPull reports whether the ref is a pull request merge ref
func (r GitRef) IsPull() bool {
	return strings.HasPrefix(string(r), pullRefPrefix)
}

// BranchName returns the branch name, or "" when the ref is not a branch ref
func (r GitRef) BranchName() string {
	if !r.IsBranch() {
		return ""
	}
	return strings.TrimPrefix(string(r), branchRefPrefix)
}

// TagName returns the tag name, or "" when the ref is not a tag ref
func (r GitRef) TagName() string {
	if !r.IsTag() {
		return ""
	}
	return strings.TrimPrefix(string(r), tagRefPrefix)
}

// TriggerContext carries the immutable inputs of one pipeline run.
// It is constructed once per trigger and never mutated afterwards.
type TriggerContext struct {
	Event      TriggerEvent // Trigger event kind
	Ref        GitRef       // Git ref the event points at
	Repository string       // Repository full name (owner/name)
	Actor      string       // User who triggered the event
	CommitSHA  string       // Commit SHA, if known
	DeliveryID string       // Webhook delivery ID or generated run ID
	ReceivedAt time.Time    // Time when the trigger was received
}
