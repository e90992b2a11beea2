package model

import "time"

// ImageTag is a fully qualified image reference such as
// "ascensive/irc-rss-feed-bot:v1.2.3". It is derived deterministically
// from a trigger event and ref, never from ambient state.
type ImageTag string

func (t ImageTag) String() string {
	return string(t)
}

// Credential is the registry secret for a single run. It must not be
// persisted beyond the run; the token is redacted from logs.
type Credential struct {
	Username string
	Token    string `masq:"secret"`
}

// IsEmpty reports whether the credential is unusable
func (c Credential) IsEmpty() bool {
	return c.Username == "" || c.Token == ""
}

// Session represents an authenticated registry session
type Session struct {
	Username  string
	Token     string `masq:"secret"`
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Receipt proves that a push completed
type Receipt struct {
	ID       string   // Generated receipt ID
	Tag      ImageTag // Published image reference
	Digest   string   // Manifest digest reported by the registry, if any
	PushedAt time.Time
}

// PublishResult summarizes one pipeline run
type PublishResult struct {
	Tag       ImageTag // Resolved image tag, built in every run
	Published bool     // Whether the image was pushed to the registry
	Receipt   *Receipt // Push receipt, nil when not published
}
