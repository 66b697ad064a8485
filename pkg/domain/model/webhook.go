package model

import (
	"strings"
	"time"
)

// WebhookEventType represents the type of webhook event received
type WebhookEventType string

const (
	EventTypeCreate  WebhookEventType = "create"
	EventTypePush    WebhookEventType = "push"
	EventTypeUnknown WebhookEventType = "unknown"
)

// WebhookEvent represents a webhook event received from GitHub
type WebhookEvent struct {
	ID         string           // Retrieved from X-GitHub-Delivery header
	Type       WebhookEventType // Retrieved from X-GitHub-Event header
	Ref        string           // Full reference (refs/tags/<name> for tag events)
	Repository string           // Repository name
	Sender     string           // Sender username
	ReceivedAt time.Time        // Time when the event was received
	RawPayload []byte           // Raw JSON payload
}

// IsTagCreation reports whether the event is a tag creation, the only
// trigger that starts the release pipeline.
func (e *WebhookEvent) IsTagCreation() bool {
	switch e.Type {
	case EventTypeCreate, EventTypePush:
		return strings.HasPrefix(e.Ref, TagRefPrefix)
	default:
		return false
	}
}
