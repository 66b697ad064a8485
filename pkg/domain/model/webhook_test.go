package model_test

import (
	"testing"

	"github.com/m-mizutani/stevedore/pkg/domain/model"
)

func TestWebhookEvent_IsTagCreation(t *testing.T) {
	tests := []struct {
		name     string
		event    *model.WebhookEvent
		expected bool
	}{
		{
			name: "Create event for tag - trigger",
			event: &model.WebhookEvent{
				Type: model.EventTypeCreate,
				Ref:  "refs/tags/1.2.0",
			},
			expected: true,
		},
		{
			name: "Push event for tag - trigger",
			event: &model.WebhookEvent{
				Type: model.EventTypePush,
				Ref:  "refs/tags/v2.0.0",
			},
			expected: true,
		},
		{
			name: "Push event for branch - not a trigger",
			event: &model.WebhookEvent{
				Type: model.EventTypePush,
				Ref:  "refs/heads/main",
			},
			expected: false,
		},
		{
			name: "Create event for branch - not a trigger",
			event: &model.WebhookEvent{
				Type: model.EventTypeCreate,
				Ref:  "feature/installer",
			},
			expected: false,
		},
		{
			name: "Unknown event type with tag ref - not a trigger",
			event: &model.WebhookEvent{
				Type: model.EventTypeUnknown,
				Ref:  "refs/tags/1.2.0",
			},
			expected: false,
		},
		{
			name: "Create event without ref - not a trigger",
			event: &model.WebhookEvent{
				Type: model.EventTypeCreate,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.IsTagCreation(); got != tt.expected {
				t.Errorf("IsTagCreation() = %v, want %v", got, tt.expected)
			}
		})
	}
}
