package interfaces

import (
	"context"

	"github.com/m-mizutani/stevedore/pkg/domain/model"
)

// PublishUseCase runs the release pipeline for one tag reference
type PublishUseCase interface {
	// Publish resolves the version, builds the installer artifacts,
	// creates (or finds) the draft release and uploads the artifacts.
	Publish(ctx context.Context, req *model.PublishRequest) (*model.PublishResult, error)
}

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// ProcessEvent processes a webhook event
	ProcessEvent(ctx context.Context, event *model.WebhookEvent) error
}
