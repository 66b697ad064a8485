package usecase

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/stevedore/pkg/domain/interfaces"
	"github.com/m-mizutani/stevedore/pkg/domain/model"
	"github.com/m-mizutani/stevedore/pkg/utils/async"
)

type webhookUseCase struct {
	publish  interfaces.PublishUseCase
	notifier interfaces.Notifier
	base     model.PublishRequest
}

// NewWebhook creates a new instance of WebhookUseCase. The base request
// supplies the repository and build settings shared by all runs; each
// event contributes only the triggering reference. notifier may be nil.
func NewWebhook(publish interfaces.PublishUseCase, notifier interfaces.Notifier, base model.PublishRequest) *webhookUseCase {
	return &webhookUseCase{
		publish:  publish,
		notifier: notifier,
		base:     base,
	}
}

// ProcessEvent starts the release pipeline for tag creation events. The
// pipeline runs asynchronously so the webhook response is not held open
// for the duration of a build.
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) error {
	logger := ctxlog.From(ctx)

	logger.Info("Processing webhook event",
		"id", event.ID,
		"type", event.Type,
		"ref", event.Ref,
		"repository", event.Repository,
		"sender", event.Sender,
	)

	if !event.IsTagCreation() {
		logger.Info("Ignoring non-tag event",
			"type", event.Type,
			"ref", event.Ref,
		)
		return nil
	}

	req := uc.base
	req.RunID = uuid.NewString()
	req.Ref = event.Ref

	logger.Info("Dispatching release pipeline",
		"run_id", req.RunID,
		"ref", req.Ref,
	)

	async.Dispatch(ctx, func(ctx context.Context) error {
		result, err := uc.publish.Publish(ctx, &req)
		if err != nil {
			sentry.CaptureException(err)
			uc.notify(ctx, fmt.Sprintf("Release pipeline failed for %s: %v", req.Ref, err))
			return err
		}

		uc.notify(ctx, fmt.Sprintf("Draft release %s %s is ready for review (%d assets uploaded)",
			req.App, result.Version, len(result.Uploaded)))
		return nil
	})

	return nil
}

func (uc *webhookUseCase) notify(ctx context.Context, text string) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.Notify(ctx, text); err != nil {
		ctxlog.From(ctx).Warn("Failed to send notification", "error", err)
	}
}
