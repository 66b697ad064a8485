package slack

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	slackapi "github.com/slack-go/slack"

	"github.com/m-mizutani/stevedore/pkg/domain/interfaces"
)

type notifier struct {
	webhookURL string
}

// NewNotifier creates a Notifier posting to a Slack incoming webhook
func NewNotifier(webhookURL string) interfaces.Notifier {
	return &notifier{webhookURL: webhookURL}
}

// Notify posts a plain text message to the configured webhook
func (n *notifier) Notify(ctx context.Context, text string) error {
	msg := &slackapi.WebhookMessage{Text: text}

	if err := slackapi.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post slack notification")
	}

	return nil
}
