package config

import "github.com/urfave/cli/v3"

// Slack holds notification configuration. Notification is disabled when
// no webhook URL is given.
type Slack struct {
	WebhookURL string `masq:"secret"`
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook for pipeline notifications (empty disables them)",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("STEVEDORE_SLACK_WEBHOOK_URL"),
		},
	}
}
