package config

import (
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/stevedore/pkg/domain/types"
)

// Sentry holds error reporting configuration. Reporting is disabled when
// no DSN is given.
type Sentry struct {
	DSN         string `masq:"secret"`
	Environment string
}

// Flags returns CLI flags for Sentry configuration
func (c *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for error reporting (empty disables reporting)",
			Destination: &c.DSN,
			Sources:     cli.EnvVars("STEVEDORE_SENTRY_DSN", "SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Environment name attached to Sentry events",
			Value:       "production",
			Destination: &c.Environment,
			Sources:     cli.EnvVars("STEVEDORE_SENTRY_ENV"),
		},
	}
}

// Configure initializes the Sentry SDK. No-op without a DSN.
func (c *Sentry) Configure() error {
	if c.DSN == "" {
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         c.DSN,
		Environment: c.Environment,
		Release:     types.ServiceName + "@" + types.Version,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to initialize sentry")
	}

	return nil
}
