package config

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/crier/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Sentry holds error reporting configuration
type Sentry struct {
	DSN string `masq:"secret"`
	Env string

	enabled bool
}

// Flags returns CLI flags for Sentry configuration
func (c *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN to report errors",
			Destination: &c.DSN,
			Sources:     cli.EnvVars("CRIER_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Destination: &c.Env,
			Sources:     cli.EnvVars("CRIER_SENTRY_ENV"),
		},
	}
}

// Configure initializes Sentry. It does nothing without a DSN.
func (c *Sentry) Configure() error {
	if c.DSN == "" {
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         c.DSN,
		Environment: c.Env,
		Release:     types.Version,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize Sentry", goerr.T(types.ErrTagConfig))
	}
	c.enabled = true
	return nil
}

// Capture sends err to Sentry and waits for delivery
func (c *Sentry) Capture(err error, invocationID string) {
	if !c.enabled || err == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("invocation_id", invocationID)
	})
	hub.CaptureException(err)
	hub.Flush(2 * time.Second)
}
