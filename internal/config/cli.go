package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Source        string
	Sound         string
	Rescan        string
	SessionCmd    string
	DisableNotify bool
	Debug         bool
	NoColor       bool
}

// WithCLIConfig returns an Option that applies command line flags on top of
// the loaded configuration.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Source:        ctx.String("source"),
			Sound:         ctx.String("sound"),
			Rescan:        ctx.String("rescan"),
			SessionCmd:    ctx.String("cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
			Debug:         ctx.Bool("debug"),
			NoColor:       ctx.Bool("no-color"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Source != "" {
		c.Tracking.Source = opts.Source
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	switch opts.Sound {
	case "":
	case "off":
		c.Notifications.Sound = ""
	default:
		c.Notifications.Sound = opts.Sound
	}

	if opts.Rescan != "" {
		dur, err := time.ParseDuration(opts.Rescan)
		if err != nil {
			return errInvalidCLIDuration.Fmt("rescan", opts.Rescan)
		}

		c.Tracking.RescanInterval = dur
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	c.CLI.Debug = opts.Debug
	c.CLI.NoColor = opts.NoColor

	return nil
}
