package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Destination   string
	Label         string
	SubLabel      string
	Task          string
	Seat          string
	Freestyle     string
	Music         bool
	NoFlavor      bool
	NoSound       bool
	DisableNotify bool
	ArrivalCmd    string
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Destination:   ctx.String("destination"),
			Label:         ctx.String("label"),
			SubLabel:      ctx.String("sub-label"),
			Task:          ctx.String("task"),
			Seat:          ctx.String("seat"),
			Freestyle:     ctx.String("freestyle"),
			Music:         ctx.Bool("music"),
			NoFlavor:      ctx.Bool("no-flavor"),
			NoSound:       ctx.Bool("no-sound"),
			DisableNotify: ctx.Bool("disable-notification"),
			ArrivalCmd:    ctx.String("arrival-cmd"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	c.CLI.Destination = strings.TrimSpace(opts.Destination)
	c.CLI.Label = strings.TrimSpace(opts.Label)
	c.CLI.SubLabel = strings.TrimSpace(opts.SubLabel)
	c.CLI.Task = strings.TrimSpace(opts.Task)
	c.CLI.Seat = strings.TrimSpace(opts.Seat)

	if opts.Freestyle != "" {
		dur, err := parseDuration(opts.Freestyle)
		if err != nil {
			return errInvalidCLIDuration.Fmt(opts.Freestyle).Wrap(err)
		}

		if dur < time.Minute {
			return errFreestyleTooShort.Fmt(opts.Freestyle)
		}

		c.CLI.Freestyle = dur
	}

	if opts.Music {
		c.CLI.Music = true
		c.Sound.MusicOnStart = true
	}

	if opts.NoFlavor {
		c.CLI.NoFlavor = true
		c.Flavor.Enabled = false
	}

	if opts.NoSound {
		c.CLI.NoSound = true
		c.Sound.Enabled = false
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.ArrivalCmd != "" {
		c.Settings.ArrivalCmd = opts.ArrivalCmd
	}

	return nil
}

// parseDuration accepts Go duration strings as well as plain minutes.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	// Try parsing as minutes in case duration unit is absent
	return time.ParseDuration(s + "m")
}
