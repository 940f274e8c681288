package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/focusexpress/catalog"
	"github.com/ayoisaiah/focusexpress/internal/timeutil"
)

const asciiLogo = `
 ___ ___   ___ _   _ ___   _____  _____ ___ ___ ___ ___
| __/ _ \ / __| | | / __| | __\ \/ / _ \ _ \ __/ __/ __|
| _| (_) | (__| |_| \__ \ | _| >  <|  _/   / _|\__ \__ \
|_| \___/ \___|\___/|___/ |___/_/\_\_| |_|_\___|___/___/`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	DefaultDestination string
	APIKey             string
	SoundEnabled       bool
	MusicOnStart       bool
}

// WithPromptConfig returns an Option that configures settings via
// interactive prompts. It does nothing once a config file exists.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

func destinationOptions() []huh.Option[string] {
	all := catalog.All()
	opts := make([]huh.Option[string], 0, len(all))

	for _, d := range all {
		key := pterm.Sprintf(
			"%s, %s (%s)",
			d.Name,
			d.Region,
			timeutil.FormatHours(d.DurationMinutes),
		)

		opt := huh.NewOption(key, d.ID)
		if d.ID == catalog.DefaultID {
			opt = opt.Selected(true)
		}

		opts = append(opts, opt)
	}

	return opts
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		SoundEnabled: true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure FocusExpress for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'focusexpress edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default destination").
				Options(destinationOptions()...).
				Value(&opts.DefaultDestination),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Play sound effects?").
				Value(&opts.SoundEnabled),
			huh.NewConfirm().
				Title("Start music when the train departs?").
				Value(&opts.MusicOnStart),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Gemini API key").
				Description("Used for live weather and station details. Leave blank to skip.").
				EchoMode(huh.EchoModePassword).
				Value(&opts.APIKey),
		),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Journey.DefaultDestination = opts.DefaultDestination
	if c.Journey.DefaultDestination == "" {
		c.Journey.DefaultDestination = catalog.DefaultID
	}

	c.Sound.Enabled = opts.SoundEnabled
	c.Sound.MusicOnStart = opts.MusicOnStart
	c.Flavor.APIKey = opts.APIKey
}
