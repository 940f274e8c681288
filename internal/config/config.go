// Package config loads and validates FocusExpress settings from the config
// file and command-line flags
package config

import (
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings.
	Config struct {
		CLI           CLIConfig          `mapstructure:"-"`
		Journey       JourneyConfig      `mapstructure:"journey"`
		Flavor        FlavorConfig       `mapstructure:"flavor"`
		Sound         SoundConfig        `mapstructure:"sound"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Display       DisplayConfig      `mapstructure:"display"`
		Log           LogConfig          `mapstructure:"log"`
		PathToConfig  string             `mapstructure:"-"`
		PathToDB      string             `mapstructure:"-"`
	}

	// JourneyConfig holds the timing of a journey.
	JourneyConfig struct {
		DefaultDestination string        `mapstructure:"default_destination"`
		AbandonWindow      time.Duration `mapstructure:"abandon_window"`
		TipInterval        time.Duration `mapstructure:"tip_interval"`
		Tick               time.Duration `mapstructure:"tick"`
	}

	// FlavorConfig holds the settings of the remote flavor service.
	FlavorConfig struct {
		Model     string        `mapstructure:"model"`
		APIKey    string        `mapstructure:"api_key"`
		Timeout   time.Duration `mapstructure:"timeout"`
		CacheTTL  time.Duration `mapstructure:"cache_ttl"`
		CacheSize int           `mapstructure:"cache_size"`
		Enabled   bool          `mapstructure:"enabled"`
	}

	// Track is an entry in the music playlist. Source is a file path or an
	// http(s) URL.
	Track struct {
		Name   string `mapstructure:"name"`
		Source string `mapstructure:"source"`
	}

	// SoundConfig holds the sound effects and the music playlist.
	SoundConfig struct {
		Click        string  `mapstructure:"click"`
		Departure    string  `mapstructure:"departure"`
		Arrival      string  `mapstructure:"arrival"`
		Playlist     []Track `mapstructure:"playlist"`
		Volume       int     `mapstructure:"volume"`
		Enabled      bool    `mapstructure:"enabled"`
		MusicOnStart bool    `mapstructure:"music_on_start"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SettingsConfig holds miscellaneous settings.
	SettingsConfig struct {
		ArrivalCmd string `mapstructure:"arrival_cmd"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// LogConfig holds the log file settings.
	LogConfig struct {
		Level      string `mapstructure:"level"`
		MaxSizeMB  int    `mapstructure:"max_size_mb"`
		MaxBackups int    `mapstructure:"max_backups"`
	}

	// CLIConfig holds the choices made with command-line flags for the
	// current journey only.
	CLIConfig struct {
		Destination string
		Label       string
		SubLabel    string
		Task        string
		Seat        string
		Freestyle   time.Duration
		Music       bool
		NoFlavor    bool
		NoSound     bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.1.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order. The result is
// validated.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
