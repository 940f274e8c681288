package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusexpress/internal/config"
	"github.com/ayoisaiah/focusexpress/internal/testutil"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig(path string) *config.Config {
	return &config.Config{
		PathToConfig: path,
		Journey: config.JourneyConfig{
			DefaultDestination: "kyoto",
			AbandonWindow:      3 * time.Second,
			TipInterval:        30 * time.Second,
			Tick:               time.Second,
		},
		Flavor: config.FlavorConfig{
			Enabled:   true,
			Model:     "gemini-2.5-flash",
			Timeout:   20 * time.Second,
			CacheTTL:  10 * time.Minute,
			CacheSize: 32,
		},
		Sound: config.SoundConfig{
			Enabled:  true,
			Volume:   60,
			Playlist: config.DefaultPlaylist,
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
		},
		Log: config.LogConfig{
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
	}
}

func clearAPIKeyEnv(t *testing.T) {
	t.Helper()

	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
}

func TestViperWriteConfig(t *testing.T) {
	clearAPIKeyEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(configPath), cfg)

	b, err := os.ReadFile(configPath)
	require.NoError(t, err)

	for _, key := range []string{
		"default_destination: kyoto",
		"abandon_window: 3s",
		"model: gemini-2.5-flash",
		"Chill Lo-Fi",
	} {
		assert.Contains(t, string(b), key)
	}

	// a second load reads the file back unchanged
	again, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	clearAPIKeyEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := testutil.CopyFile("testdata/modified_config.yml", configPath)
	require.NoError(t, err)

	want := &config.Config{
		PathToConfig: configPath,
		Journey: config.JourneyConfig{
			DefaultDestination: "paris",
			AbandonWindow:      5 * time.Second,
			TipInterval:        time.Minute,
			Tick:               time.Second,
		},
		Flavor: config.FlavorConfig{
			Enabled:   true,
			APIKey:    "file-key",
			Model:     "gemini-2.5-pro",
			Timeout:   10 * time.Second,
			CacheTTL:  5 * time.Minute,
			CacheSize: 8,
		},
		Sound: config.SoundConfig{
			Enabled:      true,
			MusicOnStart: true,
			Arrival:      "/tmp/chime.wav",
			Volume:       40,
			Playlist: []config.Track{
				{Name: "Rain", Source: "/music/rain.ogg"},
			},
		},
		Settings: config.SettingsConfig{
			ArrivalCmd: "echo arrived",
		},
		Display: config.DisplayConfig{
			TwentyFourHour: true,
		},
		Log: config.LogConfig{
			Level:      "debug",
			MaxSizeMB:  2,
			MaxBackups: 1,
		},
	}

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, want, cfg)
}

func TestAPIKeyFromEnvironment(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "env-key")

	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Flavor.APIKey)

	b, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "env-key")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		modify func(c *config.Config)
		name   string
		errMsg string
	}{
		{
			name:   "defaults are valid",
			modify: func(_ *config.Config) {},
		},
		{
			name: "unknown default destination",
			modify: func(c *config.Config) {
				c.Journey.DefaultDestination = "atlantis"
			},
			errMsg: "unknown default destination: atlantis",
		},
		{
			name: "abandon window too short",
			modify: func(c *config.Config) {
				c.Journey.AbandonWindow = 500 * time.Millisecond
			},
			errMsg: "abandon window must be between 1s and 1m0s",
		},
		{
			name: "tip interval too long",
			modify: func(c *config.Config) {
				c.Journey.TipInterval = time.Hour
			},
			errMsg: "tip interval must be between 5s and 10m0s",
		},
		{
			name: "tick too fast",
			modify: func(c *config.Config) {
				c.Journey.Tick = time.Millisecond
			},
			errMsg: "tick must be between 100ms and 10s",
		},
		{
			name: "sub-minute freestyle duration",
			modify: func(c *config.Config) {
				c.CLI.Freestyle = 30 * time.Second
			},
			errMsg: "please set a duration greater than 0 (freestyle journeys are counted in whole minutes, got 30s)",
		},
		{
			name: "negative freestyle duration",
			modify: func(c *config.Config) {
				c.CLI.Freestyle = -5 * time.Minute
			},
			errMsg: "please set a duration greater than 0 (freestyle journeys are counted in whole minutes, got -5m0s)",
		},
		{
			name: "freestyle duration in whole minutes",
			modify: func(c *config.Config) {
				c.CLI.Freestyle = 90 * time.Minute
			},
		},
		{
			name: "cache size out of range",
			modify: func(c *config.Config) {
				c.Flavor.CacheSize = 0
			},
			errMsg: "flavor cache size must be between 1 and 1024",
		},
		{
			name: "cache size ignored when flavor is disabled",
			modify: func(c *config.Config) {
				c.Flavor.Enabled = false
				c.Flavor.CacheSize = 0
			},
		},
		{
			name: "volume out of range",
			modify: func(c *config.Config) {
				c.Sound.Volume = 150
			},
			errMsg: "sound volume must be between 0 and 100",
		},
		{
			name: "unsupported sound format",
			modify: func(c *config.Config) {
				c.Sound.Click = "click.aiff"
			},
			errMsg: "invalid sound file format: click.aiff (must be mp3, ogg, flac, or wav)",
		},
		{
			name: "track without a source",
			modify: func(c *config.Config) {
				c.Sound.Playlist = []config.Track{{Name: "Silence"}}
			},
			errMsg: "playlist track 1 has no source",
		},
		{
			name: "unknown log level",
			modify: func(c *config.Config) {
				c.Log.Level = "verbose"
			},
			errMsg: "invalid log level: verbose (must be debug, info, warn, or error)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := defaultConfig("")
			tc.modify(c)

			err := c.Validate()
			if tc.errMsg == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tc.errMsg, err.Error())
		})
	}
}

func TestNewWrapsValidationErrors(t *testing.T) {
	invalid := func(c *config.Config) error {
		*c = *defaultConfig("")
		c.Journey.Tick = 0

		return nil
	}

	_, err := config.New(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation error")

	failing := func(_ *config.Config) error {
		return errors.New("boom")
	}

	_, err = config.New(failing)
	require.Error(t, err)
	assert.Equal(t, "config option error: boom", err.Error())
}
