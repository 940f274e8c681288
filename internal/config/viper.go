package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/focusexpress/catalog"
	"github.com/ayoisaiah/focusexpress/flavor"
	"github.com/ayoisaiah/focusexpress/journey"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyDefaultDestination   = "journey.default_destination"
	keyAbandonWindow        = "journey.abandon_window"
	keyTipInterval          = "journey.tip_interval"
	keyTick                 = "journey.tick"
	keyFlavorEnabled        = "flavor.enabled"
	keyFlavorModel          = "flavor.model"
	keyFlavorAPIKey         = "flavor.api_key"
	keyFlavorTimeout        = "flavor.timeout"
	keyFlavorCacheTTL       = "flavor.cache_ttl"
	keyFlavorCacheSize      = "flavor.cache_size"
	keySoundEnabled         = "sound.enabled"
	keySoundClick           = "sound.click"
	keySoundDeparture       = "sound.departure"
	keySoundArrival         = "sound.arrival"
	keySoundPlaylist        = "sound.playlist"
	keySoundVolume          = "sound.volume"
	keyMusicOnStart         = "sound.music_on_start"
	keyNotificationsEnabled = "notifications.enabled"
	keyArrivalCmd           = "settings.arrival_cmd"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keyLogLevel             = "log.level"
	keyLogMaxSize           = "log.max_size_mb"
	keyLogMaxBackups        = "log.max_backups"
)

// apiKeyEnv lists the environment variables consulted when the config file
// carries no API key.
var apiKeyEnv = []string{"GEMINI_API_KEY", "API_KEY"}

// DefaultPlaylist is the music offered when the config file lists none.
var DefaultPlaylist = []Track{
	{
		Name:   "Chill Lo-Fi",
		Source: "https://cdn.pixabay.com/audio/2022/05/27/audio_1808fbf07a.mp3",
	},
	{
		Name:   "Empty Mind",
		Source: "https://cdn.pixabay.com/audio/2022/09/02/audio_72502a492a.mp3",
	},
	{
		Name:   "Study Beat",
		Source: "https://cdn.pixabay.com/audio/2022/01/21/audio_31743c58bd.mp3",
	},
}

// WithViperConfig returns an Option that loads configuration from Viper. A
// config file with the default values is written if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		c.PathToConfig = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func playlistDefault() []map[string]string {
	list := make([]map[string]string, len(DefaultPlaylist))

	for i, t := range DefaultPlaylist {
		list[i] = map[string]string{
			"name":   t.Name,
			"source": t.Source,
		}
	}

	return list
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyDefaultDestination, catalog.DefaultID)
	v.SetDefault(keyAbandonWindow, journey.DefaultAbandonWindow.String())
	v.SetDefault(keyTipInterval, journey.DefaultTipInterval.String())
	v.SetDefault(keyTick, journey.DefaultTick.String())
	v.SetDefault(keyFlavorEnabled, true)
	v.SetDefault(keyFlavorModel, flavor.DefaultModel)
	v.SetDefault(keyFlavorAPIKey, "")
	v.SetDefault(keyFlavorTimeout, flavor.DefaultTimeout.String())
	v.SetDefault(keyFlavorCacheTTL, flavor.DefaultCacheTTL.String())
	v.SetDefault(keyFlavorCacheSize, flavor.DefaultCacheSize)
	v.SetDefault(keySoundEnabled, true)
	v.SetDefault(keySoundClick, "")
	v.SetDefault(keySoundDeparture, "")
	v.SetDefault(keySoundArrival, "")
	v.SetDefault(keySoundPlaylist, playlistDefault())
	v.SetDefault(keySoundVolume, 60)
	v.SetDefault(keyMusicOnStart, false)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyArrivalCmd, "")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogMaxSize, 5)
	v.SetDefault(keyLogMaxBackups, 3)

	// answers from the first-run prompt take precedence over the defaults
	if c.Journey.DefaultDestination != "" {
		v.SetDefault(keyDefaultDestination, c.Journey.DefaultDestination)
		v.SetDefault(keyMusicOnStart, c.Sound.MusicOnStart)
		v.SetDefault(keySoundEnabled, c.Sound.Enabled)
		v.SetDefault(keyFlavorAPIKey, c.Flavor.APIKey)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	if c.Flavor.APIKey == "" {
		for _, env := range apiKeyEnv {
			if key := os.Getenv(env); key != "" {
				c.Flavor.APIKey = key
				break
			}
		}
	}

	return nil
}
