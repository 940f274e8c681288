package config

import (
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/ayoisaiah/focusexpress/catalog"
)

var (
	minAbandonWindow = 1 * time.Second
	maxAbandonWindow = 1 * time.Minute

	minTipInterval = 5 * time.Second
	maxTipInterval = 10 * time.Minute

	minTick = 100 * time.Millisecond
	maxTick = 10 * time.Second

	minCacheSize = 1
	maxCacheSize = 1024

	validSoundExts = []string{".mp3", ".ogg", ".flac", ".wav"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateJourney(); err != nil {
		return err
	}

	if err := c.validateCLI(); err != nil {
		return err
	}

	if err := c.validateFlavor(); err != nil {
		return err
	}

	if err := c.validateSound(); err != nil {
		return err
	}

	return c.validateLog()
}

func (c *Config) validateJourney() error {
	j := c.Journey

	if j.DefaultDestination != "" {
		if _, ok := catalog.Lookup(j.DefaultDestination); !ok {
			return errUnknownDestination.Fmt(j.DefaultDestination)
		}
	}

	if j.AbandonWindow < minAbandonWindow || j.AbandonWindow > maxAbandonWindow {
		return errOutOfRange.Fmt(
			"abandon window",
			minAbandonWindow,
			maxAbandonWindow,
		)
	}

	if j.TipInterval < minTipInterval || j.TipInterval > maxTipInterval {
		return errOutOfRange.Fmt("tip interval", minTipInterval, maxTipInterval)
	}

	if j.Tick < minTick || j.Tick > maxTick {
		return errOutOfRange.Fmt("tick", minTick, maxTick)
	}

	return nil
}

// validateCLI rejects freestyle durations that round down to zero minutes.
func (c *Config) validateCLI() error {
	if d := c.CLI.Freestyle; d != 0 && d < time.Minute {
		return errFreestyleTooShort.Fmt(d)
	}

	return nil
}

func (c *Config) validateFlavor() error {
	f := c.Flavor

	if !f.Enabled {
		return nil
	}

	if f.CacheSize < minCacheSize || f.CacheSize > maxCacheSize {
		return errOutOfRange.Fmt("flavor cache size", minCacheSize, maxCacheSize)
	}

	if f.Timeout <= 0 {
		return errNonPositive.Fmt("flavor timeout")
	}

	if f.CacheTTL <= 0 {
		return errNonPositive.Fmt("flavor cache ttl")
	}

	if strings.TrimSpace(f.Model) == "" {
		return errEmptyModel
	}

	return nil
}

// validateSound checks the sound volume and file formats. URLs are only
// checked for their extension since they are resolved on first use.
func (c *Config) validateSound() error {
	s := c.Sound

	if s.Volume < 0 || s.Volume > 100 {
		return errOutOfRange.Fmt("sound volume", 0, 100)
	}

	for _, src := range []string{s.Click, s.Departure, s.Arrival} {
		if err := validateSoundSource(src); err != nil {
			return err
		}
	}

	for i, t := range s.Playlist {
		if strings.TrimSpace(t.Source) == "" {
			return errEmptyTrack.Fmt(i + 1)
		}

		if err := validateSoundSource(t.Source); err != nil {
			return err
		}
	}

	return nil
}

func validateSoundSource(src string) error {
	if src == "" {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(src))
	if !slices.Contains(validSoundExts, ext) {
		return errInvalidSoundFormat.Fmt(src)
	}

	return nil
}

func (c *Config) validateLog() error {
	var level slog.Level

	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	if c.Log.MaxSizeMB <= 0 {
		return errNonPositive.Fmt("log max size")
	}

	if c.Log.MaxBackups < 0 {
		return errNegative.Fmt("log max backups")
	}

	return nil
}

// LogLevel returns the configured log level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level

	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}

	return level
}
