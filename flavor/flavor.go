// Package flavor fetches the decorative data shown during a journey: the
// local time and weather at the destination and a fictional arrival station.
// Failures never reach callers; they receive fallback data instead.
package flavor

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/ayoisaiah/focusexpress/internal/models"
)

const (
	DefaultTimeout   = 20 * time.Second
	DefaultCacheTTL  = 10 * time.Minute
	DefaultCacheSize = 32

	fallbackTemp        = 20
	fallbackCondition   = "Clear"
	fallbackLocalTime   = "--:--"
	fallbackDescription = "Welcome to your destination."
)

// Data is the flavor for one destination.
type Data struct {
	LocalTime    string               `json:"local_time"`
	Weather      models.Weather       `json:"weather"`
	Station      models.Station       `json:"station"`
	Attributions []models.Attribution `json:"grounding_attributions"`
	Fallback     bool                 `json:"fallback,omitempty"`
}

// Source retrieves flavor data from a remote service.
type Source interface {
	Lookup(ctx context.Context, destination, task string) (Data, error)
}

// Fallback returns the deterministic data used when a lookup fails.
func Fallback(destination string) Data {
	return Data{
		Weather: models.Weather{
			Temp:      fallbackTemp,
			Condition: fallbackCondition,
		},
		Station: models.Station{
			Name:        destination + " Terminal",
			Description: fallbackDescription,
			Environment: models.EnvCity,
		},
		LocalTime:    fallbackLocalTime,
		Attributions: []models.Attribution{},
		Fallback:     true,
	}
}

// EnvironmentFor maps a weather condition to the scenery that suits it.
func EnvironmentFor(condition string) models.Environment {
	c := strings.ToLower(condition)

	switch {
	case strings.Contains(c, "snow"):
		return models.EnvSnow
	case strings.Contains(c, "rain"), strings.Contains(c, "drizzle"):
		return models.EnvCity
	case strings.Contains(c, "storm"):
		return models.EnvCyberpunk
	case strings.Contains(c, "fog"), strings.Contains(c, "mist"):
		return models.EnvNature
	case strings.Contains(c, "cloud"):
		return models.EnvNature
	case strings.Contains(c, "clear"), strings.Contains(c, "sun"):
		return models.EnvClear
	case strings.Contains(c, "hot"):
		return models.EnvDesert
	}

	return models.EnvCity
}

// normalise validates d and repairs the fields that can be derived.
func normalise(d Data) (Data, error) {
	d.Station.Name = strings.TrimSpace(d.Station.Name)
	if d.Station.Name == "" {
		return d, errIncompleteResponse.Fmt("a station name")
	}

	d.Weather.Condition = strings.TrimSpace(d.Weather.Condition)
	if d.Weather.Condition == "" {
		return d, errIncompleteResponse.Fmt("a weather condition")
	}

	d.LocalTime = strings.TrimSpace(d.LocalTime)
	if d.LocalTime == "" {
		d.LocalTime = fallbackLocalTime
	}

	d.Station.Description = strings.TrimSpace(d.Station.Description)
	if d.Station.Description == "" {
		d.Station.Description = fallbackDescription
	}

	env := models.Environment(strings.ToLower(string(d.Station.Environment)))
	if !env.Valid() {
		env = EnvironmentFor(d.Weather.Condition)
	}

	d.Station.Environment = env

	if d.Attributions == nil {
		d.Attributions = []models.Attribution{}
	}

	d.Fallback = false

	return d, nil
}

// Fetcher wraps a Source with a timeout, a cache and the fallback policy.
type Fetcher struct {
	source  Source
	cache   *expirable.LRU[string, Data]
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout bounds each remote lookup.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithCache sets the size and lifetime of the result cache.
func WithCache(size int, ttl time.Duration) Option {
	return func(f *Fetcher) {
		if size > 0 {
			f.cache = expirable.NewLRU[string, Data](size, nil, ttl)
		}
	}
}

// NewFetcher returns a Fetcher backed by src. A nil source always yields
// fallback data.
func NewFetcher(src Source, opts ...Option) *Fetcher {
	f := &Fetcher{
		source:  src,
		timeout: DefaultTimeout,
		cache: expirable.NewLRU[string, Data](
			DefaultCacheSize,
			nil,
			DefaultCacheTTL,
		),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

func cacheKey(destination, task string) string {
	return strings.ToLower(destination) + "\x00" + strings.TrimSpace(task)
}

// Fetch returns flavor data for destination. It never fails.
func (f *Fetcher) Fetch(ctx context.Context, destination, task string) Data {
	key := cacheKey(destination, task)

	if d, ok := f.cache.Get(key); ok {
		return d
	}

	d, err := f.lookup(ctx, destination, task)
	if err != nil {
		slog.Warn(
			"using fallback flavor data",
			slog.String("destination", destination),
			slog.Any("error", err),
		)

		return Fallback(destination)
	}

	f.cache.Add(key, d)

	return d
}

func (f *Fetcher) lookup(
	ctx context.Context,
	destination, task string,
) (d Data, err error) {
	if f.source == nil {
		return d, errDisabled
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error(
				"flavor source panicked",
				slog.String("destination", destination),
				slog.Any("panic", r),
			)

			err = errEmptyResponse
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	d, err = f.source.Lookup(ctx, destination, task)
	if err != nil {
		return d, err
	}

	return normalise(d)
}
