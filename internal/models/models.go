// Package models defines the records shared by the journey, history, flavor
// and store packages
package models

import (
	"slices"
	"time"

	"github.com/ayoisaiah/focusexpress/catalog"
	"github.com/ayoisaiah/focusexpress/label"
)

// Environment is the scenery shown for a station.
type Environment string

const (
	EnvCity      Environment = "city"
	EnvNature    Environment = "nature"
	EnvCyberpunk Environment = "cyberpunk"
	EnvDesert    Environment = "desert"
	EnvSnow      Environment = "snow"
	EnvClear     Environment = "clear"
)

// Environments lists every valid environment.
var Environments = []Environment{
	EnvCity,
	EnvNature,
	EnvCyberpunk,
	EnvDesert,
	EnvSnow,
	EnvClear,
}

// Valid reports whether e is one of the enumerated environments.
func (e Environment) Valid() bool {
	return slices.Contains(Environments, e)
}

// Station describes the arrival point of a journey.
type Station struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Environment Environment `json:"environment"`
}

// Weather is the current weather at a destination.
type Weather struct {
	Condition string  `json:"condition"`
	Temp      float64 `json:"temp"`
}

// Attribution is a web source cited by the flavor service.
type Attribution struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// FocusSession is a completed journey as stored in the history.
type FocusSession struct {
	StartTime             time.Time            `json:"start_time"`
	Label                 *label.MissionLabel  `json:"label,omitempty"`
	Station               *Station             `json:"station,omitempty"`
	Destination           *catalog.Destination `json:"destination,omitempty"`
	ID                    string               `json:"id"`
	Task                  string               `json:"task"`
	SubLabel              string               `json:"sub_label,omitempty"`
	Seat                  string               `json:"seat,omitempty"`
	DurationMinutes       int                  `json:"duration_minutes"`
	ActualDurationMinutes int                  `json:"actual_duration_minutes"`
	Completed             bool                 `json:"completed"`
}

// LabelName returns the name of the session's label or an empty string.
func (s *FocusSession) LabelName() string {
	if s.Label == nil {
		return ""
	}

	return s.Label.Name
}
