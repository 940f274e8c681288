package journey

import (
	"time"

	"github.com/ayoisaiah/focusexpress/catalog"
	"github.com/ayoisaiah/focusexpress/flavor"
	"github.com/ayoisaiah/focusexpress/internal/models"
	"github.com/ayoisaiah/focusexpress/internal/timeutil"
	"github.com/ayoisaiah/focusexpress/label"
)

// Status is the lifecycle position of a journey.
type Status int

const (
	Idle Status = iota
	Running
	Paused
	Completed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	}

	return "unknown"
}

// State is the complete journey state. It is owned by a single Controller
// and replaced wholesale on every transition.
type State struct {
	StartTime time.Time
	// ArmedAt is when the abandon confirmation was armed.
	ArmedAt     time.Time
	Label       *label.MissionLabel
	Flavor      *flavor.Data
	Station     *models.Station
	Destination catalog.Destination
	SubLabel    string
	Task        string
	Seat        string
	Tip         string
	// LastSurprise is the ID of the most recent freestyle destination. It is
	// kept across journeys so the next freestyle draw can avoid it.
	LastSurprise string
	// Selection identifies the current destination choice. Flavor results
	// tagged with an older selection are discarded.
	Selection       uint64
	Status          Status
	InitialDuration int
	TimeLeft        int
	Track           int
	Booking         bool
	// AwaitingFreestyle is set while the freestyle duration is being entered.
	AwaitingFreestyle bool
	ConfirmAbandon    bool
	LoadingStation    bool
	MusicOn           bool
}

// Active reports whether a countdown is in progress.
func (s State) Active() bool {
	return s.Status == Running || s.Status == Paused
}

// Elapsed returns the number of seconds travelled so far.
func (s State) Elapsed() int {
	return s.InitialDuration - s.TimeLeft
}

// Progress returns the completed share of the journey as a percentage.
func (s State) Progress() float64 {
	return timeutil.Progress(s.InitialDuration, s.TimeLeft)
}

// Clock returns the remaining time formatted for display.
func (s State) Clock() string {
	return timeutil.FormatClock(s.TimeLeft)
}
