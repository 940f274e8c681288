package journey

import (
	"time"

	"github.com/ayoisaiah/focusexpress/catalog"
	"github.com/ayoisaiah/focusexpress/flavor"
	"github.com/ayoisaiah/focusexpress/internal/models"
	"github.com/ayoisaiah/focusexpress/label"
)

// Event is an input to the journey state machine.
type Event interface {
	name() string
}

type (
	// SelectDestination chooses where the next journey goes.
	SelectDestination struct {
		Destination catalog.Destination
	}

	// Depart validates the mission details and opens the booking phase, or
	// the freestyle duration prompt for the freestyle destination.
	Depart struct {
		Label    *label.MissionLabel
		SubLabel string
		Task     string
	}

	// ConfirmFreestyle resolves a freestyle journey to a surprise destination.
	ConfirmFreestyle struct {
		Minutes int
	}

	// CancelFreestyle closes the freestyle duration prompt.
	CancelFreestyle struct{}

	// CancelBooking returns from the booking phase to idle.
	CancelBooking struct{}

	// Board takes a seat and starts the countdown.
	Board struct {
		At   time.Time
		Seat string
	}

	// Tick reports that one second has elapsed.
	Tick struct {
		Gen uint64
	}

	Pause struct{}

	Resume struct{}

	FinishEarly struct{}

	// Abandon arms the abandon confirmation or, when pressed again inside
	// the confirmation window, aborts the journey.
	Abandon struct {
		At time.Time
	}

	// AbandonExpired disarms the confirmation armed at ArmedAt.
	AbandonExpired struct {
		ArmedAt time.Time
	}

	// Reset books the next journey after arrival.
	Reset struct{}

	// FlavorLoaded delivers remote flavor data for a destination selection.
	FlavorLoaded struct {
		Data      flavor.Data
		Selection uint64
	}

	// RotateTip picks a new motivational tip.
	RotateTip struct {
		Gen uint64
	}

	ToggleMusic struct{}

	NextTrack struct{}

	PrevTrack struct{}
)

func (SelectDestination) name() string { return "select a destination" }
func (Depart) name() string            { return "depart" }
func (ConfirmFreestyle) name() string  { return "confirm a freestyle journey" }
func (CancelFreestyle) name() string   { return "cancel a freestyle journey" }
func (CancelBooking) name() string     { return "cancel the booking" }
func (Board) name() string             { return "board" }
func (Tick) name() string              { return "tick" }
func (Pause) name() string             { return "pause" }
func (Resume) name() string            { return "resume" }
func (FinishEarly) name() string       { return "finish early" }
func (Abandon) name() string           { return "abandon" }
func (AbandonExpired) name() string    { return "expire the abandon window" }
func (Reset) name() string             { return "book the next journey" }
func (FlavorLoaded) name() string      { return "load flavor data" }
func (RotateTip) name() string         { return "rotate tips" }
func (ToggleMusic) name() string       { return "toggle music" }
func (NextTrack) name() string         { return "skip to the next track" }
func (PrevTrack) name() string         { return "skip to the previous track" }

// Effect names a one-shot sound.
type Effect string

const (
	EffectClick     Effect = "click"
	EffectDeparture Effect = "departure"
	EffectArrival   Effect = "arrival"
)

// Intent is a side effect requested by a transition.
type Intent interface {
	intent()
}

type (
	PlaySound struct {
		Effect Effect
	}

	StartTicker struct{}

	StopTicker struct{}

	StartTipRotation struct{}

	StopTipRotation struct{}

	// ArmAbandonWindow schedules an AbandonExpired after Window.
	ArmAbandonWindow struct {
		ArmedAt time.Time
		Window  time.Duration
	}

	CancelAbandonWindow struct{}

	// FetchFlavor requests flavor data tagged with Selection. Awaited fetches
	// fill the station slot of a journey that boarded without cached data.
	FetchFlavor struct {
		Destination catalog.Destination
		Task        string
		Selection   uint64
		Awaited     bool
	}

	PlayMusic struct {
		Track int
	}

	PauseMusic struct{}

	// RecordSession appends a finished journey to the history.
	RecordSession struct {
		Session models.FocusSession
	}
)

func (PlaySound) intent()           {}
func (StartTicker) intent()         {}
func (StopTicker) intent()          {}
func (StartTipRotation) intent()    {}
func (StopTipRotation) intent()     {}
func (ArmAbandonWindow) intent()    {}
func (CancelAbandonWindow) intent() {}
func (FetchFlavor) intent()         {}
func (PlayMusic) intent()           {}
func (PauseMusic) intent()          {}
func (RecordSession) intent()       {}
