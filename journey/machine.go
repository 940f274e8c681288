// Package journey runs the focus countdown as a train journey: a pure state
// machine, a scheduler for its recurring work and a controller that owns the
// state and carries out side effects
package journey

import (
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/focusexpress/catalog"
	"github.com/ayoisaiah/focusexpress/internal/models"
)

// DefaultAbandonWindow is how long an armed abandon waits for confirmation.
const DefaultAbandonWindow = 3 * time.Second

// Machine computes journey transitions. It holds configuration only and
// never mutates the state it is given.
type Machine struct {
	rng           *rand.Rand
	newID         func() string
	tips          []string
	abandonWindow time.Duration
	tracks        int
}

// Option configures a Machine.
type Option func(*Machine)

// WithRand sets the random source used for surprise destinations and tips.
func WithRand(r *rand.Rand) Option {
	return func(m *Machine) {
		m.rng = r
	}
}

// WithAbandonWindow sets the abandon confirmation window.
func WithAbandonWindow(d time.Duration) Option {
	return func(m *Machine) {
		if d > 0 {
			m.abandonWindow = d
		}
	}
}

// WithTracks sets the length of the music playlist.
func WithTracks(n int) Option {
	return func(m *Machine) {
		m.tracks = n
	}
}

// WithIDFunc sets the generator for session ids.
func WithIDFunc(fn func() string) Option {
	return func(m *Machine) {
		m.newID = fn
	}
}

// NewMachine returns a Machine with the given options applied.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		rng:           rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		newID:         uuid.NewString,
		tips:          Tips,
		abandonWindow: DefaultAbandonWindow,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Initial returns an idle state with dest selected.
func (m *Machine) Initial(dest catalog.Destination) State {
	secs := dest.DurationSeconds()

	return State{
		Status:          Idle,
		Destination:     dest,
		InitialDuration: secs,
		TimeLeft:        secs,
		Tip:             m.tips[0],
	}
}

// Apply computes the state that follows ev. Invalid events return the
// original state unchanged along with an error.
func (m *Machine) Apply(s State, ev Event) (State, []Intent, error) {
	switch ev := ev.(type) {
	case SelectDestination:
		return m.selectDestination(s, ev)
	case Depart:
		return m.depart(s, ev)
	case ConfirmFreestyle:
		return m.confirmFreestyle(s, ev)
	case CancelFreestyle:
		if !s.AwaitingFreestyle {
			return s, nil, errInvalidTransition.Fmt(ev.name(), s.Status)
		}

		s.AwaitingFreestyle = false

		return s, click(), nil
	case CancelBooking:
		if !s.Booking {
			return s, nil, errInvalidTransition.Fmt(ev.name(), s.Status)
		}

		s.Booking = false

		return s, click(), nil
	case Board:
		return m.board(s, ev)
	case Tick:
		return m.tick(s)
	case Pause:
		if s.Status != Running {
			return s, nil, errInvalidTransition.Fmt(ev.name(), s.Status)
		}

		s.Status = Paused

		return s, append(click(), StopTicker{}, StopTipRotation{}, PauseMusic{}), nil
	case Resume:
		if s.Status != Paused {
			return s, nil, errInvalidTransition.Fmt(ev.name(), s.Status)
		}

		s.Status = Running

		intents := append(click(), StartTicker{}, StartTipRotation{})
		if s.MusicOn && m.tracks > 0 {
			intents = append(intents, PlayMusic{Track: s.Track})
		}

		return s, intents, nil
	case FinishEarly:
		if !s.Active() {
			return s, nil, errInvalidTransition.Fmt(ev.name(), s.Status)
		}

		s, intents := m.complete(s, true)

		return s, append(click(), intents...), nil
	case Abandon:
		return m.abandon(s, ev)
	case AbandonExpired:
		if s.ConfirmAbandon && s.ArmedAt.Equal(ev.ArmedAt) {
			s.ConfirmAbandon = false
			s.ArmedAt = time.Time{}
		}

		return s, nil, nil
	case Reset:
		if s.Status != Completed {
			return s, nil, errInvalidTransition.Fmt(ev.name(), s.Status)
		}

		s.Status = Idle
		s.TimeLeft = s.InitialDuration
		s.Task = ""
		s.Seat = ""
		s.Station = nil
		s.LoadingStation = false
		s.ConfirmAbandon = false

		return s, click(), nil
	case FlavorLoaded:
		return m.flavorLoaded(s, ev)
	case RotateTip:
		if s.Status == Running && len(m.tips) > 0 {
			s.Tip = m.tips[m.rng.IntN(len(m.tips))]
		}

		return s, nil, nil
	case ToggleMusic:
		s.MusicOn = !s.MusicOn

		return s, m.musicIntents(s), nil
	case NextTrack, PrevTrack:
		if m.tracks == 0 {
			return s, nil, nil
		}

		step := 1
		if _, ok := ev.(PrevTrack); ok {
			step = -1
		}

		s.Track = (s.Track + step + m.tracks) % m.tracks

		return s, m.musicIntents(s), nil
	}

	return s, nil, nil
}

func click() []Intent {
	return []Intent{PlaySound{Effect: EffectClick}}
}

func (m *Machine) musicIntents(s State) []Intent {
	if m.tracks == 0 || s.Status != Running {
		return nil
	}

	if s.MusicOn {
		return []Intent{PlayMusic{Track: s.Track}}
	}

	return []Intent{PauseMusic{}}
}

func (m *Machine) selectDestination(
	s State,
	ev SelectDestination,
) (State, []Intent, error) {
	if s.Status != Idle || s.Booking || s.AwaitingFreestyle {
		return s, nil, errInvalidTransition.Fmt(ev.name(), describe(s))
	}

	dest := ev.Destination
	if dest.ID == "" {
		return s, nil, errNoDestination
	}

	if !dest.IsFreestyle() && dest.DurationMinutes <= 0 {
		return s, nil, errInvalidDuration
	}

	s.Destination = dest
	s.InitialDuration = dest.DurationSeconds()
	s.TimeLeft = s.InitialDuration
	s.Selection++
	s.Flavor = nil

	if dest.IsFreestyle() {
		return s, nil, nil
	}

	return s, []Intent{
		FetchFlavor{Destination: dest, Selection: s.Selection},
	}, nil
}

func describe(s State) string {
	switch {
	case s.Booking:
		return "booking"
	case s.AwaitingFreestyle:
		return "waiting for a freestyle duration"
	}

	return s.Status.String()
}

func validateMission(ev Depart) error {
	l := ev.Label
	if l == nil {
		return errNoLabel
	}

	if l.HasSubLabels() {
		if !slices.Contains(l.SubLabels, ev.SubLabel) {
			return errNoSubLabel.Fmt(l.Name)
		}

		return nil
	}

	if l.HasPrompt() && strings.TrimSpace(ev.SubLabel) == "" {
		return errNoPromptValue.Fmt(strings.ToLower(l.CustomSubLabelPrompt))
	}

	return nil
}

func (m *Machine) depart(s State, ev Depart) (State, []Intent, error) {
	if s.Status != Idle || s.Booking || s.AwaitingFreestyle {
		return s, nil, errInvalidTransition.Fmt(ev.name(), describe(s))
	}

	if err := validateMission(ev); err != nil {
		return s, click(), err
	}

	if s.Destination.ID == "" {
		return s, click(), errNoDestination
	}

	s.Label = ev.Label
	s.SubLabel = strings.TrimSpace(ev.SubLabel)
	if !ev.Label.HasSubLabels() && !ev.Label.HasPrompt() {
		s.SubLabel = ""
	}

	s.Task = strings.TrimSpace(ev.Task)

	if s.Destination.IsFreestyle() {
		s.AwaitingFreestyle = true
	} else {
		s.Booking = true
	}

	return s, click(), nil
}

func (m *Machine) confirmFreestyle(
	s State,
	ev ConfirmFreestyle,
) (State, []Intent, error) {
	if !s.AwaitingFreestyle {
		return s, nil, errInvalidTransition.Fmt(ev.name(), describe(s))
	}

	if ev.Minutes <= 0 {
		return s, click(), errInvalidDuration
	}

	dest := catalog.Surprise(m.rng, s.LastSurprise, ev.Minutes)

	s.LastSurprise = dest.ID
	s.AwaitingFreestyle = false
	s.Booking = true
	s.Destination = dest
	s.InitialDuration = dest.DurationSeconds()
	s.TimeLeft = s.InitialDuration
	s.Selection++
	s.Flavor = nil

	return s, append(click(), FetchFlavor{
		Destination: dest,
		Selection:   s.Selection,
	}), nil
}

func (m *Machine) board(s State, ev Board) (State, []Intent, error) {
	if !s.Booking {
		return s, nil, errInvalidTransition.Fmt(ev.name(), describe(s))
	}

	seat, ok := NormaliseSeat(ev.Seat)
	if !ok {
		return s, nil, errInvalidSeat.Fmt(seat)
	}

	s.Booking = false
	s.Seat = seat
	s.Status = Running
	s.StartTime = ev.At
	s.InitialDuration = s.Destination.DurationSeconds()
	s.TimeLeft = s.InitialDuration
	s.ConfirmAbandon = false
	s.ArmedAt = time.Time{}
	s.Tip = m.tips[0]

	intents := []Intent{
		PlaySound{Effect: EffectDeparture},
		StartTicker{},
		StartTipRotation{},
	}

	if s.MusicOn && m.tracks > 0 {
		intents = append(intents, PlayMusic{Track: s.Track})
	}

	if s.Flavor != nil {
		station := s.Flavor.Station
		s.Station = &station
		s.LoadingStation = false

		return s, intents, nil
	}

	s.Station = nil
	s.LoadingStation = true

	intents = append(intents, FetchFlavor{
		Destination: s.Destination,
		Task:        s.Task,
		Selection:   s.Selection,
		Awaited:     true,
	})

	return s, intents, nil
}

func (m *Machine) tick(s State) (State, []Intent, error) {
	if s.Status != Running {
		return s, nil, nil
	}

	s.TimeLeft--

	if s.TimeLeft > 0 {
		return s, nil, nil
	}

	s.TimeLeft = 0

	s, intents := m.complete(s, false)

	return s, intents, nil
}

func (m *Machine) abandon(s State, ev Abandon) (State, []Intent, error) {
	if !s.Active() {
		return s, nil, errInvalidTransition.Fmt(ev.name(), s.Status)
	}

	if s.ConfirmAbandon && ev.At.Sub(s.ArmedAt) <= m.abandonWindow {
		s.Status = Idle
		s.TimeLeft = s.InitialDuration
		s.Station = nil
		s.LoadingStation = false
		s.ConfirmAbandon = false
		s.ArmedAt = time.Time{}

		return s, append(
			click(),
			StopTicker{},
			StopTipRotation{},
			CancelAbandonWindow{},
			PauseMusic{},
		), nil
	}

	s.ConfirmAbandon = true
	s.ArmedAt = ev.At

	return s, append(click(), ArmAbandonWindow{
		ArmedAt: ev.At,
		Window:  m.abandonWindow,
	}), nil
}

func (m *Machine) complete(s State, early bool) (State, []Intent) {
	planned := s.InitialDuration / 60

	actual := planned
	if early {
		actual = min(max(s.Elapsed()/60, 0), planned)
	}

	s.Status = Completed
	s.ConfirmAbandon = false
	s.ArmedAt = time.Time{}

	sess := models.FocusSession{
		ID:                    m.newID(),
		Task:                  s.Task,
		Label:                 s.Label,
		SubLabel:              s.SubLabel,
		DurationMinutes:       planned,
		ActualDurationMinutes: actual,
		StartTime:             s.StartTime,
		Completed:             true,
		Station:               s.Station,
		Seat:                  s.Seat,
	}

	dest := s.Destination
	sess.Destination = &dest

	return s, []Intent{
		StopTicker{},
		StopTipRotation{},
		CancelAbandonWindow{},
		PauseMusic{},
		PlaySound{Effect: EffectArrival},
		RecordSession{Session: sess},
	}
}

func (m *Machine) flavorLoaded(
	s State,
	ev FlavorLoaded,
) (State, []Intent, error) {
	if ev.Selection != s.Selection {
		return s, nil, nil
	}

	data := ev.Data
	s.Flavor = &data

	if s.LoadingStation && s.Active() {
		station := data.Station
		s.Station = &station
		s.LoadingStation = false
	}

	return s, nil, nil
}
