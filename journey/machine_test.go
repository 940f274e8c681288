package journey

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusexpress/catalog"
	"github.com/ayoisaiah/focusexpress/flavor"
	"github.com/ayoisaiah/focusexpress/internal/models"
	"github.com/ayoisaiah/focusexpress/label"
)

var departedAt = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func newTestMachine(opts ...Option) *Machine {
	opts = append([]Option{
		WithRand(rand.New(rand.NewPCG(7, 11))),
		WithIDFunc(func() string { return "session-1" }),
	}, opts...)

	return NewMachine(opts...)
}

func mustLabel(t *testing.T, id string) *label.MissionLabel {
	t.Helper()

	l, ok := label.NewRegistry(nil).Get(id)
	require.True(t, ok, "preset %s", id)

	return &l
}

func mustDestination(t *testing.T, id string) catalog.Destination {
	t.Helper()

	d, ok := catalog.Lookup(id)
	require.True(t, ok, "destination %s", id)

	return d
}

func apply(t *testing.T, m *Machine, s State, ev Event) (State, []Intent) {
	t.Helper()

	next, intents, err := m.Apply(s, ev)
	require.NoError(t, err, "applying %T", ev)

	return next, intents
}

// running returns a state that has boarded a journey to dest.
func running(t *testing.T, m *Machine, dest string) State {
	t.Helper()

	s := m.Initial(catalog.Default())
	s, _ = apply(t, m, s, SelectDestination{Destination: mustDestination(t, dest)})
	s, _ = apply(t, m, s, Depart{Label: mustLabel(t, "work"), Task: "quarterly report"})
	s, _ = apply(t, m, s, Board{At: departedAt, Seat: "2b"})

	require.Equal(t, Running, s.Status)

	return s
}

func ticks(t *testing.T, m *Machine, s State, n int) (State, []Intent) {
	t.Helper()

	var intents []Intent

	for range n {
		var in []Intent

		s, in = apply(t, m, s, Tick{})
		intents = append(intents, in...)
	}

	return s, intents
}

func findRecord(intents []Intent) (models.FocusSession, bool) {
	for _, in := range intents {
		if r, ok := in.(RecordSession); ok {
			return r.Session, true
		}
	}

	return models.FocusSession{}, false
}

func TestFortyFiveMinuteJourney(t *testing.T) {
	m := newTestMachine()
	s := running(t, m, "zurich")

	assert.Equal(t, 2700, s.InitialDuration)
	assert.Equal(t, 2700, s.TimeLeft)
	assert.Equal(t, "2B", s.Seat)
	assert.Equal(t, departedAt, s.StartTime)

	s, _ = ticks(t, m, s, 600)

	assert.Equal(t, 2100, s.TimeLeft)
	assert.InDelta(t, 22.22, s.Progress(), 0.01)
	assert.Equal(t, "35:00", s.Clock())
}

func TestTickOnlyWhileRunning(t *testing.T) {
	m := newTestMachine()
	s := running(t, m, "commute")

	s, _ = ticks(t, m, s, 10)
	s, _ = apply(t, m, s, Pause{})

	paused, _ := ticks(t, m, s, 5)
	assert.Equal(t, s.TimeLeft, paused.TimeLeft)

	idle := m.Initial(catalog.Default())
	after, intents := apply(t, m, idle, Tick{})
	assert.Equal(t, idle, after)
	assert.Empty(t, intents)
}

func TestNaturalCompletion(t *testing.T) {
	m := newTestMachine()
	s := running(t, m, "commute")

	s, intents := ticks(t, m, s, 899)
	assert.Equal(t, Running, s.Status)
	assert.Equal(t, 1, s.TimeLeft)

	_, ok := findRecord(intents)
	assert.False(t, ok)

	s, intents = apply(t, m, s, Tick{})

	assert.Equal(t, Completed, s.Status)
	assert.Equal(t, 0, s.TimeLeft)
	assert.Contains(t, intents, Intent(StopTicker{}))
	assert.Contains(t, intents, Intent(PlaySound{Effect: EffectArrival}))

	sess, ok := findRecord(intents)
	require.True(t, ok)

	assert.Equal(t, "session-1", sess.ID)
	assert.Equal(t, 15, sess.DurationMinutes)
	assert.Equal(t, 15, sess.ActualDurationMinutes)
	assert.True(t, sess.Completed)
	assert.Equal(t, "quarterly report", sess.Task)
	assert.Equal(t, "Work", sess.LabelName())
	assert.Equal(t, "commute", sess.Destination.ID)
	assert.Equal(t, departedAt, sess.StartTime)

	// further ticks are ignored
	after, _ := apply(t, m, s, Tick{})
	assert.Equal(t, 0, after.TimeLeft)
	assert.Equal(t, Completed, after.Status)
}

func TestFinishEarly(t *testing.T) {
	m := newTestMachine()
	s := running(t, m, "kyoto")

	assert.Equal(t, 1500, s.InitialDuration)

	s, _ = ticks(t, m, s, 300)
	s, intents := apply(t, m, s, FinishEarly{})

	assert.Equal(t, Completed, s.Status)

	sess, ok := findRecord(intents)
	require.True(t, ok)
	assert.Equal(t, 5, sess.ActualDurationMinutes)
	assert.Equal(t, 25, sess.DurationMinutes)
}

func TestFinishEarlyWhilePausedRoundsDown(t *testing.T) {
	m := newTestMachine()
	s := running(t, m, "kyoto")

	s, _ = ticks(t, m, s, 59)
	s, _ = apply(t, m, s, Pause{})
	s, intents := apply(t, m, s, FinishEarly{})

	assert.Equal(t, Completed, s.Status)

	sess, ok := findRecord(intents)
	require.True(t, ok)
	assert.Equal(t, 0, sess.ActualDurationMinutes)
	assert.LessOrEqual(t, sess.ActualDurationMinutes, sess.DurationMinutes)
}

func TestDepartValidation(t *testing.T) {
	m := newTestMachine()
	idle := m.Initial(catalog.Default())

	testCases := []struct {
		Name string
		Ev   Depart
		Err  error
		Msg  string
	}{
		{
			Name: "no label",
			Ev:   Depart{Task: "anything"},
			Err:  errNoLabel,
			Msg:  "please select a mission label (e.g. Study, Work)",
		},
		{
			Name: "study without a subject",
			Ev:   Depart{Label: mustLabel(t, "study")},
			Err:  errNoSubLabel,
			Msg:  "please select a subject for Study",
		},
		{
			Name: "study with an unknown subject",
			Ev:   Depart{Label: mustLabel(t, "study"), SubLabel: "Alchemy"},
			Err:  errNoSubLabel,
			Msg:  "please select a subject for Study",
		},
		{
			Name: "reading without a title",
			Ev:   Depart{Label: mustLabel(t, "reading"), SubLabel: "   "},
			Err:  errNoPromptValue,
			Msg:  "please enter the book title",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			next, _, err := m.Apply(idle, tc.Ev)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.Err))
			assert.Equal(t, tc.Msg, err.Error())
			assert.Equal(t, idle, next)
		})
	}
}

func TestDepartOpensBooking(t *testing.T) {
	m := newTestMachine()
	s := m.Initial(catalog.Default())

	s, _ = apply(t, m, s, Depart{
		Label:    mustLabel(t, "study"),
		SubLabel: "Physics",
		Task:     " problem set 4 ",
	})

	assert.Equal(t, Idle, s.Status)
	assert.True(t, s.Booking)
	assert.Equal(t, "Physics", s.SubLabel)
	assert.Equal(t, "problem set 4", s.Task)

	_, _, err := m.Apply(s, SelectDestination{Destination: mustDestination(t, "paris")})
	assert.True(t, errors.Is(err, errInvalidTransition))

	s, _ = apply(t, m, s, CancelBooking{})
	assert.False(t, s.Booking)
}

func TestBoardRejectsUnknownSeat(t *testing.T) {
	m := newTestMachine()
	s := m.Initial(catalog.Default())
	s, _ = apply(t, m, s, Depart{Label: mustLabel(t, "code")})

	next, _, err := m.Apply(s, Board{Seat: "9Z"})
	assert.True(t, errors.Is(err, errInvalidSeat))
	assert.Equal(t, s, next)

	next, _ = apply(t, m, s, Board{})
	assert.Equal(t, DefaultSeat, next.Seat)
}

func TestAbandonRequiresConfirmation(t *testing.T) {
	m := newTestMachine()
	s := running(t, m, "paris")
	s, _ = ticks(t, m, s, 100)

	t0 := departedAt.Add(100 * time.Second)

	armed, intents := apply(t, m, s, Abandon{At: t0})
	assert.Equal(t, Running, armed.Status)
	assert.True(t, armed.ConfirmAbandon)
	assert.Equal(t, s.TimeLeft, armed.TimeLeft)
	assert.Contains(t, intents, Intent(ArmAbandonWindow{
		ArmedAt: t0,
		Window:  DefaultAbandonWindow,
	}))

	aborted, intents := apply(t, m, armed, Abandon{At: t0.Add(2 * time.Second)})
	assert.Equal(t, Idle, aborted.Status)
	assert.Equal(t, aborted.InitialDuration, aborted.TimeLeft)
	assert.Nil(t, aborted.Station)
	assert.False(t, aborted.ConfirmAbandon)
	assert.Contains(t, intents, Intent(StopTicker{}))

	_, recorded := findRecord(intents)
	assert.False(t, recorded)
}

func TestAbandonPressesTooFarApart(t *testing.T) {
	m := newTestMachine()
	s := running(t, m, "paris")

	t0 := departedAt.Add(time.Minute)

	armed, _ := apply(t, m, s, Abandon{At: t0})
	again, _ := apply(t, m, armed, Abandon{At: t0.Add(3*time.Second + time.Millisecond)})

	assert.Equal(t, Running, again.Status)
	assert.True(t, again.ConfirmAbandon)
	assert.Equal(t, t0.Add(3*time.Second+time.Millisecond), again.ArmedAt)
}

func TestAbandonExpiry(t *testing.T) {
	m := newTestMachine()
	s := running(t, m, "paris")

	t0 := departedAt.Add(time.Minute)
	armed, _ := apply(t, m, s, Abandon{At: t0})

	stale, _ := apply(t, m, armed, AbandonExpired{ArmedAt: t0.Add(-time.Hour)})
	assert.True(t, stale.ConfirmAbandon)

	expired, _ := apply(t, m, armed, AbandonExpired{ArmedAt: t0})
	assert.False(t, expired.ConfirmAbandon)

	// a single press after expiry only arms again
	rearmed, _ := apply(t, m, expired, Abandon{At: t0.Add(time.Second)})
	assert.Equal(t, Running, rearmed.Status)
	assert.True(t, rearmed.ConfirmAbandon)
}

func TestAbandonConfigurableWindow(t *testing.T) {
	m := newTestMachine(WithAbandonWindow(10 * time.Second))
	s := running(t, m, "paris")

	armed, _ := apply(t, m, s, Abandon{At: departedAt})
	aborted, _ := apply(t, m, armed, Abandon{At: departedAt.Add(9 * time.Second)})

	assert.Equal(t, Idle, aborted.Status)
}

func TestFreestyle(t *testing.T) {
	m := newTestMachine()
	s := m.Initial(catalog.Default())

	s, intents := apply(t, m, s, SelectDestination{Destination: catalog.Freestyle})
	assert.Empty(t, intents)

	s, _ = apply(t, m, s, Depart{Label: mustLabel(t, "writing")})
	assert.True(t, s.AwaitingFreestyle)
	assert.False(t, s.Booking)

	next, _, err := m.Apply(s, ConfirmFreestyle{Minutes: 0})
	assert.True(t, errors.Is(err, errInvalidDuration))
	assert.Equal(t, s, next)

	sel := s.Selection

	s, intents = apply(t, m, s, ConfirmFreestyle{Minutes: 95})

	assert.False(t, s.AwaitingFreestyle)
	assert.True(t, s.Booking)
	assert.True(t, s.Destination.IsSurprise())
	assert.Equal(t, 95, s.Destination.DurationMinutes)
	assert.Equal(t, 95*60, s.InitialDuration)
	assert.Equal(t, sel+1, s.Selection)
	assert.Contains(t, intents, Intent(FetchFlavor{
		Destination: s.Destination,
		Selection:   s.Selection,
	}))

	s, _ = apply(t, m, s, Board{At: departedAt})
	assert.Equal(t, 95*60, s.TimeLeft)
}

func TestCancelFreestyle(t *testing.T) {
	m := newTestMachine()
	s := m.Initial(catalog.Freestyle)

	s, _ = apply(t, m, s, Depart{Label: mustLabel(t, "work")})
	s, _ = apply(t, m, s, CancelFreestyle{})

	assert.False(t, s.AwaitingFreestyle)
	assert.Equal(t, Idle, s.Status)
}

// freestyleJourney books and boards a freestyle journey from an idle state.
func freestyleJourney(t *testing.T, m *Machine, s State) State {
	t.Helper()

	s, _ = apply(t, m, s, SelectDestination{Destination: catalog.Freestyle})
	s, _ = apply(t, m, s, Depart{Label: mustLabel(t, "work")})
	s, _ = apply(t, m, s, ConfirmFreestyle{Minutes: 10})
	s, _ = apply(t, m, s, Board{At: departedAt})

	require.True(t, s.Destination.IsSurprise())

	return s
}

func TestConsecutiveFreestyleDestinationsDiffer(t *testing.T) {
	for seed := range uint64(200) {
		m := NewMachine(WithRand(rand.New(rand.NewPCG(seed, seed+1))))

		first := freestyleJourney(t, m, m.Initial(catalog.Default()))
		assert.Equal(t, first.Destination.ID, first.LastSurprise)

		s, _ := apply(t, m, first, FinishEarly{})
		s, _ = apply(t, m, s, Reset{})
		assert.Equal(t, first.Destination.ID, s.LastSurprise)

		second := freestyleJourney(t, m, s)
		require.NotEqual(
			t,
			first.Destination.ID,
			second.Destination.ID,
			"seed %d", seed,
		)

		s, _ = apply(t, m, second, Abandon{At: departedAt})
		s, _ = apply(t, m, s, Abandon{At: departedAt})
		require.Equal(t, Idle, s.Status)

		third := freestyleJourney(t, m, s)
		require.NotEqual(
			t,
			second.Destination.ID,
			third.Destination.ID,
			"seed %d", seed,
		)
	}
}

func TestStaleFlavorIsDiscarded(t *testing.T) {
	m := newTestMachine()
	s := m.Initial(catalog.Default())

	s, _ = apply(t, m, s, SelectDestination{Destination: mustDestination(t, "paris")})
	parisSel := s.Selection

	s, _ = apply(t, m, s, SelectDestination{Destination: mustDestination(t, "london")})

	s, _ = apply(t, m, s, FlavorLoaded{Selection: parisSel, Data: flavor.Fallback("Paris")})
	assert.Nil(t, s.Flavor)

	s, _ = apply(t, m, s, FlavorLoaded{Selection: s.Selection, Data: flavor.Fallback("London")})
	require.NotNil(t, s.Flavor)
	assert.Equal(t, "London Terminal", s.Flavor.Station.Name)
}

func TestBoardUsesPrefetchedStation(t *testing.T) {
	m := newTestMachine()
	s := m.Initial(catalog.Default())

	s, _ = apply(t, m, s, SelectDestination{Destination: mustDestination(t, "berlin")})
	s, _ = apply(t, m, s, FlavorLoaded{Selection: s.Selection, Data: flavor.Fallback("Berlin")})
	s, _ = apply(t, m, s, Depart{Label: mustLabel(t, "work")})
	s, intents := apply(t, m, s, Board{At: departedAt})

	require.NotNil(t, s.Station)
	assert.Equal(t, "Berlin Terminal", s.Station.Name)
	assert.False(t, s.LoadingStation)

	for _, in := range intents {
		_, fetch := in.(FetchFlavor)
		assert.False(t, fetch, "unexpected fetch")
	}
}

func TestBoardAwaitsStationWithoutFlavor(t *testing.T) {
	m := newTestMachine()
	s := m.Initial(catalog.Default())

	s, _ = apply(t, m, s, SelectDestination{Destination: mustDestination(t, "berlin")})
	s, _ = apply(t, m, s, Depart{Label: mustLabel(t, "work"), Task: "deploy"})
	s, intents := apply(t, m, s, Board{At: departedAt})

	assert.Equal(t, Running, s.Status)
	assert.True(t, s.LoadingStation)
	assert.Nil(t, s.Station)
	assert.Contains(t, intents, Intent(FetchFlavor{
		Destination: s.Destination,
		Task:        "deploy",
		Selection:   s.Selection,
		Awaited:     true,
	}))

	s, _ = apply(t, m, s, FlavorLoaded{Selection: s.Selection, Data: flavor.Fallback("Berlin")})

	assert.False(t, s.LoadingStation)
	require.NotNil(t, s.Station)
	assert.Equal(t, models.EnvCity, s.Station.Environment)
}

func TestResetClearsJourney(t *testing.T) {
	m := newTestMachine()
	s := running(t, m, "commute")
	s, _ = apply(t, m, s, FinishEarly{})
	s, _ = apply(t, m, s, Reset{})

	assert.Equal(t, Idle, s.Status)
	assert.Empty(t, s.Task)
	assert.Empty(t, s.Seat)
	assert.Nil(t, s.Station)
	assert.Equal(t, s.InitialDuration, s.TimeLeft)

	_, _, err := m.Apply(s, Reset{})
	assert.True(t, errors.Is(err, errInvalidTransition))
}

func TestInvalidTransitions(t *testing.T) {
	m := newTestMachine()
	idle := m.Initial(catalog.Default())

	for _, ev := range []Event{Pause{}, Resume{}, FinishEarly{}, Abandon{}, Board{}} {
		next, _, err := m.Apply(idle, ev)
		assert.True(t, errors.Is(err, errInvalidTransition), "%T", ev)
		assert.Equal(t, idle, next)
	}
}

func TestTipRotation(t *testing.T) {
	m := newTestMachine()
	s := running(t, m, "tokyo")

	assert.Equal(t, Tips[0], s.Tip)

	for range 20 {
		s, _ = apply(t, m, s, RotateTip{})
		assert.Contains(t, Tips, s.Tip)
	}

	paused, _ := apply(t, m, s, Pause{})
	after, _ := apply(t, m, paused, RotateTip{})
	assert.Equal(t, paused.Tip, after.Tip)
}

func TestMusic(t *testing.T) {
	m := newTestMachine(WithTracks(3))
	s := running(t, m, "tokyo")

	s, intents := apply(t, m, s, ToggleMusic{})
	assert.True(t, s.MusicOn)
	assert.Equal(t, []Intent{PlayMusic{Track: 0}}, intents)

	s, intents = apply(t, m, s, PrevTrack{})
	assert.Equal(t, 2, s.Track)
	assert.Equal(t, []Intent{PlayMusic{Track: 2}}, intents)

	s, _ = apply(t, m, s, NextTrack{})
	assert.Equal(t, 0, s.Track)

	s, intents = apply(t, m, s, Pause{})
	assert.Contains(t, intents, Intent(PauseMusic{}))

	s, intents = apply(t, m, s, Resume{})
	assert.Contains(t, intents, Intent(PlayMusic{Track: 0}))

	_, intents = apply(t, m, s, ToggleMusic{})
	assert.Equal(t, []Intent{PauseMusic{}}, intents)
}
