package journey

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusexpress/catalog"
	"github.com/ayoisaiah/focusexpress/flavor"
	"github.com/ayoisaiah/focusexpress/internal/models"
)

type fakeTask struct {
	fn       func()
	every    time.Duration
	after    time.Duration
	stopped  bool
	periodic bool
}

func (t *fakeTask) Stop() {
	t.stopped = true
}

// fakeScheduler records tasks and fires them on demand.
type fakeScheduler struct {
	tasks []*fakeTask
}

func (s *fakeScheduler) Every(d time.Duration, fn func()) Task {
	t := &fakeTask{fn: fn, every: d, periodic: true}
	s.tasks = append(s.tasks, t)

	return t
}

func (s *fakeScheduler) After(d time.Duration, fn func()) Task {
	t := &fakeTask{fn: fn, after: d}
	s.tasks = append(s.tasks, t)

	return t
}

func (s *fakeScheduler) live(every time.Duration) []*fakeTask {
	var out []*fakeTask

	for _, t := range s.tasks {
		if t.periodic && t.every == every && !t.stopped {
			out = append(out, t)
		}
	}

	return out
}

type fakePlayer struct {
	effects []string
	tracks  []int
	pauses  int
}

func (p *fakePlayer) PlayEffect(name string) { p.effects = append(p.effects, name) }
func (p *fakePlayer) PlayTrack(i int)        { p.tracks = append(p.tracks, i) }
func (p *fakePlayer) PauseMusic()            { p.pauses++ }

type fakeRecorder struct {
	err      error
	sessions []models.FocusSession
}

func (r *fakeRecorder) Record(sess models.FocusSession) error {
	r.sessions = append(r.sessions, sess)
	return r.err
}

type fakeFlavor struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeFlavor) Fetch(_ context.Context, destination, task string) flavor.Data {
	f.mu.Lock()
	f.calls = append(f.calls, destination+"|"+task)
	f.mu.Unlock()

	d := flavor.Fallback(destination)
	d.Station.Name = destination + " Hbf"

	return d
}

type harness struct {
	c        *Controller
	sched    *fakeScheduler
	player   *fakePlayer
	recorder *fakeRecorder
	flavor   *fakeFlavor
	updates  []Update
	arrivals []models.FocusSession
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		sched:    &fakeScheduler{},
		player:   &fakePlayer{},
		recorder: &fakeRecorder{},
		flavor:   &fakeFlavor{},
	}

	m := newTestMachine(WithTracks(2))

	h.c = NewController(m, m.Initial(catalog.Default()), Config{
		Flavor:      h.flavor,
		Player:      h.player,
		Recorder:    h.recorder,
		Scheduler:   h.sched,
		TipInterval: 30 * time.Second,
		OnUpdate: func(u Update) {
			h.updates = append(h.updates, u)
		},
		OnArrival: func(sess models.FocusSession) {
			h.arrivals = append(h.arrivals, sess)
		},
	})

	h.c.async = func(fn func()) { fn() }
	h.c.now = func() time.Time { return departedAt }

	return h
}

// drain handles every queued event without blocking.
func (h *harness) drain() {
	for {
		select {
		case ev := <-h.c.events:
			h.c.handle(context.Background(), ev)
		default:
			return
		}
	}
}

func (h *harness) send(ev Event) {
	h.c.handle(context.Background(), ev)
	h.drain()
}

func (h *harness) last() Update {
	return h.updates[len(h.updates)-1]
}

func (h *harness) fire(every time.Duration, n int) {
	for range n {
		for _, t := range h.sched.live(every) {
			t.fn()
		}

		h.drain()
	}
}

func (h *harness) board(t *testing.T, dest string) {
	t.Helper()

	h.send(SelectDestination{Destination: mustDestination(t, dest)})
	h.send(Depart{Label: mustLabel(t, "code"), Task: "refactor"})
	h.send(Board{Seat: "3D"})

	require.Equal(t, Running, h.c.state.Status)
}

func TestControllerSingleTicker(t *testing.T) {
	h := newHarness(t)
	h.board(t, "commute")

	require.Len(t, h.sched.live(DefaultTick), 1)

	h.send(Pause{})
	assert.Empty(t, h.sched.live(DefaultTick))
	assert.Empty(t, h.sched.live(30*time.Second))

	h.send(Resume{})
	h.send(Pause{})
	h.send(Resume{})
	assert.Len(t, h.sched.live(DefaultTick), 1)
	assert.Len(t, h.sched.live(30*time.Second), 1)
}

func TestControllerDropsStaleTicks(t *testing.T) {
	h := newHarness(t)
	h.board(t, "commute")

	old := h.sched.live(DefaultTick)[0]

	h.send(Pause{})
	h.send(Resume{})

	left := h.c.state.TimeLeft

	// a tick queued by the stopped ticker must not count
	old.fn()
	h.drain()
	assert.Equal(t, left, h.c.state.TimeLeft)

	h.fire(DefaultTick, 1)
	assert.Equal(t, left-1, h.c.state.TimeLeft)
}

func TestControllerCompletesJourney(t *testing.T) {
	h := newHarness(t)
	h.board(t, "commute")

	assert.Equal(t, []string{"Suburbs|"}, h.flavor.calls[:1])

	h.fire(DefaultTick, 900)

	s := h.c.state
	assert.Equal(t, Completed, s.Status)
	assert.Equal(t, 0, s.TimeLeft)
	assert.Empty(t, h.sched.live(DefaultTick))
	assert.Empty(t, h.sched.live(30*time.Second))

	require.Len(t, h.recorder.sessions, 1)
	require.Len(t, h.arrivals, 1)

	sess := h.recorder.sessions[0]
	assert.Equal(t, 15, sess.ActualDurationMinutes)
	assert.Equal(t, "3D", sess.Seat)
	assert.Equal(t, departedAt, sess.StartTime)
	require.NotNil(t, sess.Station)
	assert.Equal(t, "Suburbs Hbf", sess.Station.Name)

	assert.Equal(t, "departure", h.player.effects[len(h.player.effects)-2])
	assert.Equal(t, "arrival", h.player.effects[len(h.player.effects)-1])
}

func TestControllerRecordFailureIsNotFatal(t *testing.T) {
	h := newHarness(t)
	h.recorder.err = errors.New("disk full")
	h.board(t, "commute")

	h.send(FinishEarly{})

	assert.Equal(t, Completed, h.c.state.Status)
	assert.NoError(t, h.last().Err)
	assert.Len(t, h.arrivals, 1)
}

func TestControllerAbandonWindow(t *testing.T) {
	h := newHarness(t)
	h.board(t, "paris")

	h.send(Abandon{})
	assert.True(t, h.c.state.ConfirmAbandon)

	var window *fakeTask

	for _, task := range h.sched.tasks {
		if !task.periodic && !task.stopped {
			window = task
		}
	}

	require.NotNil(t, window)
	assert.Equal(t, DefaultAbandonWindow, window.after)

	window.fn()
	h.drain()

	assert.False(t, h.c.state.ConfirmAbandon)
	assert.Equal(t, Running, h.c.state.Status)

	h.send(Abandon{})
	h.send(Abandon{})

	assert.Equal(t, Idle, h.c.state.Status)
	assert.Empty(t, h.sched.live(DefaultTick))
	assert.Empty(t, h.recorder.sessions)
}

func TestControllerPublishesValidationErrors(t *testing.T) {
	h := newHarness(t)

	h.send(Depart{})

	u := h.last()
	assert.True(t, errors.Is(u.Err, errNoLabel))
	assert.Equal(t, Idle, u.State.Status)
	assert.False(t, u.State.Booking)
	assert.Equal(t, []string{"click"}, h.player.effects)
}

func TestControllerStaleFlavor(t *testing.T) {
	h := newHarness(t)

	var pending []func()

	h.c.async = func(fn func()) {
		pending = append(pending, fn)
	}

	h.send(SelectDestination{Destination: mustDestination(t, "rio")})
	h.send(SelectDestination{Destination: mustDestination(t, "cairo")})

	require.Len(t, pending, 2)

	// the response for the newer selection arrives first
	pending[1]()
	h.drain()
	pending[0]()
	h.drain()

	require.NotNil(t, h.c.state.Flavor)
	assert.Equal(t, "Cairo Hbf", h.c.state.Flavor.Station.Name)
}

func TestControllerFallbackFlavorWithFullQueue(t *testing.T) {
	m := newTestMachine()

	c := NewController(m, m.Initial(catalog.Default()), Config{
		Scheduler: &fakeScheduler{},
	})

	for range eventBuffer {
		c.events <- RotateTip{}
	}

	cairo := mustDestination(t, "cairo")
	handled := make(chan struct{})

	go func() {
		defer close(handled)

		c.handle(context.Background(), SelectDestination{Destination: cairo})
	}()

	select {
	case <-handled:
	case <-time.After(time.Second):
		t.Fatal("selecting a destination blocked on a full event queue")
	}

	require.NotNil(t, c.state.Flavor)
	assert.Equal(t, flavor.Fallback(cairo.Name), *c.state.Flavor)
	assert.Len(t, c.events, eventBuffer)
}

func TestControllerMusic(t *testing.T) {
	h := newHarness(t)
	h.board(t, "tokyo")

	h.send(ToggleMusic{})
	h.send(NextTrack{})
	h.send(Pause{})

	assert.Equal(t, []int{0, 1}, h.player.tracks)
	assert.Equal(t, 1, h.player.pauses)
}

func TestControllerRun(t *testing.T) {
	m := newTestMachine()

	updates := make(chan Update, 8)

	c := NewController(m, m.Initial(catalog.Default()), Config{
		Scheduler: &fakeScheduler{},
		OnUpdate: func(u Update) {
			updates <- u
		},
	})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)

	go func() {
		done <- c.Run(ctx)
	}()

	<-updates

	c.Send(SelectDestination{Destination: mustDestination(t, "sydney")})

	select {
	case u := <-updates:
		assert.Equal(t, "sydney", u.State.Destination.ID)
	case <-time.After(time.Second):
		t.Fatal("no update received")
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("controller did not stop")
	}

	// sending after shutdown must not block
	c.Send(Pause{})
}
