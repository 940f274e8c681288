package journey

import (
	"context"
	"log/slog"
	"time"

	"github.com/ayoisaiah/focusexpress/flavor"
	"github.com/ayoisaiah/focusexpress/internal/models"
)

const (
	// DefaultTick is the countdown resolution.
	DefaultTick = time.Second
	// DefaultTipInterval is how often tips rotate while running.
	DefaultTipInterval = 30 * time.Second

	eventBuffer = 64
)

// FlavorSource provides flavor data for a destination. Implementations must
// not fail: errors are replaced with fallback data.
type FlavorSource interface {
	Fetch(ctx context.Context, destination, task string) flavor.Data
}

// Player plays sound effects and background music.
type Player interface {
	PlayEffect(name string)
	PlayTrack(i int)
	PauseMusic()
}

// Recorder persists finished journeys.
type Recorder interface {
	Record(sess models.FocusSession) error
}

// Update is published after every handled event.
type Update struct {
	Err   error
	State State
}

// Config holds the collaborators of a Controller. Nil collaborators are
// skipped.
type Config struct {
	Flavor      FlavorSource
	Player      Player
	Recorder    Recorder
	Scheduler   Scheduler
	OnUpdate    func(Update)
	OnArrival   func(models.FocusSession)
	Tick        time.Duration
	TipInterval time.Duration
}

// Controller owns the journey state. Events are processed one at a time on
// the goroutine that calls Run.
type Controller struct {
	ticker  Task
	tips    Task
	abandon Task
	machine *Machine
	events  chan Event
	done    chan struct{}
	async   func(func())
	now     func() time.Time
	cfg     Config
	state   State
	tickGen uint64
	tipGen  uint64
}

// NewController returns a controller starting from initial.
func NewController(m *Machine, initial State, cfg Config) *Controller {
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewScheduler()
	}

	if cfg.Tick <= 0 {
		cfg.Tick = DefaultTick
	}

	if cfg.TipInterval <= 0 {
		cfg.TipInterval = DefaultTipInterval
	}

	return &Controller{
		machine: m,
		state:   initial,
		cfg:     cfg,
		events:  make(chan Event, eventBuffer),
		done:    make(chan struct{}),
		now:     time.Now,
		async: func(fn func()) {
			go fn()
		},
	}
}

// Send queues an event. It is safe to call from any goroutine and returns
// without effect once the controller has stopped.
func (c *Controller) Send(ev Event) {
	select {
	case c.events <- ev:
	case <-c.done:
	}
}

// Run processes events until ctx is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	defer close(c.done)
	defer c.stopTasks()

	c.publish(nil)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-c.events:
			c.handle(ctx, ev)
		}
	}
}

func (c *Controller) handle(ctx context.Context, ev Event) {
	switch e := ev.(type) {
	case Tick:
		if c.ticker == nil || e.Gen != c.tickGen {
			return
		}
	case RotateTip:
		if c.tips == nil || e.Gen != c.tipGen {
			return
		}
	case Board:
		if e.At.IsZero() {
			e.At = c.now()
			ev = e
		}
	case Abandon:
		if e.At.IsZero() {
			e.At = c.now()
			ev = e
		}
	}

	next, intents, err := c.machine.Apply(c.state, ev)
	c.state = next

	for _, in := range intents {
		c.execute(ctx, in)
	}

	if err != nil {
		slog.Debug(
			"journey event rejected",
			slog.String("event", ev.name()),
			slog.Any("error", err),
		)
	}

	c.publish(err)
}

func (c *Controller) publish(err error) {
	if c.cfg.OnUpdate != nil {
		c.cfg.OnUpdate(Update{State: c.state, Err: err})
	}
}

func (c *Controller) execute(ctx context.Context, in Intent) {
	switch in := in.(type) {
	case PlaySound:
		if c.cfg.Player != nil {
			c.cfg.Player.PlayEffect(string(in.Effect))
		}
	case PlayMusic:
		if c.cfg.Player != nil {
			c.cfg.Player.PlayTrack(in.Track)
		}
	case PauseMusic:
		if c.cfg.Player != nil {
			c.cfg.Player.PauseMusic()
		}
	case StartTicker:
		stop(&c.ticker)

		c.tickGen++
		gen := c.tickGen

		c.ticker = c.cfg.Scheduler.Every(c.cfg.Tick, func() {
			c.Send(Tick{Gen: gen})
		})
	case StopTicker:
		stop(&c.ticker)
	case StartTipRotation:
		stop(&c.tips)

		c.tipGen++
		gen := c.tipGen

		c.tips = c.cfg.Scheduler.Every(c.cfg.TipInterval, func() {
			c.Send(RotateTip{Gen: gen})
		})
	case StopTipRotation:
		stop(&c.tips)
	case ArmAbandonWindow:
		stop(&c.abandon)

		armedAt := in.ArmedAt

		c.abandon = c.cfg.Scheduler.After(in.Window, func() {
			c.Send(AbandonExpired{ArmedAt: armedAt})
		})
	case CancelAbandonWindow:
		stop(&c.abandon)
	case FetchFlavor:
		c.fetch(ctx, in)
	case RecordSession:
		c.record(in.Session)
	}
}

func (c *Controller) fetch(ctx context.Context, in FetchFlavor) {
	src := c.cfg.Flavor
	name := in.Destination.Name

	// handled inline: Send from the Run goroutine blocks once the
	// event buffer is full
	if src == nil {
		c.handle(ctx, FlavorLoaded{
			Selection: in.Selection,
			Data:      flavor.Fallback(name),
		})

		return
	}

	c.async(func() {
		data := src.Fetch(ctx, name, in.Task)

		c.Send(FlavorLoaded{Selection: in.Selection, Data: data})
	})
}

func (c *Controller) record(sess models.FocusSession) {
	if c.cfg.Recorder != nil {
		if err := c.cfg.Recorder.Record(sess); err != nil {
			slog.Warn(
				"unable to record session",
				slog.String("id", sess.ID),
				slog.Any("error", err),
			)
		}
	}

	slog.Info(
		"journey completed",
		slog.String("id", sess.ID),
		slog.String("destination", sess.Destination.Name),
		slog.Int("duration_minutes", sess.DurationMinutes),
		slog.Int("actual_duration_minutes", sess.ActualDurationMinutes),
	)

	if c.cfg.OnArrival != nil {
		c.cfg.OnArrival(sess)
	}
}

func (c *Controller) stopTasks() {
	stop(&c.ticker)
	stop(&c.tips)
	stop(&c.abandon)
}

func stop(t *Task) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}
