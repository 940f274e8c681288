// Package timer presents a journey in the terminal. It renders the snapshots
// published by the journey controller and turns key presses into events.
package timer

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/focusexpress/catalog"
	"github.com/ayoisaiah/focusexpress/internal/models"
	"github.com/ayoisaiah/focusexpress/journey"
	"github.com/ayoisaiah/focusexpress/label"
)

type (
	// UpdateMsg carries a controller snapshot into the program.
	UpdateMsg journey.Update

	// ArrivedMsg carries the session recorded on arrival.
	ArrivedMsg models.FocusSession
)

// Sender delivers events to the journey controller.
type Sender interface {
	Send(ev journey.Event)
}

// Preset holds journey choices made up front, usually with command-line
// flags. Preset values are used once, for the first journey.
type Preset struct {
	Destination      string
	Label            string
	SubLabel         string
	Task             string
	Seat             string
	FreestyleMinutes int
}

// complete reports whether the preset describes a whole booking.
func (p Preset) complete() bool {
	return p.Destination != "" && p.Label != ""
}

// Options configures the Model.
type Options struct {
	Registry       *label.Registry
	Now            func() time.Time
	Tracks         []string
	Preset         Preset
	Style          Style
	TwentyFourHour bool
}

// Model is the bubbletea model of the journey screen.
type Model struct {
	sender   Sender
	form     *huh.Form
	registry *label.Registry
	err      error
	arrived  *models.FocusSession
	now      func() time.Time
	keys     keymap
	state    journey.State
	help     help.Model
	style    Style
	tracks   []string
	preset   Preset
	plan     plan
	progress progress.Model
	spinner  spinner.Model
	kind     formKind
	width    int
	ready    bool
	// presetUsed is set once the preset has been applied.
	presetUsed      bool
	presetDeparted  bool
	presetFreestyle bool
	twentyFourHour  bool
}

// New returns a Model that sends events to sender.
func New(sender Sender, opts Options) *Model {
	if opts.Registry == nil {
		opts.Registry = label.NewRegistry(nil)
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	m := &Model{
		sender:         sender,
		registry:       opts.Registry,
		now:            opts.Now,
		keys:           defaultKeymap,
		help:           help.New(),
		style:          opts.Style,
		tracks:         opts.Tracks,
		preset:         opts.Preset,
		presetUsed:     !opts.Preset.complete(),
		twentyFourHour: opts.TwentyFourHour,
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
		),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	m.progress.Width = maxWidth

	if l, ok := m.registry.Active(); ok {
		m.plan.labelID = l.ID
		m.plan.subLabel = m.registry.ActiveSubLabel()
	}

	m.plan.seat = opts.Preset.Seat
	m.plan.task = opts.Preset.Task
	m.plan.minutes = 25

	return m
}

func (m *Model) send(ev journey.Event) {
	m.sender.Send(ev)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// applyPreset sends the preset choices for the booking step the state is
// in. It reports whether the step was handled.
func (m *Model) applyPreset() bool {
	if m.presetUsed {
		return false
	}

	s := m.state

	switch {
	case s.AwaitingFreestyle:
		if m.preset.FreestyleMinutes <= 0 || (m.presetFreestyle && m.err != nil) {
			m.presetUsed = true
			return false
		}

		if !m.presetFreestyle {
			m.presetFreestyle = true
			m.send(journey.ConfirmFreestyle{Minutes: m.preset.FreestyleMinutes})
		}

		return true
	case s.Booking:
		m.presetUsed = true

		if m.preset.Seat == "" {
			return false
		}

		m.send(journey.Board{Seat: m.preset.Seat})

		return true
	case s.Status == journey.Idle:
		if m.presetDeparted {
			if m.err != nil {
				// the preset was rejected; fall back to the forms
				m.presetUsed = true
				return false
			}

			return true
		}

		d, ok := catalog.Lookup(m.preset.Destination)
		if !ok {
			m.presetUsed = true
			return false
		}

		m.plan.destination = d.ID

		if l, ok := m.registry.Get(m.preset.Label); ok {
			m.plan.labelID = l.ID
		} else {
			m.plan.labelID = m.preset.Label
		}

		m.plan.subLabel = m.preset.SubLabel
		m.presetDeparted = true

		m.submitPlan()

		return true
	}

	m.presetUsed = true

	return false
}

// syncForm shows the form that matches the booking step of the current
// state.
func (m *Model) syncForm() tea.Cmd {
	want := noForm

	switch {
	case m.state.AwaitingFreestyle:
		want = freestyleForm
	case m.state.Booking:
		want = seatForm
	case m.state.Status == journey.Idle:
		want = planForm
	}

	if want == noForm {
		m.form, m.kind = nil, noForm
		return nil
	}

	if m.applyPreset() {
		m.form, m.kind = nil, noForm
		return nil
	}

	if want == m.kind && m.form != nil {
		return nil
	}

	switch want {
	case planForm:
		if m.plan.destination == "" || m.state.Destination.IsSurprise() {
			m.plan.destination = m.state.Destination.ID
		}

		if m.state.Destination.IsSurprise() {
			m.plan.destination = catalog.FreestyleID
		}

		m.form = m.newPlanForm()
	case freestyleForm:
		m.form = m.newFreestyleForm()
	case seatForm:
		m.form = m.newSeatForm()
	}

	m.kind = want

	return m.form.Init()
}

func (m *Model) handleUpdate(msg UpdateMsg) (tea.Model, tea.Cmd) {
	wasLoading := m.state.LoadingStation

	m.state = msg.State
	m.err = msg.Err
	m.ready = true

	if m.state.Status != journey.Completed {
		m.arrived = nil
	}

	cmds := []tea.Cmd{m.syncForm()}

	if m.state.LoadingStation && !wasLoading {
		cmds = append(cmds, m.spinner.Tick)
	}

	return m, tea.Batch(cmds...)
}

// handleFormMsg forwards msg to the active form and acts on its result.
func (m *Model) handleFormMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m.cancelForm()
		}
	}

	prevDest, prevLabel := m.plan.destination, m.plan.labelID

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.kind == planForm {
		if m.plan.destination != prevDest {
			m.selectDestination(m.plan.destination)
		}

		if m.plan.labelID != prevLabel {
			m.plan.subLabel = ""
		}
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	kind := m.kind
	m.form, m.kind = nil, noForm

	switch kind {
	case planForm:
		m.submitPlan()
	case freestyleForm:
		m.send(journey.ConfirmFreestyle{
			Minutes: m.plan.hours*60 + m.plan.minutes,
		})
	case seatForm:
		m.send(journey.Board{Seat: m.plan.seat})
	}

	return m, cmd
}

func (m *Model) cancelForm() (tea.Model, tea.Cmd) {
	switch m.kind {
	case planForm:
		return m, tea.Quit
	case freestyleForm:
		m.send(journey.CancelFreestyle{})
	case seatForm:
		m.send(journey.CancelBooking{})
	}

	m.form, m.kind = nil, noForm

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.quit) {
		return m, tea.Quit
	}

	s := m.state

	switch s.Status {
	case journey.Running, journey.Paused:
		switch {
		case key.Matches(msg, m.keys.togglePlay):
			if s.Status == journey.Running {
				m.send(journey.Pause{})
			} else {
				m.send(journey.Resume{})
			}
		case key.Matches(msg, m.keys.finish):
			m.send(journey.FinishEarly{})
		case key.Matches(msg, m.keys.abandon):
			m.send(journey.Abandon{})
		case key.Matches(msg, m.keys.music):
			m.send(journey.ToggleMusic{})
		case key.Matches(msg, m.keys.nextTrack):
			m.send(journey.NextTrack{})
		case key.Matches(msg, m.keys.prevTrack):
			m.send(journey.PrevTrack{})
		}
	case journey.Completed:
		if key.Matches(msg, m.keys.enter) {
			m.arrived = nil
			m.send(journey.Reset{})
		}
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok &&
		slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("tui message", slog.String("msg", spew.Sdump(msg)))
	}

	switch msg := msg.(type) {
	case UpdateMsg:
		return m.handleUpdate(msg)

	case ArrivedMsg:
		sess := models.FocusSession(msg)
		m.arrived = &sess

		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		m.help.Width = msg.Width

		return m, nil

	case spinner.TickMsg:
		if !m.state.LoadingStation {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	if m.form != nil {
		return m.handleFormMsg(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(keyMsg)
	}

	return m, nil
}
