package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/focusexpress/catalog"
	"github.com/ayoisaiah/focusexpress/internal/timeutil"
	"github.com/ayoisaiah/focusexpress/journey"
	"github.com/ayoisaiah/focusexpress/label"
)

type formKind int

const (
	noForm formKind = iota
	planForm
	freestyleForm
	seatForm
)

// plan holds the values bound to the booking forms.
type plan struct {
	destination string
	labelID     string
	subLabel    string
	task        string
	seat        string
	hours       int
	minutes     int
}

func destinationOptions() []huh.Option[string] {
	all := catalog.All()
	opts := make([]huh.Option[string], 0, len(all)+1)

	for _, d := range all {
		key := fmt.Sprintf(
			"%s, %s · %s · %d km",
			d.Name,
			d.Region,
			timeutil.FormatHours(d.DurationMinutes),
			d.DistanceKm,
		)

		opts = append(opts, huh.NewOption(key, d.ID))
	}

	return append(opts, huh.NewOption("Freestyle · choose your own time", catalog.FreestyleID))
}

func labelOptions(reg *label.Registry) []huh.Option[string] {
	labels := reg.Sorted()
	opts := make([]huh.Option[string], 0, len(labels))

	for _, l := range labels {
		opts = append(opts, huh.NewOption(labelStyle(l.Color).Render(l.Name), l.ID))
	}

	return opts
}

func (m *Model) selectedLabel() (label.MissionLabel, bool) {
	return m.registry.Get(m.plan.labelID)
}

func (m *Model) newPlanForm() *huh.Form {
	subjects := huh.NewSelect[string]().
		TitleFunc(func() string {
			l, _ := m.selectedLabel()
			return "Subject for " + l.Name
		}, &m.plan.labelID).
		OptionsFunc(func() []huh.Option[string] {
			l, _ := m.selectedLabel()
			return huh.NewOptions(l.SubLabels...)
		}, &m.plan.labelID).
		Value(&m.plan.subLabel)

	prompt := huh.NewInput().
		TitleFunc(func() string {
			l, _ := m.selectedLabel()
			return l.CustomSubLabelPrompt
		}, &m.plan.labelID).
		Value(&m.plan.subLabel)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where to?").
				Options(destinationOptions()...).
				Value(&m.plan.destination),
			huh.NewSelect[string]().
				Title("Mission label").
				Options(labelOptions(m.registry)...).
				Value(&m.plan.labelID),
		),
		huh.NewGroup(subjects).WithHideFunc(func() bool {
			l, _ := m.selectedLabel()
			return !l.HasSubLabels()
		}),
		huh.NewGroup(prompt).WithHideFunc(func() bool {
			l, _ := m.selectedLabel()
			return l.HasSubLabels() || !l.HasPrompt()
		}),
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Placeholder("What will you work on?").
				Value(&m.plan.task),
		),
	).WithShowHelp(true).WithWidth(maxWidth)
}

func (m *Model) newFreestyleForm() *huh.Form {
	hours := make([]huh.Option[int], 0, 13)
	for h := 0; h <= 12; h++ {
		hours = append(hours, huh.NewOption(fmt.Sprintf("%d h", h), h))
	}

	minutes := make([]huh.Option[int], 0, 12)
	for mins := 0; mins < 60; mins += 5 {
		minutes = append(minutes, huh.NewOption(fmt.Sprintf("%02d min", mins), mins))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Hours").
				Options(hours...).
				Value(&m.plan.hours),
			huh.NewSelect[int]().
				Title("Minutes").
				Options(minutes...).
				Value(&m.plan.minutes),
		).Description("A surprise destination will be picked for you. Press esc to go back."),
	).WithShowHelp(true).WithWidth(maxWidth)
}

func (m *Model) newSeatForm() *huh.Form {
	seats := journey.Seats()
	opts := make([]huh.Option[string], 0, len(seats))

	for _, s := range seats {
		opts = append(opts, huh.NewOption("Seat "+s, s))
	}

	if m.plan.seat == "" {
		m.plan.seat = journey.DefaultSeat
	}

	title := fmt.Sprintf(
		"Boarding for %s (%s)",
		m.state.Destination.Name,
		timeutil.FormatHours(m.state.Destination.DurationMinutes),
	)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Description("Pick a seat. Press esc to cancel the booking.").
				Options(opts...).
				Value(&m.plan.seat),
		),
	).WithShowHelp(true).WithWidth(maxWidth)
}

// submitPlan sends the mission details for the chosen destination.
func (m *Model) submitPlan() {
	if m.plan.destination != m.state.Destination.ID {
		m.selectDestination(m.plan.destination)
	}

	var (
		lp  *label.MissionLabel
		sub string
	)

	if l, ok := m.selectedLabel(); ok {
		lp = &l
		_ = m.registry.Select(l.ID)

		if l.HasSubLabels() || l.HasPrompt() {
			sub = strings.TrimSpace(m.plan.subLabel)
			_ = m.registry.SelectSubLabel(sub)
		}
	}

	m.send(journey.Depart{
		Label:    lp,
		SubLabel: sub,
		Task:     m.plan.task,
	})
}

func (m *Model) selectDestination(id string) {
	d, ok := catalog.Lookup(id)
	if !ok {
		return
	}

	m.send(journey.SelectDestination{Destination: d})
}
