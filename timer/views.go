package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/muesli/reflow/wordwrap"

	"github.com/ayoisaiah/focusexpress/journey"
)

func (m *Model) timeFormat() string {
	if m.twentyFourHour {
		return "15:04"
	}

	return "03:04 PM"
}

func (m *Model) textWidth() int {
	if m.width == 0 {
		return maxWidth
	}

	return max(min(m.width-padding*2, maxWidth), 20)
}

// localTime returns the wall clock at the destination. The time reported
// by the flavor service is used when the time zone is unknown.
func (m *Model) localTime() string {
	if loc, err := time.LoadLocation(m.state.Destination.Timezone); err == nil {
		return m.now().In(loc).Format(m.timeFormat())
	}

	if m.state.Flavor != nil {
		return m.state.Flavor.LocalTime
	}

	return "--:--"
}

func (m *Model) headerView() string {
	s := m.state
	d := s.Destination

	var b strings.Builder

	b.WriteString(m.style.Main.Render("🚆 FocusExpress"))

	if d.ID != "" && !d.IsFreestyle() {
		b.WriteString(m.style.Hint.Render(
			fmt.Sprintf("  %s, %s · %d km", d.Name, d.Region, d.DistanceKm),
		))
	}

	if s.Label != nil && s.Status != journey.Idle {
		mission := labelStyle(s.Label.Color).Render(s.Label.Name)
		if s.SubLabel != "" {
			mission += m.style.Secondary.Render(" / " + s.SubLabel)
		}

		if s.Task != "" {
			mission += m.style.Hint.Render(" · " + s.Task)
		}

		b.WriteString("\n" + mission)
	}

	return b.String()
}

func (m *Model) weatherView() string {
	s := m.state

	parts := []string{"🕒 " + m.localTime()}

	if s.Flavor != nil {
		parts = append(parts, fmt.Sprintf(
			"%.0f°C %s",
			s.Flavor.Weather.Temp,
			s.Flavor.Weather.Condition,
		))
	}

	if s.Seat != "" {
		parts = append(parts, "Seat "+s.Seat)
	}

	return m.style.Secondary.Render(strings.Join(parts, "  ·  "))
}

func (m *Model) stationView() string {
	s := m.state

	if s.LoadingStation {
		return m.spinner.View() + m.style.Hint.Render(" Looking up the station...")
	}

	if s.Station == nil {
		return ""
	}

	body := m.style.Main.Render(s.Station.Name)

	if s.Station.Description != "" {
		body += "\n" + m.style.Secondary.Render(
			wordwrap.String(s.Station.Description, m.textWidth()-4),
		)
	}

	return m.style.card(s.Station.Environment, body)
}

func (m *Model) musicView() string {
	s := m.state

	if len(m.tracks) == 0 {
		return ""
	}

	if !s.MusicOn {
		return m.style.Hint.Render("♪ music off")
	}

	name := ""
	if s.Track >= 0 && s.Track < len(m.tracks) {
		name = m.tracks[s.Track]
	}

	return m.style.Secondary.Render("♪ " + name)
}

func (m *Model) journeyView() string {
	s := m.state

	var b strings.Builder

	status := m.style.Hint.Render(
		"arriving " + m.now().Add(time.Duration(s.TimeLeft)*time.Second).Format(m.timeFormat()),
	)
	if s.Status == journey.Paused {
		status = m.style.Secondary.Render("[Paused]")
	}

	b.WriteString(m.style.Main.Render(s.Clock()) + "  " + status)
	b.WriteString("\n\n")
	b.WriteString(m.progress.ViewAs(s.Progress() / 100))
	b.WriteString(m.style.Hint.Render(fmt.Sprintf(" %.0f%%", s.Progress())))
	b.WriteString("\n\n")
	b.WriteString(m.weatherView())

	if station := m.stationView(); station != "" {
		b.WriteString("\n\n" + station)
	}

	if s.Tip != "" {
		b.WriteString("\n\n" + m.style.Secondary.Italic(true).Render(
			wordwrap.String("💡 "+s.Tip, m.textWidth()),
		))
	}

	if music := m.musicView(); music != "" {
		b.WriteString("\n\n" + music)
	}

	if s.ConfirmAbandon {
		b.WriteString("\n\n" + m.style.Warn.Render("Press x again to abandon the journey"))
	}

	bindings := []key.Binding{
		m.keys.togglePlay,
		m.keys.finish,
		m.keys.abandon,
	}

	if len(m.tracks) > 0 {
		bindings = append(bindings, m.keys.music, m.keys.nextTrack, m.keys.prevTrack)
	}

	b.WriteString("\n\n" + m.help.ShortHelpView(append(bindings, m.keys.quit)))

	return b.String()
}

func (m *Model) arrivalView() string {
	s := m.state

	var b strings.Builder

	station := s.Destination.Name
	if s.Station != nil {
		station = s.Station.Name
	}

	b.WriteString(m.style.Main.Render("You have arrived at " + station))

	if sess := m.arrived; sess != nil {
		summary := fmt.Sprintf(
			"%d of %d minutes travelled",
			sess.ActualDurationMinutes,
			sess.DurationMinutes,
		)

		b.WriteString("\n\n" + m.style.Secondary.Render(summary))
	}

	if s.Station != nil && s.Station.Description != "" {
		b.WriteString("\n\n" + m.style.card(
			s.Station.Environment,
			wordwrap.String(s.Station.Description, m.textWidth()-4),
		))
	}

	if s.Flavor != nil && len(s.Flavor.Attributions) > 0 {
		b.WriteString("\n\n" + m.style.Hint.Render("Sources"))

		for _, a := range s.Flavor.Attributions {
			title := a.Title
			if title == "" {
				title = a.URI
			}

			b.WriteString("\n" + m.style.Hint.Render("• "+title))
		}
	}

	b.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		m.keys.enter,
		m.keys.quit,
	}))

	return b.String()
}

func (m *Model) formView() string {
	var b strings.Builder

	if m.kind == planForm && m.state.Flavor != nil && !m.state.Destination.IsFreestyle() {
		f := m.state.Flavor
		b.WriteString(m.style.Hint.Render(fmt.Sprintf(
			"%s · %.0f°C %s",
			m.localTime(),
			f.Weather.Temp,
			f.Weather.Condition,
		)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.form.View())

	return b.String()
}

func (m *Model) View() string {
	if !m.ready {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.style.Warn.Render("⚠ "+m.err.Error()) + "\n\n")
	}

	switch {
	case m.form != nil:
		b.WriteString(m.formView())
	case m.state.Active():
		b.WriteString(m.journeyView())
	case m.state.Status == journey.Completed:
		b.WriteString(m.arrivalView())
	}

	return m.style.Base.Render(b.String())
}
