package history

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusexpress/internal/models"
	"github.com/ayoisaiah/focusexpress/internal/timeutil"
	"github.com/ayoisaiah/focusexpress/internal/ui"
)

const (
	barChartChar  = "▇"
	uncategorized = "Uncategorized"
)

// Stats summarises completed sessions.
type Stats struct {
	TotalMinutes int `json:"total_minutes"`
	TotalCount   int `json:"total_count"`
	AvgMinutes   int `json:"avg_minutes"`
}

// Compute derives Stats from sessions. Only completed sessions count.
func Compute(sessions []models.FocusSession) Stats {
	var s Stats

	for i := range sessions {
		if !sessions[i].Completed {
			continue
		}

		s.TotalMinutes += sessions[i].DurationMinutes
		s.TotalCount++
	}

	if s.TotalCount > 0 {
		s.AvgMinutes = timeutil.Round(
			float64(s.TotalMinutes) / float64(s.TotalCount),
		)
	}

	return s
}

// LabelStat is the time spent under one mission label.
type LabelStat struct {
	Label   string `json:"label"`
	Minutes int    `json:"minutes"`
	Count   int    `json:"count"`
}

// ByLabel breaks completed sessions down by label, most minutes first.
func ByLabel(sessions []models.FocusSession) []LabelStat {
	totals := make(map[string]*LabelStat)

	for i := range sessions {
		sess := sessions[i]

		if !sess.Completed {
			continue
		}

		name := sess.LabelName()
		if name == "" {
			name = uncategorized
		}

		ls, ok := totals[name]
		if !ok {
			ls = &LabelStat{Label: name}
			totals[name] = ls
		}

		ls.Minutes += sess.DurationMinutes
		ls.Count++
	}

	out := make([]LabelStat, 0, len(totals))
	for _, v := range totals {
		out = append(out, *v)
	}

	slices.SortFunc(out, func(a, b LabelStat) int {
		if c := cmp.Compare(b.Minutes, a.Minutes); c != 0 {
			return c
		}

		if natural.Less(a.Label, b.Label) {
			return -1
		}

		return 1
	})

	return out
}

// Report is the full statistics output.
type Report struct {
	Stats
	Labels   []LabelStat    `json:"labels"`
	Weekdays map[string]int `json:"weekdays"`
}

// NewReport builds a Report for sessions.
func NewReport(sessions []models.FocusSession) *Report {
	r := &Report{
		Stats:    Compute(sessions),
		Labels:   ByLabel(sessions),
		Weekdays: make(map[string]int),
	}

	for i := range sessions {
		if sessions[i].Completed {
			day := sessions[i].StartTime.Weekday().String()
			r.Weekdays[day] += sessions[i].DurationMinutes
		}
	}

	return r
}

// ToJSON returns the indented JSON form of the report.
func (r *Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

func (r *Report) summary() string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	hrs, mins := timeutil.MinsToHoursAndMins(r.TotalMinutes)

	timeLogged := fmt.Sprintf(
		"Time travelled: %s\n",
		ui.Green(fmt.Sprintf("%dh %dm", hrs, mins)),
	)

	completed := fmt.Sprintln(
		"Journeys completed:",
		ui.Green(r.TotalCount),
	)

	avg := fmt.Sprintln(
		"Average journey:",
		ui.Green(fmt.Sprintf("%d min", r.AvgMinutes)),
	)

	return header + timeLogged + completed + avg
}

func barChart(title string, bars pterm.Bars) string {
	if len(bars) == 0 {
		return ""
	}

	header := ui.Blue(fmt.Sprintf("\n%s (minutes)", title))

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

func (r *Report) labelChart() string {
	bars := make(pterm.Bars, 0, len(r.Labels))

	for _, l := range r.Labels {
		bars = append(bars, pterm.Bar{
			Label: l.Label,
			Value: l.Minutes,
		})
	}

	return barChart("Mission labels", bars)
}

func (r *Report) weekdayChart() string {
	if r.TotalCount == 0 {
		return ""
	}

	bars := make(pterm.Bars, 0, len(r.Weekdays))

	for d := time.Sunday; d <= time.Saturday; d++ {
		bars = append(bars, pterm.Bar{
			Label: d.String(),
			Value: r.Weekdays[d.String()],
		})
	}

	return barChart("Weekly breakdown", bars)
}

// Render writes the human-readable report to w.
func (r *Report) Render(w io.Writer) {
	output := fmt.Sprint(
		r.summary(),
		r.labelChart(),
		r.weekdayChart(),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}
