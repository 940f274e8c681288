package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusexpress/catalog"
	"github.com/ayoisaiah/focusexpress/flavor"
	"github.com/ayoisaiah/focusexpress/internal/models"
	"github.com/ayoisaiah/focusexpress/internal/timeutil"
	"github.com/ayoisaiah/focusexpress/internal/ui"
	"github.com/ayoisaiah/focusexpress/label"
)

const (
	noSessionsMsg = "No journeys found for the specified filters"
	dateFormat    = "Jan 02, 2006 03:04 PM"
	textWidth     = 72
)

// printSessionsTable prints a session table to w.
func printSessionsTable(w io.Writer, sessions []models.FocusSession) {
	tableBody := make([][]string, len(sessions))

	for i := range sessions {
		sess := sessions[i]

		destination := ""
		if sess.Destination != nil {
			destination = sess.Destination.Name
		}

		labelText := sess.LabelName()
		if sess.SubLabel != "" {
			labelText += " · " + sess.SubLabel
		}

		minutes := fmt.Sprintf(
			"%d/%d",
			sess.ActualDurationMinutes,
			sess.DurationMinutes,
		)

		statusText := ui.Green("arrived")
		if !sess.Completed {
			statusText = ui.Red("abandoned")
		}

		tableBody[i] = []string{
			strconv.Itoa(i + 1),
			sess.StartTime.Format(dateFormat),
			destination,
			labelText,
			sess.Task,
			minutes,
			statusText,
		}
	}

	tableBody = append([][]string{
		{"#", "DEPARTED", "DESTINATION", "LABEL", "TASK", "MINUTES", "STATUS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// listSessions prints out a table of sessions.
func listSessions(w io.Writer, sessions []models.FocusSession) error {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printSessionsTable(w, sessions)

	return nil
}

func formatMinutes(mins int) string {
	if mins < 60 {
		return fmt.Sprintf("%d min", mins)
	}

	return timeutil.FormatHours(mins)
}

// printDestinationsTable prints the destination catalog to w.
func printDestinationsTable(w io.Writer, destinations []catalog.Destination) {
	tableBody := make([][]string, 0, len(destinations)+1)

	tableBody = append(tableBody, []string{
		"ID", "DESTINATION", "REGION", "DURATION", "DISTANCE",
	})

	for i := range destinations {
		d := destinations[i]

		tableBody = append(tableBody, []string{
			d.ID,
			d.Name,
			d.Region,
			formatMinutes(d.DurationMinutes),
			fmt.Sprintf("%d km", d.DistanceKm),
		})
	}

	ui.PrintTable(tableBody, w)
}

// printLabelsTable prints mission labels to w.
func printLabelsTable(w io.Writer, labels []label.MissionLabel) {
	tableBody := make([][]string, 0, len(labels)+1)

	tableBody = append(tableBody, []string{
		"ID", "NAME", "COLOUR", "ICON", "SUBJECTS",
	})

	for i := range labels {
		l := labels[i]

		subjects := strings.Join(l.SubLabels, ", ")
		if l.HasPrompt() {
			subjects = fmt.Sprintf("(%s)", l.CustomSubLabelPrompt)
		}

		name := l.Name
		if !l.IsCustom {
			name += " " + ui.Cyan("preset")
		}

		tableBody = append(tableBody, []string{
			l.ID,
			name,
			l.Color,
			l.Icon,
			subjects,
		})
	}

	ui.PrintTable(tableBody, w)
}

// printFlavor prints the flavor of a destination to w.
func printFlavor(w io.Writer, d catalog.Destination, data flavor.Data) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s, %s\n", ui.Highlight(d.Name), d.Region)
	fmt.Fprintf(&b, "Local time: %s\n", ui.Green(data.LocalTime))
	fmt.Fprintf(
		&b,
		"Weather: %s\n",
		ui.Green(fmt.Sprintf("%.0f°C %s", data.Weather.Temp, data.Weather.Condition)),
	)
	fmt.Fprintf(
		&b,
		"Station: %s (%s)\n",
		ui.Magenta(data.Station.Name),
		data.Station.Environment,
	)
	fmt.Fprintln(&b, wordwrap.String(data.Station.Description, textWidth))

	if len(data.Attributions) > 0 {
		fmt.Fprintln(&b, ui.Blue("\nSources"))

		for _, a := range data.Attributions {
			fmt.Fprintf(&b, "  %s %s\n", a.Title, a.URI)
		}
	}

	if data.Fallback {
		fmt.Fprintln(&b, ui.Red("\nThe lookup failed; showing fallback data"))
	}

	fmt.Fprint(w, b.String())
}
