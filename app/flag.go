package app

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusexpress/internal/timeutil"
)

var (
	destinationFlag = &cli.StringFlag{
		Name:    "destination",
		Aliases: []string{"d"},
		Usage:   "Destination of the first journey (see 'focusexpress destinations')",
	}

	labelFlag = &cli.StringFlag{
		Name:    "label",
		Aliases: []string{"l"},
		Usage:   "Mission label id or name (e.g. study, work)",
	}

	subLabelFlag = &cli.StringFlag{
		Name:    "sub-label",
		Aliases: []string{"s"},
		Usage:   "Subject or free-text detail for labels that ask for one",
	}

	taskFlag = &cli.StringFlag{
		Name:    "task",
		Aliases: []string{"t"},
		Usage:   "What you will be working on during the journey",
	}

	flavorTaskFlag = &cli.StringFlag{
		Name:    "task",
		Aliases: []string{"t"},
		Usage:   "Task to tailor the station description to",
	}

	seatFlag = &cli.StringFlag{
		Name:  "seat",
		Usage: "Seat to board (rows 1-3, columns A-D, e.g. 2B)",
	}

	freestyleFlag = &cli.StringFlag{
		Name:    "freestyle",
		Aliases: []string{"f"},
		Usage:   "Travel to a surprise destination for a custom duration (e.g. 50m, 1h30m or 90)",
	}

	musicFlag = &cli.BoolFlag{
		Name:  "music",
		Usage: "Start the background music when the journey begins",
	}

	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Disable sound effects and music",
	}

	noFlavorFlag = &cli.BoolFlag{
		Name:  "no-flavor",
		Usage: "Skip the weather and station lookup",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:  "disable-notification",
		Usage: "Disable the system notification that appears on arrival",
	}

	arrivalCmdFlag = &cli.StringFlag{
		Name:    "arrival-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each arrival",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include journeys that started after a date (e.g. 'last monday', '2 weeks ago')",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Reporting period: " + periods(),
		Value:   string(timeutil.PeriodAllTime),
	}

	filterLabelFlag = &cli.StringFlag{
		Name:    "label",
		Aliases: []string{"l"},
		Usage:   "Only include journeys with this label id or name",
	}

	colorFlag = &cli.StringFlag{
		Name:  "color",
		Usage: "Label colour",
	}

	iconFlag = &cli.StringFlag{
		Name:  "icon",
		Usage: "Label icon",
	}

	subFlag = &cli.StringSliceFlag{
		Name:  "sub",
		Usage: "Comma-separated subjects to choose from when the label is selected",
	}

	promptFlag = &cli.StringFlag{
		Name:  "prompt",
		Usage: "Ask for a free-text detail with this prompt (e.g. 'Book Title')",
	}
)

func periods() string {
	p := make([]string, 0, len(timeutil.PeriodCollection))

	for _, v := range timeutil.PeriodCollection {
		p = append(p, string(v))
	}

	return strings.Join(p, ", ")
}
