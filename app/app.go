// Package app wires the focusexpress command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusexpress/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the focusexpress app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "focusexpress",
		Usage: `
		FocusExpress turns focus sessions into train journeys. Pick a destination,
		board your seat and keep working until the train arrives.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "destinations",
				Usage:  "List the destinations you can travel to",
				Action: destinationsAction,
			},
			{
				Name:   "labels",
				Usage:  "List, add or remove mission labels",
				Action: labelsAction,
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Create a custom mission label",
						ArgsUsage: "<name>",
						Flags: []cli.Flag{
							colorFlag,
							iconFlag,
							subFlag,
							promptFlag,
						},
						Action: addLabelAction,
					},
					{
						Name:      "remove",
						Aliases:   []string{"rm"},
						Usage:     "Remove a custom mission label",
						ArgsUsage: "<id>",
						Action:    removeLabelAction,
					},
				},
			},
			{
				Name:  "history",
				Usage: "List the journeys you have completed, newest first",
				Flags: []cli.Flag{
					jsonFlag,
					sinceFlag,
					periodFlag,
					filterLabelFlag,
				},
				Action: historyAction,
			},
			{
				Name:  "stats",
				Usage: "Summarise the time you have travelled",
				Flags: []cli.Flag{
					jsonFlag,
					sinceFlag,
					periodFlag,
					filterLabelFlag,
				},
				Action: statsAction,
			},
			{
				Name:      "flavor",
				Usage:     "Look up the weather and arrival station for a destination",
				ArgsUsage: "<destination>",
				Flags: []cli.Flag{
					jsonFlag,
					flavorTaskFlag,
				},
				Action: flavorAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the journey in progress",
				Action: statusAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			destinationFlag,
			labelFlag,
			subLabelFlag,
			taskFlag,
			seatFlag,
			freestyleFlag,
			musicFlag,
			noSoundFlag,
			noFlavorFlag,
			noColorFlag,
			disableNotificationFlag,
			arrivalCmdFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
