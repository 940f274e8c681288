package app

import (
	"bufio"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusexpress/internal/config"
	"github.com/ayoisaiah/focusexpress/label"
)

// removeLabelAction deletes a custom label. It requests confirmation before
// proceeding with the operation. Past journeys keep their copy of the label.
func removeLabelAction(ctx *cli.Context) error {
	key := ctx.Args().First()
	if key == "" {
		return errMissingArg.Fmt("label id")
	}

	db, registry, err := openLabels(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	l, ok := registry.Get(key)
	if !ok {
		return errUnknownLabel.Fmt(key)
	}

	if !l.IsCustom {
		return errPresetLabel.Fmt(l.Name)
	}

	printLabelsTable(config.Stdout, []label.MissionLabel{l})

	warning := pterm.Warning.Sprint(
		"The label above will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(config.Stdout, warning)

	reader := bufio.NewReader(config.Stdin)

	_, _ = reader.ReadString('\n')

	registry.Remove(l.ID)

	return saveLabels(db, registry)
}
