package app

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusexpress/internal/config"
	"github.com/ayoisaiah/focusexpress/label"
	"github.com/ayoisaiah/focusexpress/store"
)

// openLabels opens the database and restores the label registry. The
// caller must close the returned client.
func openLabels(ctx *cli.Context) (*store.Client, *label.Registry, error) {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return nil, nil, err
	}

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return nil, nil, err
	}

	registry, err := loadRegistry(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	return db, registry, nil
}

// saveLabels persists the custom labels of registry.
func saveLabels(db store.DB, registry *label.Registry) error {
	if err := db.SaveLabels(registry.Custom()); err != nil {
		return errSaveLabels.Wrap(err)
	}

	return nil
}

// labelsAction prints every mission label.
func labelsAction(ctx *cli.Context) error {
	db, registry, err := openLabels(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	printLabelsTable(config.Stdout, registry.Sorted())

	return nil
}

// addLabelAction creates a custom label from the command arguments.
func addLabelAction(ctx *cli.Context) error {
	name := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if name == "" {
		return errMissingArg.Fmt("label name")
	}

	db, registry, err := openLabels(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	l, err := registry.Add(
		name,
		ctx.String("color"),
		ctx.String("icon"),
		label.WithSubLabels(ctx.StringSlice("sub")...),
		label.WithPrompt(ctx.String("prompt")),
	)
	if err != nil {
		return err
	}

	if err := saveLabels(db, registry); err != nil {
		return err
	}

	pterm.Success.Printfln("Added label %s (%s)", l.Name, l.ID)

	return nil
}
