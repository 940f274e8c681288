package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusexpress/catalog"
	"github.com/ayoisaiah/focusexpress/history"
	"github.com/ayoisaiah/focusexpress/internal/config"
	"github.com/ayoisaiah/focusexpress/internal/models"
	"github.com/ayoisaiah/focusexpress/internal/osutil"
	"github.com/ayoisaiah/focusexpress/internal/pathutil"
	"github.com/ayoisaiah/focusexpress/internal/timeutil"
	"github.com/ayoisaiah/focusexpress/internal/ui"
	"github.com/ayoisaiah/focusexpress/store"
	"github.com/ayoisaiah/focusexpress/timer"
)

const (
	envNoColor      = "NO_COLOR"
	envFocusNoColor = "FOCUS_NO_COLOR"
)

// logFile is the open log file, closed by afterAction.
var logFile interface{ Close() error }

// loadConfig reads the config file. Interactive commands also run the
// first-run prompts and apply the journey flags.
func loadConfig(ctx *cli.Context, interactive bool) (*config.Config, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	configPath := pathutil.ConfigFilePath()

	var opts []config.Option

	if interactive {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(opts, config.WithViperConfig(configPath))

	if interactive {
		opts = append(opts, config.WithCLIConfig(ctx))
	}

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	cfg.PathToDB = pathutil.DBFilePath()

	logFile = setupLogger(cfg, pathutil.LogFilePath())

	ui.DarkTheme = cfg.Display.DarkTheme

	slog.InfoContext(
		ctx.Context,
		"configuration loaded",
		slog.String("config", cfg.PathToConfig),
		slog.String("db", cfg.PathToDB),
	)

	return cfg, nil
}

// filterFromFlags builds a session filter from --since, --period and
// --label. --since takes precedence over --period.
func filterFromFlags(ctx *cli.Context, now time.Time) (history.Filter, error) {
	f := history.Filter{
		Label: strings.TrimSpace(ctx.String("label")),
	}

	if since := strings.TrimSpace(ctx.String("since")); since != "" {
		t, err := timeutil.FromStrAt(since, now)
		if err != nil {
			return f, errParsingDate.Fmt(since).Wrap(err)
		}

		f.Since = t

		return f, nil
	}

	period := timeutil.Period(ctx.String("period"))
	if period == "" {
		return f, nil
	}

	if _, ok := timeutil.Range[period]; !ok {
		return f, errInvalidPeriod.Fmt(period, periods())
	}

	f.Since = timeutil.PeriodStart(period, now)

	return f, nil
}

// sessionHelper loads the recorded sessions that match the filter flags.
func sessionHelper(ctx *cli.Context) ([]models.FocusSession, error) {
	f, err := filterFromFlags(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return nil, err
	}

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return nil, err
	}

	defer db.Close()

	h, err := history.New(db)
	if err != nil {
		return nil, err
	}

	return f.Apply(h.Sessions()), nil
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(config.Stdout, string(b))

	return err
}

// destinationsAction prints the destination catalog.
func destinationsAction(_ *cli.Context) error {
	printDestinationsTable(config.Stdout, catalog.All())

	return nil
}

// historyAction prints the recorded journeys, newest first.
func historyAction(ctx *cli.Context) error {
	sessions, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(sessions)
	}

	return listSessions(config.Stdout, sessions)
}

// statsAction summarises the recorded journeys.
func statsAction(ctx *cli.Context) error {
	sessions, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	r := history.NewReport(sessions)

	if ctx.Bool("json") {
		b, err := r.ToJSON()
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(config.Stdout, string(b))

		return err
	}

	r.Render(config.Stdout)

	return nil
}

// flavorAction looks up the flavor of a destination once.
func flavorAction(ctx *cli.Context) error {
	key := ctx.Args().First()
	if key == "" {
		return errMissingArg.Fmt("destination")
	}

	d, ok := catalog.Lookup(key)
	if !ok || d.IsFreestyle() {
		return errUnknownDestination.Fmt(key)
	}

	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	cfg.Flavor.Enabled = true

	src := newFlavor(ctx.Context, cfg)

	if ctx.Bool("json") {
		return printJSON(src.Fetch(ctx.Context, d.Name, ctx.String("task")))
	}

	spinner, _ := pterm.DefaultSpinner.Start(
		fmt.Sprintf("Looking up %s...", d.Name),
	)

	data := src.Fetch(ctx.Context, d.Name, ctx.String("task"))

	if spinner != nil {
		_ = spinner.Stop()
	}

	printFlavor(config.Stdout, d, data)

	return nil
}

// statusAction prints the status of the journey in progress.
func statusAction(_ *cli.Context) error {
	if err := pathutil.Initialize(); err != nil {
		return err
	}

	return timer.ReportStatus(
		config.Stdout,
		pathutil.DBFilePath(),
		pathutil.StatusFilePath(),
		time.Now(),
	)
}

// editConfigAction opens the config file in the user's text editor.
func editConfigAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	args, err := shellquote.Split(osutil.Editor())
	if err != nil {
		return err
	}

	args = append(args, cfg.PathToConfig)

	cmd := exec.Command(args[0], args[1:]...)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if FOCUS_NO_COLOR is set
	if _, exists := os.LookupEnv(envFocusNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting focusexpress")

	if logFile != nil {
		return logFile.Close()
	}

	return nil
}
