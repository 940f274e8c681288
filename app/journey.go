package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusexpress/catalog"
	"github.com/ayoisaiah/focusexpress/flavor"
	"github.com/ayoisaiah/focusexpress/history"
	"github.com/ayoisaiah/focusexpress/internal/config"
	"github.com/ayoisaiah/focusexpress/internal/models"
	"github.com/ayoisaiah/focusexpress/internal/pathutil"
	"github.com/ayoisaiah/focusexpress/internal/sound"
	"github.com/ayoisaiah/focusexpress/journey"
	"github.com/ayoisaiah/focusexpress/label"
	"github.com/ayoisaiah/focusexpress/store"
	"github.com/ayoisaiah/focusexpress/timer"
)

// initialDestination is the destination selected when the journey screen
// opens.
func initialDestination(cfg *config.Config) catalog.Destination {
	if d, ok := catalog.Lookup(cfg.CLI.Destination); ok && !d.IsFreestyle() {
		return d
	}

	if d, ok := catalog.Lookup(cfg.Journey.DefaultDestination); ok {
		return d
	}

	return catalog.Default()
}

// newPreset turns the journey flags into a preset for the first journey.
func newPreset(cfg *config.Config) timer.Preset {
	p := timer.Preset{
		Destination: cfg.CLI.Destination,
		Label:       cfg.CLI.Label,
		SubLabel:    cfg.CLI.SubLabel,
		Task:        cfg.CLI.Task,
		Seat:        cfg.CLI.Seat,
	}

	if cfg.CLI.Freestyle > 0 {
		p.Destination = catalog.FreestyleID
		p.FreestyleMinutes = int(cfg.CLI.Freestyle / time.Minute)
	}

	return p
}

// newFlavor returns the flavor source for the journey, or nil when lookups
// are disabled. Without an API key every lookup yields fallback data.
func newFlavor(ctx context.Context, cfg *config.Config) journey.FlavorSource {
	if !cfg.Flavor.Enabled {
		return nil
	}

	var src flavor.Source

	if cfg.Flavor.APIKey != "" {
		g, err := flavor.NewGemini(ctx, cfg.Flavor.APIKey, cfg.Flavor.Model)
		if err != nil {
			slog.Warn("flavor lookups disabled", slog.Any("error", err))
		} else {
			src = g
		}
	}

	return flavor.NewFetcher(
		src,
		flavor.WithTimeout(cfg.Flavor.Timeout),
		flavor.WithCache(cfg.Flavor.CacheSize, cfg.Flavor.CacheTTL),
	)
}

// newPlayer returns the sound player, or nil when sound is disabled.
func newPlayer(ctx context.Context, cfg *config.Config) *sound.Player {
	if !cfg.Sound.Enabled {
		return nil
	}

	tracks := make([]sound.Track, 0, len(cfg.Sound.Playlist))
	for _, t := range cfg.Sound.Playlist {
		tracks = append(tracks, sound.Track{Name: t.Name, Source: t.Source})
	}

	return sound.New(
		ctx,
		sound.WithEffect(sound.Click, cfg.Sound.Click),
		sound.WithEffect(sound.Departure, cfg.Sound.Departure),
		sound.WithEffect(sound.Arrival, cfg.Sound.Arrival),
		sound.WithPlaylist(tracks),
		sound.WithVolume(cfg.Sound.Volume),
	)
}

// loadRegistry restores the custom labels saved in db.
func loadRegistry(db store.DB) (*label.Registry, error) {
	custom, err := db.GetLabels()
	if err != nil {
		return nil, err
	}

	return label.NewRegistry(custom), nil
}

// defaultAction opens the interactive journey screen.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	db, err := store.NewClient(cfg.PathToDB)
	if err != nil {
		return err
	}

	defer db.Close()

	registry, err := loadRegistry(db)
	if err != nil {
		return err
	}

	hist, err := history.New(db)
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx.Context)
	defer cancel()

	jcfg := journey.Config{
		Flavor:      newFlavor(runCtx, cfg),
		Recorder:    hist,
		Tick:        cfg.Journey.Tick,
		TipInterval: cfg.Journey.TipInterval,
	}

	var trackNames []string

	if player := newPlayer(runCtx, cfg); player != nil {
		defer player.Close()

		go player.Preload()

		for _, t := range player.Tracks() {
			trackNames = append(trackNames, t.Name)
		}

		jcfg.Player = player
	}

	machine := journey.NewMachine(
		journey.WithAbandonWindow(cfg.Journey.AbandonWindow),
		journey.WithTracks(len(trackNames)),
	)

	initial := machine.Initial(initialDestination(cfg))
	initial.MusicOn = cfg.Sound.Enabled && cfg.Sound.MusicOnStart

	statusFile := timer.NewStatusFile(pathutil.StatusFilePath())
	defer statusFile.Remove()

	arrival := timer.NewArrival(
		cfg.Notifications.Enabled,
		cfg.Settings.ArrivalCmd,
	)

	var p *tea.Program

	jcfg.OnUpdate = func(u journey.Update) {
		p.Send(timer.UpdateMsg(u))

		if err := statusFile.Update(u.State); err != nil {
			slog.Warn("unable to write status file", slog.Any("error", err))
		}
	}

	jcfg.OnArrival = func(sess models.FocusSession) {
		p.Send(timer.ArrivedMsg(sess))

		go arrival.Handle(sess)
	}

	ctrl := journey.NewController(machine, initial, jcfg)

	// prefetch the flavor of the initial destination
	ctrl.Send(journey.SelectDestination{Destination: initial.Destination})

	p = tea.NewProgram(timer.New(ctrl, timer.Options{
		Registry:       registry,
		Tracks:         trackNames,
		Preset:         newPreset(cfg),
		Style:          timer.NewStyle(cfg.Display.DarkTheme),
		TwentyFourHour: cfg.Display.TwentyFourHour,
	}))

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		if err := ctrl.Run(runCtx); err != nil {
			slog.Error("journey controller stopped", slog.Any("error", err))
		}
	}()

	_, err = p.Run()

	cancel()
	wg.Wait()

	return err
}
