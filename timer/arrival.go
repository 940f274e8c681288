package timer

import (
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/focusexpress/internal/models"
)

// Arrival runs the hooks configured for the end of a journey.
type Arrival struct {
	notify func(title, message, icon string) error
	run    func(name string, args ...string) error
	// Cmd is executed after each arrival.
	Cmd    string
	Notify bool
}

// NewArrival returns the hooks for the given settings.
func NewArrival(notify bool, cmd string) *Arrival {
	return &Arrival{
		Notify: notify,
		Cmd:    cmd,
		notify: beeep.Notify,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

func arrivalMessage(sess models.FocusSession) (title, msg string) {
	station := "your destination"

	switch {
	case sess.Station != nil:
		station = sess.Station.Name
	case sess.Destination != nil:
		station = sess.Destination.Name
	}

	title = "Arrived at " + station

	msg = fmt.Sprintf(
		"%d minutes of focus",
		sess.ActualDurationMinutes,
	)

	if sess.Task != "" {
		msg += " on " + sess.Task
	}

	return title, msg
}

// Handle sends the desktop notification and runs the arrival command.
// Failures are logged.
func (a *Arrival) Handle(sess models.FocusSession) {
	if a.Notify {
		title, msg := arrivalMessage(sess)

		if err := a.notify(title, msg, ""); err != nil {
			slog.Warn("unable to display notification", slog.Any("error", err))
		}
	}

	if err := a.runCmd(); err != nil {
		slog.Warn(
			"arrival command failed",
			slog.String("cmd", a.Cmd),
			slog.Any("error", err),
		)
	}
}

// runCmd executes the arrival command.
func (a *Arrival) runCmd() error {
	if a.Cmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(a.Cmd)
	if err != nil {
		return errParseCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	return a.run(cmdSlice[0], cmdSlice[1:]...)
}
