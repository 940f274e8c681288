package timer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/focusexpress/internal/models"
)

type call struct {
	name string
	args []string
}

func newTestArrival(notify bool, cmd string) (*Arrival, *[]string, *[]call) {
	var notes []string

	var calls []call

	a := NewArrival(notify, cmd)
	a.notify = func(title, message, _ string) error {
		notes = append(notes, title+": "+message)
		return nil
	}
	a.run = func(name string, args ...string) error {
		calls = append(calls, call{name, args})
		return nil
	}

	return a, &notes, &calls
}

func TestArrivalHandle(t *testing.T) {
	zurich := destination(t, "zurich")

	testCases := []struct {
		name  string
		cmd   string
		sess  models.FocusSession
		notes []string
		calls []call
	}{
		{
			name: "station and task",
			cmd:  `say "train has arrived"`,
			sess: models.FocusSession{
				Station:               &models.Station{Name: "Zürich HB"},
				Destination:           &zurich,
				Task:                  "quarterly report",
				ActualDurationMinutes: 45,
			},
			notes: []string{"Arrived at Zürich HB: 45 minutes of focus on quarterly report"},
			calls: []call{{"say", []string{"train has arrived"}}},
		},
		{
			name: "destination only",
			sess: models.FocusSession{
				Destination:           &zurich,
				ActualDurationMinutes: 12,
			},
			notes: []string{"Arrived at Zürich: 12 minutes of focus"},
		},
		{
			name:  "nothing known",
			cmd:   "   ",
			notes: []string{"Arrived at your destination: 0 minutes of focus"},
		},
		{
			name:  "unbalanced quotes",
			cmd:   `say "oops`,
			notes: []string{"Arrived at your destination: 0 minutes of focus"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, notes, calls := newTestArrival(true, tc.cmd)

			a.Handle(tc.sess)

			assert.Equal(t, tc.notes, *notes)
			assert.Equal(t, tc.calls, *calls)
		})
	}
}

func TestArrivalNotificationsDisabled(t *testing.T) {
	a, notes, calls := newTestArrival(false, "true")

	a.Handle(models.FocusSession{})

	assert.Empty(t, *notes)
	assert.Equal(t, []call{{"true", []string{}}}, *calls)
}

func TestArrivalFailuresAreNotFatal(t *testing.T) {
	a := NewArrival(true, "false")
	a.notify = func(string, string, string) error {
		return errors.New("no notification daemon")
	}
	a.run = func(string, ...string) error {
		return errors.New("exit status 1")
	}

	assert.NotPanics(t, func() {
		a.Handle(models.FocusSession{})
	})
}
