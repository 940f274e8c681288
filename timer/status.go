package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/focusexpress/internal/timeutil"
	"github.com/ayoisaiah/focusexpress/journey"
)

// Status is the snapshot of a journey written for the status command.
type Status struct {
	EndTime     time.Time `json:"end_time"`
	Destination string    `json:"destination"`
	Label       string    `json:"label"`
	Task        string    `json:"task"`
	Status      string    `json:"status"`
	TimeLeft    int       `json:"time_left"`
}

// StatusFile keeps the status file in sync with the journey.
type StatusFile struct {
	now  func() time.Time
	path string
	last Status
}

// NewStatusFile returns a StatusFile that writes to path.
func NewStatusFile(path string) *StatusFile {
	return &StatusFile{
		path: path,
		now:  time.Now,
	}
}

func newStatus(s journey.State, now time.Time) Status {
	st := Status{
		Destination: s.Destination.Name,
		Task:        s.Task,
		Status:      s.Status.String(),
		TimeLeft:    s.TimeLeft,
	}

	if s.Label != nil {
		st.Label = s.Label.Name
	}

	if s.Status == journey.Running {
		st.EndTime = now.Add(time.Duration(s.TimeLeft) * time.Second)
	}

	return st
}

// Update rewrites the file when the journey changes status. Ticks within
// the same status leave it alone since the end time already covers them.
func (f *StatusFile) Update(s journey.State) error {
	st := newStatus(s, f.now())

	if st.Status == f.last.Status &&
		st.Destination == f.last.Destination &&
		st.Task == f.last.Task {
		return nil
	}

	f.last = st

	if !s.Active() {
		err := os.Remove(f.path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return err
	}

	b, err := json.Marshal(st)
	if err != nil {
		return err
	}

	return os.WriteFile(f.path, b, 0o600)
}

// Remove deletes the status file.
func (f *StatusFile) Remove() {
	_ = os.Remove(f.path)
}

// ReportStatus prints the journey in progress, if any. A journey is only
// reported while another process holds the database lock.
func ReportStatus(w io.Writer, dbPath, statusPath string, now time.Time) error {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(dbPath, fileMode, &bolt.Options{
		Timeout: 100 * time.Millisecond,
	})
	// This means focusexpress is not running, so no status to report
	if err == nil {
		return db.Close()
	}

	if !errors.Is(err, bolt.ErrDatabaseOpen) &&
		!errors.Is(err, bolt.ErrTimeout) {
		return err
	}

	fileBytes, err := os.ReadFile(statusPath)
	if err != nil {
		// missing file should not return an error
		return nil
	}

	var s Status

	if err := json.Unmarshal(fileBytes, &s); err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, formatStatus(s, now))

	return err
}

func formatStatus(s Status, now time.Time) string {
	left := s.TimeLeft
	if s.Status == journey.Running.String() {
		left = max(int(s.EndTime.Sub(now).Seconds()), 0)
	}

	text := fmt.Sprintf("[%s] %s", s.Destination, timeutil.FormatClock(left))

	if s.Status == journey.Paused.String() {
		text += " (paused)"
	}

	if s.Label != "" {
		text += " · " + s.Label
	}

	return text
}
