// Package history keeps the log of finished journeys and derives statistics
// from it
package history

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/ayoisaiah/focusexpress/internal/models"
)

// Store persists sessions. Sessions must be returned newest first.
type Store interface {
	SaveSession(sess *models.FocusSession) error
	GetSessions() ([]models.FocusSession, error)
}

// History is an append-only, newest-first list of finished journeys.
type History struct {
	store    Store
	sessions []models.FocusSession
	mu       sync.RWMutex
}

// New loads the history held by store. A nil store keeps the history in
// memory only.
func New(store Store) (*History, error) {
	h := &History{
		store: store,
	}

	if store == nil {
		return h, nil
	}

	sessions, err := store.GetSessions()
	if err != nil {
		return nil, errLoadHistory.Wrap(err)
	}

	h.sessions = sessions

	return h, nil
}

// Record prepends sess to the history and persists it.
func (h *History) Record(sess models.FocusSession) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.store != nil {
		if err := h.store.SaveSession(&sess); err != nil {
			return errSaveSession.Wrap(err)
		}
	}

	h.sessions = slices.Insert(h.sessions, 0, sess)

	return nil
}

// Sessions returns a copy of the history, newest first.
func (h *History) Sessions() []models.FocusSession {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return slices.Clone(h.sessions)
}

// Stats computes the statistics of the whole history.
func (h *History) Stats() Stats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return Compute(h.sessions)
}

// Filter selects sessions by start time and label.
type Filter struct {
	Since time.Time
	// Label matches a label id or name, case-insensitively.
	Label string
}

// Apply returns the sessions matching f in their original order.
func (f Filter) Apply(sessions []models.FocusSession) []models.FocusSession {
	out := make([]models.FocusSession, 0, len(sessions))

	for i := range sessions {
		sess := sessions[i]

		if !f.Since.IsZero() && sess.StartTime.Before(f.Since) {
			continue
		}

		if f.Label != "" {
			if sess.Label == nil {
				continue
			}

			if sess.Label.ID != f.Label &&
				!strings.EqualFold(sess.Label.Name, f.Label) {
				continue
			}
		}

		out = append(out, sess)
	}

	return out
}
