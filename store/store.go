// Package store persists the journey history and custom mission labels in a
// BoltDB database
package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/focusexpress/internal/models"
	"github.com/ayoisaiah/focusexpress/label"
)

var (
	sessionBucket = []byte("sessions")
	labelBucket   = []byte("labels")
	customLabels  = []byte("custom")
)

// DB is the database storage interface.
type DB interface {
	// SaveSession appends a finished journey to the history.
	SaveSession(sess *models.FocusSession) error
	// GetSessions returns every saved session, newest first.
	GetSessions() ([]models.FocusSession, error)
	// SaveLabels replaces the stored custom labels.
	SaveLabels(labels []label.MissionLabel) error
	// GetLabels returns the stored custom labels.
	GetLabels() ([]label.MissionLabel, error)
	// Close ends the database connection
	Close() error
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func seqKey(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)

	return b
}

// SaveSession stores sess under the next sequence number so that a reverse
// cursor walk yields the newest session first.
func (c *Client) SaveSession(sess *models.FocusSession) error {
	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionBucket)

		n, err := b.NextSequence()
		if err != nil {
			return err
		}

		return b.Put(seqKey(n), value)
	})
}

func (c *Client) GetSessions() ([]models.FocusSession, error) {
	var sessions []models.FocusSession

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket(sessionBucket).Cursor()

		for k, v := cur.Last(); k != nil; k, v = cur.Prev() {
			var sess models.FocusSession

			if err := json.Unmarshal(v, &sess); err != nil {
				return errCorruptSession.Fmt(binary.BigEndian.Uint64(k)).Wrap(err)
			}

			sessions = append(sessions, sess)
		}

		return nil
	})

	return sessions, err
}

func (c *Client) SaveLabels(labels []label.MissionLabel) error {
	if labels == nil {
		labels = []label.MissionLabel{}
	}

	value, err := json.Marshal(labels)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(labelBucket).Put(customLabels, value)
	})
}

func (c *Client) GetLabels() ([]label.MissionLabel, error) {
	var labels []label.MissionLabel

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(labelBucket).Get(customLabels)
		if len(v) == 0 {
			return nil
		}

		return json.Unmarshal(v, &labels)
	})

	return labels, err
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errFocusRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}
	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists(sessionBucket)
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists(labelBucket)

		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
