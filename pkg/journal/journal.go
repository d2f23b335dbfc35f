// Package journal owns the mood log and mirrors it into a blob store.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"tableflip.dev/moodmap/pkg/mood"
	"tableflip.dev/moodmap/pkg/store"
)

// ErrNoMood is returned by Append when no mood was selected.
var ErrNoMood = errors.New("journal: a mood must be selected")

// StorageError reports that the log changed in memory but could not be
// written to (or removed from) the blob store.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("journal: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Clock supplies creation times for new entries.
type Clock func() time.Time

// Store holds the log newest-first. A Store is owned by a single UI session
// and is not safe for concurrent mutation.
type Store struct {
	blob    store.Blob
	key     string
	now     Clock
	entries []mood.Entry
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the slot the log is written under.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithClock overrides the clock used to stamp new entries.
func WithClock(c Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.now = c
		}
	}
}

// New returns an empty Store over blob. Call Load to read what is persisted.
func New(blob store.Blob, opts ...Option) *Store {
	s := &Store{
		blob: blob,
		key:  store.DefaultKey,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open is New followed by Load.
func Open(ctx context.Context, blob store.Blob, opts ...Option) *Store {
	s := New(blob, opts...)
	s.Load(ctx)
	return s
}

// Key is the slot the log is persisted under.
func (s *Store) Key() string {
	return s.key
}

// Load replaces the in-memory log with the persisted one. A missing or
// unreadable value loads as an empty log.
func (s *Store) Load(ctx context.Context) {
	s.entries = nil
	logger := log.WithContext(ctx).WithField("key", s.key)

	data, err := s.blob.Get(s.key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.WithError(err).Warn("journal: unreadable store, starting empty")
		}
		return
	}

	var entries []mood.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.WithError(err).Warn("journal: malformed data, starting empty")
		return
	}
	s.entries = entries
}

// Append prepends a new entry stamped with the current time and persists the
// whole log. On a StorageError the entry is still kept in memory.
func (s *Store) Append(label string, intensity int, note string) (mood.Entry, error) {
	if strings.TrimSpace(label) == "" {
		return mood.Entry{}, ErrNoMood
	}

	e := mood.New(label, intensity, note, s.now())
	s.entries = append([]mood.Entry{e}, s.entries...)

	return e, s.persist()
}

// Clear empties the log and removes the persisted value entirely.
func (s *Store) Clear() error {
	s.entries = nil
	if err := s.blob.Remove(s.key); err != nil {
		return &StorageError{Op: "remove", Key: s.key, Err: err}
	}
	return nil
}

// All returns a copy of the log, newest first.
func (s *Store) All() []mood.Entry {
	out := make([]mood.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len is the number of logged entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Last returns the most recent entry.
func (s *Store) Last() (mood.Entry, bool) {
	if len(s.entries) == 0 {
		return mood.Entry{}, false
	}
	return s.entries[0], true
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return &StorageError{Op: "encode", Key: s.key, Err: err}
	}
	if err := s.blob.Set(s.key, data); err != nil {
		return &StorageError{Op: "write", Key: s.key, Err: err}
	}
	return nil
}
