// Package store owns the authoritative in-memory copy of the portal's
// three record collections and keeps a single JSON aggregate on disk in
// sync after every mutation. The aggregate is the sole unit of
// persistence: each mutation derives the new state and rewrites the
// file wholesale.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/finsaarthi/scholarhub/internal/app/models"
)

// Aggregate is the serialized shape of the whole database.
type Aggregate struct {
	Users        []models.User        `json:"users"`
	Scholarships []models.Scholarship `json:"scholarships"`
	Applications []models.Application `json:"applications"`
}

// Event describes a committed mutation.
type Event struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     string `json:"id"`
}

// Event entities and actions
const (
	EntityUser        = "user"
	EntityScholarship = "scholarship"
	EntityApplication = "application"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Listener receives change events after a mutation has been committed
// and persisted. Listeners must not call back into the store
// synchronously with blocking work; fan-out belongs to the events hub.
type Listener func(Event)

// Store is the data store. Construct it once with New, call Load before
// first use and inject it into every consumer.
type Store struct {
	mu        sync.RWMutex
	path      string
	logger    zerolog.Logger
	data      Aggregate
	listeners []Listener
}

// New creates a store bound to the given aggregate file path. No I/O
// happens until Load is called.
func New(path string, logger zerolog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.With().Str("component", "store").Logger(),
	}
}

// Load initializes the aggregate from the persisted file. A missing or
// unparsable file is treated as absent: the store falls open to the
// built-in seed dataset and never surfaces a hard error.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("Failed to read aggregate file, falling back to seed data")
		} else {
			s.logger.Info().Str("path", s.path).Msg("No aggregate file found, seeding initial data")
		}
		s.data = SeedAggregate()
		s.persistLocked()
		return nil
	}

	var data Aggregate
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("Aggregate file is unparsable, falling back to seed data")
		s.data = SeedAggregate()
		s.persistLocked()
		return nil
	}

	s.data = data
	s.logger.Info().
		Int("users", len(data.Users)).
		Int("scholarships", len(data.Scholarships)).
		Int("applications", len(data.Applications)).
		Msg("Aggregate loaded")
	return nil
}

// Save flushes the current aggregate to disk. Mutations persist
// themselves; Save exists for explicit lifecycle points like shutdown.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked()
}

// Subscribe registers a change listener. Not safe to call concurrently
// with mutations; wire subscribers during bootstrap.
func (s *Store) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Snapshot returns a deep-enough copy of the aggregate for read-only
// inspection and serialization round-trips.
func (s *Store) Snapshot() Aggregate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Aggregate{
		Users:        append([]models.User(nil), s.data.Users...),
		Scholarships: append([]models.Scholarship(nil), s.data.Scholarships...),
		Applications: append([]models.Application(nil), s.data.Applications...),
	}
}

// persistLocked writes the aggregate to disk, logging and swallowing
// failures: the in-memory state stays authoritative for the session and
// the next session simply will not see the unsaved mutation.
func (s *Store) persistLocked() {
	if err := s.writeLocked(); err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg("Failed to persist aggregate")
	}
}

func (s *Store) writeLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	// Write-then-rename so a crash mid-write cannot corrupt the aggregate.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// commit persists the aggregate and queues change notification. Must be
// called with the write lock held; returns the events to emit after the
// lock is released.
func (s *Store) commitLocked(events ...Event) []Event {
	s.persistLocked()
	return events
}

// emit delivers events to listeners. Call without holding the lock.
func (s *Store) emit(events []Event) {
	for _, ev := range events {
		for _, l := range s.listeners {
			l(ev)
		}
	}
}
