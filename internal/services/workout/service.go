// Package workout is the single owner of the in-memory workout store.
// It loads the snapshot once and writes the full snapshot back after every
// successful mutation.
package workout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/fitcal/internal/database"
	"github.com/thenoetrevino/fitcal/internal/models"
	"github.com/thenoetrevino/fitcal/internal/store"
)

// Service defines all workout operations used by the TUI and the CLI
type Service interface {
	// Load reads the persisted snapshot. It never fails: missing or unreadable
	// data leaves the store empty (or partially filled) and is logged.
	Load(ctx context.Context)

	// Read operations
	Store() store.Store
	EntriesFor(date models.Date) []models.Entry
	MonthEntries(year int, month time.Month) map[models.Date][]models.Entry

	// Write operations
	Add(ctx context.Context, req AddEntryRequest) (models.Entry, error)
	Delete(ctx context.Context, date models.Date, id int64) (bool, error)
}

// AddEntryRequest encapsulates data for recording a workout
type AddEntryRequest struct {
	Date  models.Date
	Type  models.WorkoutType
	Notes string
}

// service implements Service over a key-value backend
type service struct {
	kv      database.KeyValueStore
	key     string
	current store.Store
	now     func() time.Time
	logger  *slog.Logger
}

// NewService creates a workout service over kv. Call Load before use.
func NewService(kv database.KeyValueStore, opts ...Option) Service {
	s := &service{
		kv:      kv,
		key:     models.DefaultStorageKey,
		current: store.Empty(),
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory store with the persisted snapshot
func (s *service) Load(ctx context.Context) {
	s.current = store.Empty()

	raw, ok, err := s.kv.GetItem(ctx, s.key)
	if err != nil {
		s.logger.Warn("failed to read workouts, starting empty", "key", s.key, "error", err)
		return
	}
	if !ok {
		s.logger.Debug("no saved workouts", "key", s.key)
		return
	}

	loaded, err := store.Decode([]byte(raw))
	var partial *store.PartialSnapshotError
	switch {
	case errors.As(err, &partial):
		s.logger.Warn("dropped unreadable workout entries", "count", len(partial.Dropped), "details", partial.Error())
	case err != nil:
		s.logger.Warn("saved workouts are malformed, starting empty", "error", err)
	}

	s.current = loaded
	s.logger.Info("loaded workouts", "entries", loaded.Len(), "days", len(loaded.Dates()))
}

// Store returns the current store value
func (s *service) Store() store.Store {
	return s.current
}

// EntriesFor returns the entries recorded on date
func (s *service) EntriesFor(date models.Date) []models.Entry {
	return s.current.EntriesFor(date)
}

// MonthEntries returns the entries of every day in the month that has any
func (s *service) MonthEntries(year int, month time.Month) map[models.Date][]models.Entry {
	return s.current.EntriesInMonth(year, month)
}

// Add records a workout and persists the full snapshot.
// A persist failure keeps the entry in memory and returns it with ErrPersistFailed.
func (s *service) Add(ctx context.Context, req AddEntryRequest) (models.Entry, error) {
	if err := s.validateAdd(req); err != nil {
		return models.Entry{}, err
	}

	next, entry, ok := s.current.Add(req.Date, req.Type, req.Notes, s.now())
	if !ok {
		return models.Entry{}, models.ErrInvalidWorkoutType
	}
	s.current = next
	s.logger.Debug("workout added", "date", req.Date.String(), "id", entry.ID, "type", entry.Type)

	return entry, s.persist(ctx)
}

// Delete removes an entry and persists the full snapshot.
// An unknown date or id returns false and writes nothing.
func (s *service) Delete(ctx context.Context, date models.Date, id int64) (bool, error) {
	next, removed := s.current.Delete(date, id)
	if !removed {
		return false, nil
	}
	s.current = next
	s.logger.Debug("workout deleted", "date", date.String(), "id", id)

	return true, s.persist(ctx)
}

func (s *service) validateAdd(req AddEntryRequest) error {
	if req.Type == "" {
		return models.ErrWorkoutTypeRequired
	}
	if !req.Type.Valid() {
		return fmt.Errorf("%w %q", models.ErrInvalidWorkoutType, req.Type)
	}
	if req.Date.IsZero() {
		return models.ErrInvalidDate
	}
	if utf8.RuneCountInString(req.Notes) > MaxNotesLength {
		return ErrNotesTooLong
	}
	return nil
}

// persist writes the whole store under the storage key
func (s *service) persist(ctx context.Context) error {
	data, err := store.Encode(s.current)
	if err != nil {
		s.logger.Error("failed to encode workouts", "error", err)
		return fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	if err := s.kv.SetItem(ctx, s.key, string(data)); err != nil {
		s.logger.Error("failed to save workouts", "error", err)
		return fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	return nil
}
