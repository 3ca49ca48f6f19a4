// Package store holds the date-keyed workout store and its snapshot codec.
//
// Store is a value: every mutation returns a new Store and leaves the receiver
// untouched, so the owner decides when the change becomes current and when it
// is persisted.
package store

import (
	"sort"
	"time"

	"github.com/thenoetrevino/fitcal/internal/models"
)

// Store maps a calendar date to its entries in insertion order.
// A date with no entries is never present as a key.
type Store struct {
	days  map[models.Date][]models.Entry
	maxID int64
}

// Empty returns a store with no entries
func Empty() Store {
	return Store{days: map[models.Date][]models.Entry{}}
}

// EntriesFor returns a copy of the entries recorded on date, empty when there are none
func (s Store) EntriesFor(date models.Date) []models.Entry {
	entries := s.days[date]
	out := make([]models.Entry, len(entries))
	copy(out, entries)
	return out
}

// Count returns the number of entries on date
func (s Store) Count(date models.Date) int {
	return len(s.days[date])
}

// Len returns the number of entries in the whole store
func (s Store) Len() int {
	n := 0
	for _, entries := range s.days {
		n += len(entries)
	}
	return n
}

// Dates returns every date that has entries, oldest first
func (s Store) Dates() []models.Date {
	dates := make([]models.Date, 0, len(s.days))
	for d := range s.days {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// EntriesInMonth returns the entries of every day in year/month that has any
func (s Store) EntriesInMonth(year int, month time.Month) map[models.Date][]models.Entry {
	out := make(map[models.Date][]models.Entry)
	for d := range s.days {
		if d.Year == year && d.Month == month {
			out[d] = s.EntriesFor(d)
		}
	}
	return out
}

// Find returns the entry with id and the date it is recorded on
func (s Store) Find(id int64) (models.Entry, models.Date, bool) {
	for d, entries := range s.days {
		for _, e := range entries {
			if e.ID == id {
				return e, d, true
			}
		}
	}
	return models.Entry{}, models.Date{}, false
}

// Add appends a new entry of type wt to date.
// The entry gets a store-wide unique id derived from now and a millisecond UTC timestamp.
// An unset or unknown type leaves the store unchanged and reports false.
func (s Store) Add(date models.Date, wt models.WorkoutType, notes string, now time.Time) (Store, models.Entry, bool) {
	if !wt.Valid() {
		return s, models.Entry{}, false
	}

	id := now.UnixMilli()
	if id <= s.maxID {
		id = s.maxID + 1
	}

	entry := models.Entry{
		ID:        id,
		Type:      wt,
		Notes:     notes,
		CreatedAt: now.UTC().Truncate(time.Millisecond),
	}

	next := s.clone()
	existing := s.days[date]
	entries := make([]models.Entry, len(existing), len(existing)+1)
	copy(entries, existing)
	next.days[date] = append(entries, entry)
	next.maxID = id

	return next, entry, true
}

// Delete removes the entry with id from date.
// A missing date or id is a no-op and reports false.
func (s Store) Delete(date models.Date, id int64) (Store, bool) {
	existing := s.days[date]
	idx := -1
	for i, e := range existing {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, false
	}

	next := s.clone()
	if len(existing) == 1 {
		delete(next.days, date)
		return next, true
	}

	entries := make([]models.Entry, 0, len(existing)-1)
	entries = append(entries, existing[:idx]...)
	entries = append(entries, existing[idx+1:]...)
	next.days[date] = entries
	return next, true
}

// Equal reports whether both stores hold the same dates with identical entry sequences
func (s Store) Equal(other Store) bool {
	if len(s.days) != len(other.days) {
		return false
	}
	for d, a := range s.days {
		b, ok := other.days[d]
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i].ID != b[i].ID || a[i].Type != b[i].Type || a[i].Notes != b[i].Notes || !a[i].CreatedAt.Equal(b[i].CreatedAt) {
				return false
			}
		}
	}
	return true
}

// clone copies the map; entry slices are shared and must be replaced, not mutated
func (s Store) clone() Store {
	days := make(map[models.Date][]models.Entry, len(s.days)+1)
	for d, entries := range s.days {
		days[d] = entries
	}
	return Store{days: days, maxID: s.maxID}
}

// put appends a decoded entry; used by the codec only
func (s *Store) put(date models.Date, e models.Entry) {
	if s.days == nil {
		s.days = map[models.Date][]models.Entry{}
	}
	s.days[date] = append(s.days[date], e)
	if e.ID > s.maxID {
		s.maxID = e.ID
	}
}
