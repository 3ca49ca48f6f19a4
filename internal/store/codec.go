package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/thenoetrevino/fitcal/internal/models"
)

// TimestampLayout is the ISO-8601 form written for entry timestamps
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in UTC with TimestampLayout. Timestamps finer
// than a millisecond, which only come from externally written snapshots,
// keep their full precision.
func FormatTimestamp(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()%int(time.Millisecond) != 0 {
		return t.Format(time.RFC3339Nano)
	}
	return t.Format(TimestampLayout)
}

// ErrMalformedSnapshot indicates persisted data that is not a date-keyed JSON object
var ErrMalformedSnapshot = errors.New("malformed workout snapshot")

// PartialSnapshotError reports entries dropped while decoding an otherwise readable snapshot
type PartialSnapshotError struct {
	Dropped []string
}

func (e *PartialSnapshotError) Error() string {
	return fmt.Sprintf("dropped %d unreadable workout entries: %s", len(e.Dropped), strings.Join(e.Dropped, "; "))
}

// entryRecord is the on-disk shape of an entry
type entryRecord struct {
	ID        *int64  `json:"id"`
	Type      string  `json:"type"`
	Notes     string  `json:"notes"`
	Timestamp *string `json:"timestamp"`
}

// Encode serializes the whole store as {"YYYY-MM-DD": [entry, ...]}
func Encode(s Store) ([]byte, error) {
	snapshot := make(map[string][]entryRecord, len(s.days))
	for d, entries := range s.days {
		if len(entries) == 0 {
			continue
		}
		records := make([]entryRecord, len(entries))
		for i, e := range entries {
			id := e.ID
			ts := FormatTimestamp(e.CreatedAt)
			records[i] = entryRecord{
				ID:        &id,
				Type:      string(e.Type),
				Notes:     e.Notes,
				Timestamp: &ts,
			}
		}
		snapshot[d.String()] = records
	}
	// encoding/json sorts map keys, which keeps snapshots stable on disk
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to encode workout snapshot: %w", err)
	}
	return data, nil
}

// Decode reads a snapshot written by Encode.
//
// Empty input decodes to an empty store. Input that is not a JSON object of
// arrays yields an empty store and ErrMalformedSnapshot. Individual unreadable
// entries are dropped and reported through a *PartialSnapshotError while the
// rest of the store is kept. The returned store is always usable.
func Decode(data []byte) (Store, error) {
	store := Empty()

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return store, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return store, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var dropped []string
	seen := make(map[int64]bool)

	for _, key := range keys {
		date, err := models.ParseDate(key)
		if err != nil {
			dropped = append(dropped, fmt.Sprintf("date key %q", key))
			continue
		}

		var items []json.RawMessage
		if err := json.Unmarshal(raw[key], &items); err != nil {
			dropped = append(dropped, fmt.Sprintf("%s: entries are not a list", key))
			continue
		}

		for i, item := range items {
			entry, err := decodeEntry(item)
			if err != nil {
				dropped = append(dropped, fmt.Sprintf("%s[%d]: %v", key, i, err))
				continue
			}
			if seen[entry.ID] {
				dropped = append(dropped, fmt.Sprintf("%s[%d]: duplicate id %d", key, i, entry.ID))
				continue
			}
			seen[entry.ID] = true
			store.put(date, entry)
		}
	}

	if len(dropped) > 0 {
		return store, &PartialSnapshotError{Dropped: dropped}
	}
	return store, nil
}

func decodeEntry(item json.RawMessage) (models.Entry, error) {
	var rec entryRecord
	if err := json.Unmarshal(item, &rec); err != nil {
		return models.Entry{}, errors.New("not an entry object")
	}
	if rec.ID == nil {
		return models.Entry{}, errors.New("missing id")
	}

	wt := models.WorkoutType(rec.Type)
	if !wt.Valid() {
		return models.Entry{}, fmt.Errorf("unknown type %q", rec.Type)
	}

	if rec.Timestamp == nil {
		return models.Entry{}, errors.New("missing timestamp")
	}
	ts, err := time.Parse(time.RFC3339Nano, *rec.Timestamp)
	if err != nil {
		return models.Entry{}, fmt.Errorf("bad timestamp %q", *rec.Timestamp)
	}

	return models.Entry{
		ID:        *rec.ID,
		Type:      wt,
		Notes:     rec.Notes,
		CreatedAt: ts.UTC(),
	}, nil
}
