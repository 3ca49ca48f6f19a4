package store

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/thenoetrevino/fitcal/internal/models"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	s, _, _ := Empty().Add(march15, models.WorkoutCardio, "30 min run", baseNow)
	s, _, _ = s.Add(march15, models.WorkoutRestDay, "", baseNow.Add(time.Minute))
	s, _, _ = s.Add(march16, models.WorkoutStrength, "5x5 squat\n3x8 bench", baseNow.Add(time.Hour))

	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	loaded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !loaded.Equal(s) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded.EntriesFor(march15), s.EntriesFor(march15))
	}

	// ids issued after a load must not collide with loaded ones
	_, e, _ := loaded.Add(march16, models.WorkoutYoga, "", baseNow)
	if _, _, exists := s.Find(e.ID); exists {
		t.Errorf("id %d collides with a loaded entry", e.ID)
	}
}

func TestEncode_Layout(t *testing.T) {
	now := time.Date(2024, time.March, 15, 9, 5, 7, 250*int(time.Millisecond), time.UTC)
	s, e, _ := Empty().Add(march15, models.WorkoutCardio, "run", now)

	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var raw map[string][]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("output is not a date-keyed object: %v", err)
	}
	records, ok := raw["2024-03-15"]
	if !ok || len(records) != 1 {
		t.Fatalf("missing 2024-03-15 key in %s", data)
	}
	rec := records[0]
	if rec["type"] != "Cardio" || rec["notes"] != "run" {
		t.Errorf("record = %v", rec)
	}
	if rec["timestamp"] != "2024-03-15T09:05:07.250Z" {
		t.Errorf("timestamp = %v, want 2024-03-15T09:05:07.250Z", rec["timestamp"])
	}
	if id, _ := rec["id"].(float64); int64(id) != e.ID {
		t.Errorf("id = %v, want %d", rec["id"], e.ID)
	}
}

func TestEncode_EmptyStore(t *testing.T) {
	data, err := Encode(Empty())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Encode(Empty()) = %s, want {}", data)
	}
}

func TestDecode_EmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "null", "{}"} {
		s, err := Decode([]byte(in))
		if err != nil {
			t.Errorf("Decode(%q) error = %v, want nil", in, err)
		}
		if s.Len() != 0 {
			t.Errorf("Decode(%q) has %d entries", in, s.Len())
		}
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, in := range []string{"not json", "[1,2,3]", `"text"`, `{"2024-03-15": [`} {
		s, err := Decode([]byte(in))
		if !errors.Is(err, ErrMalformedSnapshot) {
			t.Errorf("Decode(%q) error = %v, want ErrMalformedSnapshot", in, err)
		}
		if s.Len() != 0 {
			t.Errorf("Decode(%q) should give an empty store", in)
		}
		// The returned store must be usable
		if _, _, ok := s.Add(march15, models.WorkoutYoga, "", baseNow); !ok {
			t.Errorf("store from Decode(%q) rejects adds", in)
		}
	}
}

func TestDecode_DropsUnreadableEntriesKeepsRest(t *testing.T) {
	in := `{
		"2024-03-15": [
			{"id": 1, "type": "Cardio", "notes": "ok", "timestamp": "2024-03-15T10:00:00.000Z"},
			{"id": 2, "notes": "no type", "timestamp": "2024-03-15T10:00:00.000Z"},
			{"id": 3, "type": "Pilates", "timestamp": "2024-03-15T10:00:00.000Z"},
			{"type": "Yoga", "timestamp": "2024-03-15T10:00:00.000Z"},
			{"id": 5, "type": "Yoga", "timestamp": "yesterday"},
			{"id": 6, "type": "Yoga"},
			"garbage",
			{"id": 1, "type": "Sports", "timestamp": "2024-03-15T10:00:00.000Z"},
			{"id": 7, "type": "Rest Day", "notes": "", "timestamp": "2024-03-15T11:00:00Z", "mood": "tired"}
		],
		"2024-3-16": [{"id": 8, "type": "Yoga", "timestamp": "2024-03-16T10:00:00.000Z"}],
		"2024-03-17": "nope"
	}`

	s, err := Decode([]byte(in))

	var partial *PartialSnapshotError
	if !errors.As(err, &partial) {
		t.Fatalf("Decode error = %v, want *PartialSnapshotError", err)
	}
	if len(partial.Dropped) != 9 {
		t.Errorf("dropped %d entries, want 9: %v", len(partial.Dropped), partial.Dropped)
	}
	if !strings.Contains(err.Error(), "duplicate id 1") {
		t.Errorf("error should mention the duplicate id: %v", err)
	}

	got := s.EntriesFor(march15)
	if len(got) != 2 {
		t.Fatalf("kept %d entries, want 2: %+v", len(got), got)
	}
	if got[0].ID != 1 || got[0].Notes != "ok" {
		t.Errorf("first kept entry = %+v", got[0])
	}
	if got[1].ID != 7 || got[1].Type != models.WorkoutRestDay {
		t.Errorf("second kept entry = %+v", got[1])
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestDecode_AcceptsExternalTimestamps(t *testing.T) {
	in := `{"2024-03-15": [{"id": 1710496800000, "type": "Strength", "notes": "legs", "timestamp": "2024-03-15T10:00:00.123Z"}]}`
	s, err := Decode([]byte(in))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	got := s.EntriesFor(march15)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	want := time.Date(2024, time.March, 15, 10, 0, 0, 123*int(time.Millisecond), time.UTC)
	if !got[0].CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", got[0].CreatedAt, want)
	}
	if got[0].ID != 1710496800000 {
		t.Errorf("ID = %d", got[0].ID)
	}
}

func TestEncode_KeepsSubMillisecondTimestamps(t *testing.T) {
	in := `{"2024-03-15": [{"id": 1, "type": "Yoga", "notes": "", "timestamp": "2024-03-15T10:00:00.123456Z"}]}`
	first, err := Decode([]byte(in))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	data, err := Encode(first)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.Contains(string(data), `"2024-03-15T10:00:00.123456Z"`) {
		t.Errorf("encoded timestamp lost precision: %s", data)
	}

	second, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode of re-encoded snapshot failed: %v", err)
	}
	if !second.Equal(first) {
		t.Errorf("re-encoded store differs:\n got %+v\nwant %+v", second.EntriesFor(march15), first.EntriesFor(march15))
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"whole millis", time.Date(2024, time.March, 15, 9, 5, 7, 250*int(time.Millisecond), time.UTC), "2024-03-15T09:05:07.250Z"},
		{"zero millis", time.Date(2024, time.March, 15, 9, 5, 7, 0, time.UTC), "2024-03-15T09:05:07.000Z"},
		{"microseconds", time.Date(2024, time.March, 15, 9, 5, 7, 123456000, time.UTC), "2024-03-15T09:05:07.123456Z"},
		{"converted to utc", time.Date(2024, time.March, 15, 10, 5, 7, 0, time.FixedZone("CET", 3600)), "2024-03-15T09:05:07.000Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.in); got != tt.want {
				t.Errorf("FormatTimestamp = %q, want %q", got, tt.want)
			}
		})
	}
}
