package store

import (
	"testing"
	"time"

	"github.com/thenoetrevino/fitcal/internal/models"
)

var (
	march15 = models.Date{Year: 2024, Month: time.March, Day: 15}
	march16 = models.Date{Year: 2024, Month: time.March, Day: 16}
	baseNow = time.Date(2024, time.March, 15, 18, 30, 0, 123456789, time.UTC)
)

func TestEmptyStore_EntriesForAnyKey(t *testing.T) {
	s := Empty()
	for _, d := range []models.Date{march15, march16, {}} {
		if got := s.EntriesFor(d); len(got) != 0 {
			t.Errorf("EntriesFor(%v) on empty store = %v, want empty", d, got)
		}
	}

	var zero Store
	if got := zero.EntriesFor(march15); len(got) != 0 {
		t.Errorf("zero Store EntriesFor = %v, want empty", got)
	}
}

func TestAdd_Scenario(t *testing.T) {
	s, entry, ok := Empty().Add(march15, models.WorkoutCardio, "30 min run", baseNow)
	if !ok {
		t.Fatal("Add should accept a valid type")
	}

	got := s.EntriesFor(march15)
	if len(got) != 1 {
		t.Fatalf("EntriesFor(2024-03-15) len = %d, want 1", len(got))
	}
	if got[0].Type != models.WorkoutCardio || got[0].Notes != "30 min run" {
		t.Errorf("entry = %+v, want Cardio / 30 min run", got[0])
	}
	if got[0].ID != entry.ID {
		t.Errorf("stored id %d differs from returned id %d", got[0].ID, entry.ID)
	}
	if !got[0].CreatedAt.Equal(baseNow.Truncate(time.Millisecond)) {
		t.Errorf("CreatedAt = %v, want %v", got[0].CreatedAt, baseNow.Truncate(time.Millisecond))
	}

	if other := s.EntriesFor(march16); len(other) != 0 {
		t.Errorf("EntriesFor(2024-03-16) = %v, want empty", other)
	}
}

func TestAdd_AppendsInOrder(t *testing.T) {
	s := Empty()
	types := []models.WorkoutType{models.WorkoutStrength, models.WorkoutYoga, models.WorkoutRestDay}
	for i, wt := range types {
		var ok bool
		s, _, ok = s.Add(march15, wt, "", baseNow.Add(time.Duration(i)*time.Second))
		if !ok {
			t.Fatalf("Add %v rejected", wt)
		}
	}

	got := s.EntriesFor(march15)
	if len(got) != len(types) {
		t.Fatalf("len = %d, want %d", len(got), len(types))
	}
	for i, wt := range types {
		if got[i].Type != wt {
			t.Errorf("entry %d type = %v, want %v", i, got[i].Type, wt)
		}
	}
}

func TestAdd_DoesNotMutateReceiver(t *testing.T) {
	before, _, _ := Empty().Add(march15, models.WorkoutYoga, "", baseNow)
	after, _, _ := before.Add(march15, models.WorkoutSports, "", baseNow)

	if before.Count(march15) != 1 {
		t.Errorf("receiver changed: count = %d, want 1", before.Count(march15))
	}
	if after.Count(march15) != 2 {
		t.Errorf("result count = %d, want 2", after.Count(march15))
	}
}

func TestAdd_RejectsUnsetOrUnknownType(t *testing.T) {
	s, _, _ := Empty().Add(march15, models.WorkoutYoga, "", baseNow)

	for _, wt := range []models.WorkoutType{"", "Pilates", "cardio"} {
		next, entry, ok := s.Add(march15, wt, "notes", baseNow)
		if ok {
			t.Errorf("Add(%q) should be rejected", wt)
		}
		if entry.ID != 0 {
			t.Errorf("Add(%q) returned entry %+v", wt, entry)
		}
		if !next.Equal(s) {
			t.Errorf("Add(%q) changed the store", wt)
		}
	}
}

func TestAdd_IDsUniqueAcrossStore(t *testing.T) {
	// Same clock reading for every add: ids must still differ, across dates too
	s := Empty()
	ids := map[int64]bool{}
	for i := 0; i < 5; i++ {
		date := march15
		if i%2 == 1 {
			date = march16
		}
		var e models.Entry
		s, e, _ = s.Add(date, models.WorkoutCardio, "", baseNow)
		if ids[e.ID] {
			t.Fatalf("duplicate id %d", e.ID)
		}
		ids[e.ID] = true
	}

	// A clock that went backwards still yields fresh ids
	_, e, _ := s.Add(march15, models.WorkoutCardio, "", baseNow.Add(-time.Hour))
	if ids[e.ID] {
		t.Errorf("id %d reused after clock moved backwards", e.ID)
	}
}

func TestDelete_RemovesOnlyTarget(t *testing.T) {
	s, first, _ := Empty().Add(march15, models.WorkoutStrength, "first", baseNow)
	s, second, _ := s.Add(march15, models.WorkoutCardio, "second", baseNow.Add(time.Second))
	s, third, _ := s.Add(march15, models.WorkoutYoga, "third", baseNow.Add(2*time.Second))

	s, ok := s.Delete(march15, second.ID)
	if !ok {
		t.Fatal("Delete should report removal")
	}

	got := s.EntriesFor(march15)
	if len(got) != 2 || got[0].ID != first.ID || got[1].ID != third.ID {
		t.Errorf("after delete = %+v, want [first third]", got)
	}
}

func TestDelete_FirstOfTwoScenario(t *testing.T) {
	s, first, _ := Empty().Add(march15, models.WorkoutStrength, "", baseNow)
	s, second, _ := s.Add(march15, models.WorkoutCardio, "", baseNow)

	s, _ = s.Delete(march15, first.ID)
	got := s.EntriesFor(march15)
	if len(got) != 1 || got[0].ID != second.ID {
		t.Errorf("EntriesFor = %+v, want only second", got)
	}
}

func TestDelete_LastEntryLeavesNoKey(t *testing.T) {
	s, e, _ := Empty().Add(march15, models.WorkoutCardio, "", baseNow)
	s, _ = s.Delete(march15, e.ID)

	if got := s.EntriesFor(march15); len(got) != 0 {
		t.Errorf("EntriesFor after deleting last = %v, want empty", got)
	}
	if len(s.Dates()) != 0 {
		t.Errorf("Dates() = %v, want none", s.Dates())
	}
	if !s.Equal(Empty()) {
		t.Error("store with emptied date should equal an empty store")
	}
}

func TestDelete_MissingIsNoop(t *testing.T) {
	s, e, _ := Empty().Add(march15, models.WorkoutCardio, "", baseNow)

	if next, ok := s.Delete(march15, e.ID+1000); ok || !next.Equal(s) {
		t.Error("deleting an unknown id should be a no-op")
	}
	if next, ok := s.Delete(march16, e.ID); ok || !next.Equal(s) {
		t.Error("deleting on an absent date should be a no-op")
	}
}

func TestEntriesFor_ReturnsCopy(t *testing.T) {
	s, _, _ := Empty().Add(march15, models.WorkoutCardio, "keep", baseNow)
	got := s.EntriesFor(march15)
	got[0].Notes = "mutated"

	if s.EntriesFor(march15)[0].Notes != "keep" {
		t.Error("EntriesFor leaked internal slice")
	}
}

func TestQueries(t *testing.T) {
	april1 := models.Date{Year: 2024, Month: time.April, Day: 1}
	s, _, _ := Empty().Add(march16, models.WorkoutCardio, "", baseNow)
	s, _, _ = s.Add(april1, models.WorkoutYoga, "", baseNow)
	s, target, _ := s.Add(march15, models.WorkoutSports, "", baseNow)

	dates := s.Dates()
	if len(dates) != 3 || dates[0] != march15 || dates[2] != april1 {
		t.Errorf("Dates() = %v, want sorted [03-15 03-16 04-01]", dates)
	}

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}

	month := s.EntriesInMonth(2024, time.March)
	if len(month) != 2 {
		t.Errorf("EntriesInMonth(March) has %d days, want 2", len(month))
	}
	if other := s.EntriesInMonth(2023, time.March); len(other) != 0 {
		t.Errorf("EntriesInMonth(2023-03) has %d days, want 0", len(other))
	}

	e, d, ok := s.Find(target.ID)
	if !ok || d != march15 || e.Type != models.WorkoutSports {
		t.Errorf("Find(%d) = %+v %v %v", target.ID, e, d, ok)
	}
	if _, _, ok := s.Find(-1); ok {
		t.Error("Find(-1) should fail")
	}
}
