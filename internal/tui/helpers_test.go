package tui

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/fitcal/internal/app"
	"github.com/thenoetrevino/fitcal/internal/models"
	"github.com/thenoetrevino/fitcal/internal/testutil"
)

// fixedNow is the wall clock every test model runs at
var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)

func fixedClock() time.Time { return fixedNow }

const testSnapshot = `{
  "2024-03-15": [
    {"id": 1710500000001, "type": "Cardio", "notes": "5k", "timestamp": "2024-03-15T09:00:00.000Z"},
    {"id": 1710500000002, "type": "Yoga", "notes": "", "timestamp": "2024-03-15T09:10:00.000Z"}
  ],
  "2024-03-02": [
    {"id": 1709370000000, "type": "Strength", "notes": "", "timestamp": "2024-03-02T08:00:00.000Z"}
  ]
}`

// setupTestModel creates a sized model over a seeded in-memory store
func setupTestModel(t *testing.T) (Model, *testutil.MemoryStore) {
	t.Helper()
	return setupTestModelWithData(t, testSnapshot)
}

// setupTestModelWithData creates a sized model over snapshot; "" leaves storage empty
func setupTestModelWithData(t *testing.T, snapshot string) (Model, *testutil.MemoryStore) {
	t.Helper()
	ctx := context.Background()

	kv := testutil.NewMemoryStore()
	if snapshot != "" {
		kv.Put(models.DefaultStorageKey, snapshot)
	}
	application := app.New(ctx, kv, app.WithClock(fixedClock))

	m := InitialModel(ctx, application, WithClock(fixedClock))
	m = updateModel(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, kv
}

// updateModel updates the model with a message and returns the updated model
func updateModel(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// press sends each key in order
func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m = updateModel(m, keyPress(k))
	}
	return m
}

// typeText sends s one rune at a time
func typeText(m Model, s string) Model {
	for _, r := range s {
		m = updateModel(m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return m
}

// keyPress builds the key message a terminal would deliver for k
func keyPress(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "ctrl+s":
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg{Code: r, Text: k}
}

// plainView renders the model with styling removed
func plainView(m Model) string {
	return ansi.Strip(m.View().Content)
}

func date(month time.Month, day int) models.Date {
	return models.Date{Year: 2024, Month: month, Day: day}
}
