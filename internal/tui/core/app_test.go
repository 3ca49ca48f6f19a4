package core

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/fitcal/internal/app"
	"github.com/thenoetrevino/fitcal/internal/testutil"
	"github.com/thenoetrevino/fitcal/internal/tui"
	"github.com/thenoetrevino/fitcal/internal/tui/state"
)

func TestApp_DelegatesToModel(t *testing.T) {
	ctx := context.Background()
	clock := func() time.Time { return time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local) }
	application := app.New(ctx, testutil.NewMemoryStore(), app.WithClock(clock))

	a := New(ctx, application, tui.WithClock(clock))
	if a.Init() != nil {
		t.Error("Init should not start any command")
	}

	model, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if model != a {
		t.Fatal("Update should return the wrapper itself")
	}
	if got := a.GetModel().UiState.Width(); got != 100 {
		t.Errorf("Width = %d, want 100", got)
	}

	a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := a.GetModel().UiState.Mode(); got != state.DaySheetMode {
		t.Errorf("Mode = %v, want day-sheet", got)
	}

	if content := a.View().Content; !strings.Contains(content, "2024") {
		t.Errorf("view does not show the month:\n%s", content)
	}
}
