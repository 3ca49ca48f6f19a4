package layers

import "testing"

func TestSheetWidth(t *testing.T) {
	tests := []struct {
		screen, want int
	}{
		{30, DaySheetMinWidth},
		{60, 56},
		{200, DaySheetMaxWidth},
	}
	for _, tt := range tests {
		if got := SheetWidth(tt.screen, DaySheetMinWidth, DaySheetMaxWidth); got != tt.want {
			t.Errorf("SheetWidth(%d) = %d, want %d", tt.screen, got, tt.want)
		}
	}
}

func TestCreateLayers_EmptyContent(t *testing.T) {
	if CreateCenteredLayer("", 80, 24) != nil {
		t.Error("CreateCenteredLayer should return nil for empty content")
	}
	if CreateBottomSheetLayer("", 80, 24, StatusBarReserved) != nil {
		t.Error("CreateBottomSheetLayer should return nil for empty content")
	}
	if CreateBottomSheetLayer("sheet", 80, 24, StatusBarReserved) == nil {
		t.Error("CreateBottomSheetLayer returned nil for content")
	}
}
