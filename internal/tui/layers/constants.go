package layers

const (
	SheetMargin = 4 // columns left free on each side of a sheet, combined

	DaySheetMinWidth = 40
	DaySheetMaxWidth = 72

	FormMinWidth = 44
	FormMaxWidth = 72

	HelpWidth = 52

	StatusBarReserved = 1 // rows kept for the status bar under a sheet
)
