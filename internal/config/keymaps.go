package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Calendar navigation
	PrevDay   string `yaml:"prev_day"`
	NextDay   string `yaml:"next_day"`
	PrevWeek  string `yaml:"prev_week"`
	NextWeek  string `yaml:"next_week"`
	PrevMonth string `yaml:"prev_month"`
	NextMonth string `yaml:"next_month"`
	GoToday   string `yaml:"go_today"`
	OpenDay   string `yaml:"open_day"`

	// Workouts
	AddWorkout    string `yaml:"add_workout"`
	DeleteWorkout string `yaml:"delete_workout"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Calendar navigation
		PrevDay:   "h",
		NextDay:   "l",
		PrevWeek:  "k",
		NextWeek:  "j",
		PrevMonth: "[",
		NextMonth: "]",
		GoToday:   "t",
		OpenDay:   "enter",

		// Workouts
		AddWorkout:    "a",
		DeleteWorkout: "d",

		// Forms
		SaveForm: "ctrl+s",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	fill(&k.PrevDay, defaults.PrevDay)
	fill(&k.NextDay, defaults.NextDay)
	fill(&k.PrevWeek, defaults.PrevWeek)
	fill(&k.NextWeek, defaults.NextWeek)
	fill(&k.PrevMonth, defaults.PrevMonth)
	fill(&k.NextMonth, defaults.NextMonth)
	fill(&k.GoToday, defaults.GoToday)
	fill(&k.OpenDay, defaults.OpenDay)
	fill(&k.AddWorkout, defaults.AddWorkout)
	fill(&k.DeleteWorkout, defaults.DeleteWorkout)
	fill(&k.SaveForm, defaults.SaveForm)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
