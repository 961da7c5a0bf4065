package config

// DefaultSliders returns the demo sliders used when no config defines any.
func DefaultSliders() []SliderConfig {
	return []SliderConfig{
		{
			Name:      "simple",
			Title:     "Simple",
			Value:     int64(50),
			Persist:   true,
			AriaLabel: "Simple slider",
		},
		{
			Name:      "range",
			Title:     "Range",
			Range:     true,
			Value:     []any{int64(20), int64(60)},
			Persist:   true,
			AriaLabel: []any{"Range start", "Range end"},
		},
		{
			Name:  "ticks",
			Title: "Ticks",
			Max:   int64(5),
			Step:  0.2,
			Value: 2.4,
			Ticks: true,
		},
		{
			Name:        "custom-ticks",
			Title:       "Custom ticks",
			Max:         int64(20000),
			Step:        int64(1000),
			Value:       int64(7000),
			Ticks:       true,
			MajorEvery:  5,
			TickLabels:  true,
			ValueFormat: FormatSI,
		},
		{
			Name:     "disabled",
			Title:    "Disabled",
			Range:    true,
			Value:    []any{int64(30), int64(70)},
			Disabled: true,
		},
		{
			Name:        "events",
			Title:       "Events",
			Step:        0.5,
			Value:       int64(25),
			ValueFormat: FormatPercent,
		},
	}
}
