package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui"
	"github.com/llehouerou/rangeslider/internal/ui/render"
	"github.com/llehouerou/rangeslider/internal/ui/styles"
)

// Demo entries that are not slider events.
const (
	kindDisabled = "disabled"
	kindEnabled  = "enabled"
)

// Entry is one line of the event log.
type Entry struct {
	Time   time.Time
	Slider string
	Kind   string
	Value  string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %-12s %-12s %s", e.Time.Format("15:04:05.000"), e.Slider, e.Kind, e.Value)
}

// EventLog keeps the most recent entries, oldest first.
type EventLog struct {
	entries []Entry
	limit   int
}

// NewEventLog creates a log keeping at most limit entries.
func NewEventLog(limit int) *EventLog {
	return &EventLog{limit: max(limit, 1)}
}

// Add appends an entry, dropping the oldest one when full.
func (l *EventLog) Add(e Entry) {
	if len(l.entries) == l.limit {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:len(l.entries)-1]
	}
	l.entries = append(l.entries, e)
}

// Entries returns the entries, oldest first.
func (l *EventLog) Entries() []Entry {
	return l.entries
}

// Len returns the number of entries.
func (l *EventLog) Len() int {
	return len(l.entries)
}

// Clear removes all entries.
func (l *EventLog) Clear() {
	l.entries = nil
}

// Render draws the newest entries that fit in a width x height panel,
// border included.
func (l *EventLog) Render(width, height int) string {
	if width < 6 || height < ui.BorderHeight+1 {
		return ""
	}
	s := styles.T().S()
	inner := width - 4

	rows := height - ui.BorderHeight - 1 // title line
	start := max(len(l.entries)-rows, 0)

	lines := make([]string, 0, rows+1)
	lines = append(lines, s.Title.Render(render.Truncate(fmt.Sprintf("Events (%d)", len(l.entries)), inner)))
	for _, e := range l.entries[start:] {
		lines = append(lines, kindStyle(e.Kind).Render(render.TruncateAndPad(e.String(), inner)))
	}

	return styles.PanelStyle(false).
		Width(width - 2).
		Height(height - ui.BorderHeight).
		Render(strings.Join(lines, "\n"))
}

func kindStyle(kind string) lipgloss.Style {
	s := styles.T().S()
	switch kind {
	case string(slider.EventStartChange):
		return s.Success
	case string(slider.EventStopChange):
		return s.Warning
	case kindDisabled, kindEnabled:
		return s.Muted
	}
	return s.Base
}
