// Package layout provides pure functions for UI dimension calculations.
package layout

import "github.com/llehouerou/rangeslider/internal/ui"

// NarrowThreshold is the terminal width below which the layout switches to narrow mode.
// In narrow mode, the event log is displayed below the sliders instead of beside them.
const NarrowThreshold = 100

// HeaderHeight and StatusHeight are the single-line bars above and below
// the content area.
const (
	HeaderHeight = 1
	StatusHeight = 1
)

// MinLogHeight is the smallest event log panel, borders included.
const MinLogHeight = 5

// PanelChromeWidth is the horizontal space taken by a panel border and its
// padding.
const PanelChromeWidth = 4

// ContentHeight calculates the available height for sliders and event log.
func ContentHeight(windowHeight int) int {
	return max(windowHeight-HeaderHeight-StatusHeight, 0)
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// SlidersWidth calculates the width of the slider column.
// In narrow mode returns full width, otherwise 2/3 of the width.
func SlidersWidth(windowWidth int, narrowMode bool) int {
	if narrowMode {
		return windowWidth
	}
	return windowWidth * 2 / 3
}

// LogWidth calculates the width of the event log panel.
func LogWidth(windowWidth int, narrowMode bool) int {
	if narrowMode {
		return windowWidth
	}
	return windowWidth - SlidersWidth(windowWidth, narrowMode)
}

// LogHeight calculates the height of the event log panel.
// In narrow mode it takes 1/3 of the content height, at least MinLogHeight.
func LogHeight(contentHeight int, narrowMode bool) int {
	if !narrowMode {
		return contentHeight
	}
	return min(max(contentHeight/3, MinLogHeight), contentHeight)
}

// SlidersHeight calculates the height available to slider panels.
func SlidersHeight(contentHeight int, narrowMode bool) int {
	if !narrowMode {
		return contentHeight
	}
	return contentHeight - LogHeight(contentHeight, narrowMode)
}

// PanelHeight returns the height of a slider panel whose view has the given
// number of lines.
func PanelHeight(lines int) int {
	return lines + ui.BorderHeight
}

// VisiblePanels returns the range [first, last) of panels to draw in the
// given height so that panel focus is visible. Panels are kept from the top
// when possible.
func VisiblePanels(heights []int, available, focus int) (first, last int) {
	if len(heights) == 0 {
		return 0, 0
	}
	focus = max(0, min(focus, len(heights)-1))

	// Start from the top and slide down until focus fits.
	for first = 0; first <= focus; first++ {
		used := 0
		last = first
		for last < len(heights) && used+heights[last] <= available {
			used += heights[last]
			last++
		}
		if focus < last {
			return first, last
		}
	}
	// Focus does not fit at all: show it alone.
	return focus, focus + 1
}
