package sliderview

import (
	"math"

	"github.com/llehouerou/rangeslider/internal/slider"
)

// Surface is the terminal slider.Surface. The track is a row of cells; host
// units are cell columns measured from the first cell, so a track of n
// cells is n-1 units wide.
type Surface struct {
	cells    int
	percents [2]float64
	attrs    [2]map[string]string
	disabled bool
	ticks    []slider.Tick
}

var _ slider.Surface = (*Surface)(nil)

// NewSurface creates a surface with a track of the given number of cells.
func NewSurface(cells int) *Surface {
	return &Surface{
		cells: cells,
		attrs: [2]map[string]string{{}, {}},
	}
}

// SetCells resizes the track. Handle positions are kept as percentages, so
// nothing needs re-placing.
func (s *Surface) SetCells(cells int) {
	s.cells = cells
}

// Cells returns the number of cells in the track.
func (s *Surface) Cells() int {
	return s.cells
}

func (s *Surface) TrackWidth() float64 {
	return float64(s.cells - 1)
}

func (s *Surface) HandleCenter(h slider.Handle) float64 {
	return s.percents[h] / 100 * s.TrackWidth()
}

func (s *Surface) PlaceHandles(loPercent, hiPercent float64) {
	s.percents = [2]float64{loPercent, hiPercent}
}

func (s *Surface) SetAttribute(h slider.Handle, name, value string) {
	s.attrs[h][name] = value
}

func (s *Surface) RemoveAttribute(h slider.Handle, name string) {
	delete(s.attrs[h], name)
}

func (s *Surface) SetDisabled(disabled bool) {
	s.disabled = disabled
}

func (s *Surface) SetTicks(ticks []slider.Tick) {
	s.ticks = ticks
}

// Column returns the cell a track percentage falls on.
func (s *Surface) Column(percent float64) int {
	if s.cells <= 1 {
		return 0
	}
	col := int(math.Round(percent / 100 * s.TrackWidth()))
	return max(0, min(s.cells-1, col))
}

// HandleColumn returns the cell a handle is drawn on.
func (s *Surface) HandleColumn(h slider.Handle) int {
	return s.Column(s.percents[h])
}

// Attribute returns an attribute of a handle.
func (s *Surface) Attribute(h slider.Handle, name string) string {
	return s.attrs[h][name]
}
