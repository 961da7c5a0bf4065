package slider

// DefaultTrackWidth is the track width of an auto-created MemorySurface.
const DefaultTrackWidth = 100

// Surface is the host that displays a slider. Geometry reads come from it at
// drag start; everything else is pushed to it by the slider.
type Surface interface {
	// TrackWidth is the length of the handle track in host units.
	TrackWidth() float64
	// HandleCenter is the current centre of a handle, measured from the
	// start of the track in host units.
	HandleCenter(h Handle) float64
	// PlaceHandles positions both handles, and the range fill between them,
	// at the given track percentages.
	PlaceHandles(loPercent, hiPercent float64)
	SetAttribute(h Handle, name, value string)
	RemoveAttribute(h Handle, name string)
	// SetDisabled marks the whole control as disabled or enabled.
	SetDisabled(disabled bool)
	SetTicks(ticks []Tick)
}

// MemorySurface is a Surface that only records what it is told. It backs
// headless sliders and tests.
type MemorySurface struct {
	width    float64
	percents [2]float64
	attrs    [2]map[string]string
	disabled bool
	ticks    []Tick
}

// Compile-time check that MemorySurface implements Surface.
var _ Surface = (*MemorySurface)(nil)

// NewMemorySurface creates a surface with a track of the given width.
func NewMemorySurface(width float64) *MemorySurface {
	return &MemorySurface{
		width: width,
		attrs: [2]map[string]string{{}, {}},
	}
}

// SetTrackWidth changes the reported track width.
func (m *MemorySurface) SetTrackWidth(width float64) {
	m.width = width
}

func (m *MemorySurface) TrackWidth() float64 {
	return m.width
}

func (m *MemorySurface) HandleCenter(h Handle) float64 {
	return m.percents[h] * m.width / 100
}

func (m *MemorySurface) PlaceHandles(loPercent, hiPercent float64) {
	m.percents = [2]float64{loPercent, hiPercent}
}

func (m *MemorySurface) SetAttribute(h Handle, name, value string) {
	m.attrs[h][name] = value
}

func (m *MemorySurface) RemoveAttribute(h Handle, name string) {
	delete(m.attrs[h], name)
}

func (m *MemorySurface) SetDisabled(disabled bool) {
	m.disabled = disabled
}

func (m *MemorySurface) SetTicks(ticks []Tick) {
	m.ticks = ticks
}

// Percent returns the last placed position of a handle.
func (m *MemorySurface) Percent(h Handle) float64 {
	return m.percents[h]
}

// Fill returns the range fill as left offset and width, in percent.
func (m *MemorySurface) Fill() (left, width float64) {
	return m.percents[HandleMin], m.percents[HandleMax] - m.percents[HandleMin]
}

// Attribute returns an attribute of a handle and whether it is set.
func (m *MemorySurface) Attribute(h Handle, name string) (string, bool) {
	v, ok := m.attrs[h][name]
	return v, ok
}

// IsDisabled reports the last disabled state pushed to the surface.
func (m *MemorySurface) IsDisabled() bool {
	return m.disabled
}

// Ticks returns the last tick set pushed to the surface.
func (m *MemorySurface) Ticks() []Tick {
	return m.ticks
}
