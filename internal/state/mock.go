package state

import (
	"database/sql"
	"sort"

	"github.com/llehouerou/rangeslider/internal/slider"
)

// Mock is a test double for Manager. Saves are applied immediately.
type Mock struct {
	values map[string]SliderValue
	saves  int
	closed bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{values: make(map[string]SliderValue)}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) GetValue(name string) (*SliderValue, error) {
	v, ok := m.values[name]
	if !ok {
		return nil, nil //nolint:nilnil // mirrors Manager
	}
	return &v, nil
}

func (m *Mock) SaveValue(name string, p slider.Pair) {
	m.saves++
	m.values[name] = SliderValue{Name: name, Lo: p[0], Hi: p[1]}
}

func (m *Mock) ListValues() ([]SliderValue, error) {
	out := make([]SliderValue, 0, len(m.values))
	for _, v := range m.values {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Mock) DeleteValue(name string) error {
	delete(m.values, name)
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetValue(name string, p slider.Pair) {
	m.values[name] = SliderValue{Name: name, Lo: p[0], Hi: p[1]}
}

func (m *Mock) Saves() int { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
