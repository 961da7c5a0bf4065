// Package state persists the last value of each slider in sqlite.
package state

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/llehouerou/rangeslider/internal/db"
	"github.com/llehouerou/rangeslider/internal/slider"
)

const saveDebounce = 500 * time.Millisecond

type Manager struct {
	db *sql.DB
	// writeMu orders flushes and deletes so a flush that already took a
	// value cannot write it after the value was deleted.
	writeMu   sync.Mutex
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   map[string]SliderValue
	now       func() time.Time
}

// Open opens the state database at path; db.Memory gives a throwaway one.
func Open(path string) (*Manager, error) {
	conn, err := db.Open(path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return newManager(conn), nil
}

func newManager(conn *sql.DB) *Manager {
	return &Manager{
		db:      conn,
		pending: make(map[string]SliderValue),
		now:     time.Now,
	}
}

// Close flushes pending saves and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveMu.Unlock()

	flushErr := m.Flush()
	if err := m.db.Close(); err != nil {
		return err
	}
	return flushErr
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// GetValue returns the saved value of a slider, or nil when none was saved.
// A pending save is returned before it reaches the database.
func (m *Manager) GetValue(name string) (*SliderValue, error) {
	m.saveMu.Lock()
	if v, ok := m.pending[name]; ok {
		m.saveMu.Unlock()
		return &v, nil
	}
	m.saveMu.Unlock()

	return getValue(m.db, name)
}

// ListValues returns all saved values, sorted by slider name.
func (m *Manager) ListValues() ([]SliderValue, error) {
	if err := m.Flush(); err != nil {
		return nil, err
	}
	return listValues(m.db)
}

// DeleteValue forgets the saved value of a slider.
func (m *Manager) DeleteValue(name string) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	m.saveMu.Lock()
	delete(m.pending, name)
	m.saveMu.Unlock()

	return deleteValue(m.db, name)
}

// SaveValue schedules a save of the slider value. Saves are debounced: a
// burst of changes during a drag results in one write.
func (m *Manager) SaveValue(name string, p slider.Pair) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending[name] = SliderValue{Name: name, Lo: p[0], Hi: p[1], UpdatedAt: m.now()}

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		_ = m.Flush()
	})
}

// Flush writes pending saves now.
func (m *Manager) Flush() error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	m.saveMu.Lock()
	values := make([]SliderValue, 0, len(m.pending))
	for _, v := range m.pending {
		values = append(values, v)
	}
	m.pending = make(map[string]SliderValue)
	m.saveMu.Unlock()

	sort.Slice(values, func(i, j int) bool { return values[i].Name < values[j].Name })
	return saveValues(context.Background(), m.db, values)
}
