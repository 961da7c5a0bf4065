package state

import (
	"database/sql"

	"github.com/llehouerou/rangeslider/internal/slider"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	GetValue(name string) (*SliderValue, error)
	SaveValue(name string, p slider.Pair)
	ListValues() ([]SliderValue, error)
	DeleteValue(name string) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
