//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/llehouerou/rangeslider/internal/slider"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpSliderSet,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpStateOpen,
			err:      errors.New("permission denied"),
			expected: "Failed to open saved values: permission denied",
		},
		{
			name:     "configuration error",
			op:       OpSliderCreate,
			err:      &slider.ConfigurationError{Op: "new", Setting: "step", Reason: "must be positive, got 0"},
			expected: "Failed to create slider: step must be positive, got 0",
		},
		{
			name:     "wrapped configuration error",
			op:       OpConfigLoad,
			err:      fmt.Errorf("slider %q: %w", "x", &slider.ConfigurationError{Op: "set", Setting: "min", Reason: "type string is not supported"}),
			expected: "Failed to load configuration: min type string is not supported",
		},
		{
			name:     "value type error",
			op:       OpSliderSet,
			err:      &slider.ValueTypeError{Op: "setValue", Value: "high"},
			expected: "Failed to set slider value: high is not a number or a pair",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpStateRestore,
			context:  "volume",
			err:      nil,
			expected: "",
		},
		{
			name:     "with context",
			op:       OpStateRestore,
			context:  "volume",
			err:      errors.New("database is locked"),
			expected: "Failed to restore saved value 'volume': database is locked",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpSliderMove,
			context:  "",
			err:      errors.New("boom"),
			expected: "Failed to move slider: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
