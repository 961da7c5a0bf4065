// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"

	"github.com/llehouerou/rangeslider/internal/slider"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Slider operations
	OpSliderCreate Op = "create slider"
	OpSliderSet    Op = "set slider value"
	OpSliderMove   Op = "move slider"

	// Persistence
	OpStateOpen    Op = "open saved values"
	OpStateRestore Op = "restore saved value"
	OpStateClose   Op = "save values"
	OpStateForget  Op = "forget saved value"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %s", op, describe(err))
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %s", op, context, describe(err))
}

// describe drops the package prefixes of engine errors, which mean nothing
// on a status line.
func describe(err error) string {
	var cfgErr *slider.ConfigurationError
	if errors.As(err, &cfgErr) {
		return fmt.Sprintf("%s %s", cfgErr.Setting, cfgErr.Reason)
	}
	var valErr *slider.ValueTypeError
	if errors.As(err, &valErr) {
		return fmt.Sprintf("%v is not a number or a pair", valErr.Value)
	}
	return err.Error()
}
