package slider

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	ErrConfiguration = errors.New("slider: configuration error")
	ErrValueType     = errors.New("slider: unsupported value type")
)

// ConfigurationError reports an unsupported setting name, a setting value of
// the wrong type, or a missing required capability.
type ConfigurationError struct {
	Op      string // "get", "set", "new"
	Setting string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("slider: setting %q: %s", e.Setting, e.Reason)
	}
	return fmt.Sprintf("slider %s: setting %q: %s", e.Op, e.Setting, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// ValueTypeError reports a value argument that is neither a number nor a pair.
type ValueTypeError struct {
	Op    string
	Value any
}

func (e *ValueTypeError) Error() string {
	return fmt.Sprintf("slider %s: value %v (%T) is not a number or a pair", e.Op, e.Value, e.Value)
}

func (e *ValueTypeError) Unwrap() error { return ErrValueType }

func unknownSetting(op, name string) error {
	return &ConfigurationError{Op: op, Setting: name, Reason: "not supported"}
}

func badSettingType(op, name string, v any) error {
	return &ConfigurationError{Op: op, Setting: name, Reason: fmt.Sprintf("type %T is not supported", v)}
}
