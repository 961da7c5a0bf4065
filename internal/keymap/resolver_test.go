//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionIncrease, []string{"right", "up"}, "Increase", "slider"},
		{ActionDecrease, []string{"left", "down"}, "Decrease", "slider"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"right", ActionIncrease},
		{"up", ActionIncrease},
		{"left", ActionDecrease},
		{"down", ActionDecrease},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := r.Resolve(tt.key)
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionHome, []string{"home"}, "Minimum", "slider"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		action   Action
		expected []string
	}{
		{ActionQuit, []string{"q", "ctrl+c"}},
		{ActionHome, []string{"home"}},
		{Action("unknown"), nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			result := r.KeysFor(tt.action)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("KeysFor(%q) = %v, want nil", tt.action, result)
				}
				return
			}

			if !slices.Equal(result, tt.expected) {
				t.Errorf("KeysFor(%q) = %v, want %v", tt.action, result, tt.expected)
			}
		})
	}
}

func TestResolver_DeduplicatesKeys(t *testing.T) {
	bindings := []Binding{
		{ActionEditValue, []string{"enter", "="}, "Type a value", "demo"},
		{ActionEditValue, []string{"="}, "Type a value", "slider"},
	}

	r := NewResolver(bindings)

	keys := r.KeysFor(ActionEditValue)
	if !slices.Equal(keys, []string{"enter", "="}) {
		t.Errorf("KeysFor(ActionEditValue) = %v, want [enter =]", keys)
	}
}

func TestResolver_Describe(t *testing.T) {
	r := Default()

	if got := r.Describe(ActionQuit); got != "q/ctrl+c" {
		t.Errorf("Describe(ActionQuit) = %q, want %q", got, "q/ctrl+c")
	}
	if got := r.Describe(Action("unknown")); got != "" {
		t.Errorf("Describe(unknown) = %q, want empty", got)
	}
}

func TestDefault_KnownKeys(t *testing.T) {
	r := Default()

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"tab", ActionSwitchHandle},
		{"home", ActionHome},
		{"end", ActionEnd},
		{"pgup", ActionPageIncrease},
		{"pgdown", ActionPageDecrease},
		{"up", ActionIncrease},
		{"right", ActionIncrease},
		{"down", ActionDecrease},
		{"left", ActionDecrease},
		{"[", ActionMoveBack},
		{"]", ActionMoveForward},
	}

	for _, tt := range tests {
		if got := r.Resolve(tt.key); got != tt.expected {
			t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.expected)
		}
	}
}

func TestDefault_NoKeyBoundTwice(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range Bindings {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok && prev != b.Action {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"no duplicates", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"with duplicates", []string{"a", "b", "a", "c", "b"}, []string{"a", "b", "c"}},
		{"empty slice", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := dedupe(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("dedupe(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestResolver_EmptyBindings(t *testing.T) {
	r := NewResolver([]Binding{})

	if action := r.Resolve("q"); action != "" {
		t.Errorf("Resolve on empty resolver should return empty, got %q", action)
	}

	if keys := r.KeysFor(ActionQuit); keys != nil {
		t.Errorf("KeysFor on empty resolver should return nil, got %v", keys)
	}
}
