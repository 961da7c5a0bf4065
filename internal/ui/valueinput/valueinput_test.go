package valueinput

import (
	"testing"

	"github.com/llehouerou/rangeslider/internal/ui/action"
	"github.com/llehouerou/rangeslider/internal/ui/testutil"
)

const testContext = "test-ctx"

func newTestInput(initialText string, isRange bool) *testutil.PopupHarness {
	m := New()
	m.Start("Value", initialText, isRange, testContext, 60, 10)
	return testutil.NewPopupHarness(&m)
}

func getResult(t *testing.T, h *testutil.PopupHarness) Result {
	t.Helper()
	cmd := h.LastCommand()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	msg := testutil.ExecuteCmd(cmd)
	actionMsg, ok := msg.(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", msg)
	}
	result, ok := actionMsg.Action.(Result)
	if !ok {
		t.Fatalf("expected Result, got %T", actionMsg.Action)
	}
	return result
}

func TestValueInput_InitialText(t *testing.T) {
	h := newTestInput("42", false)
	h.SendKey("enter")

	result := getResult(t, h)
	if result.Canceled {
		t.Error("expected Canceled=false")
	}
	if len(result.Values) != 1 || result.Values[0] != 42 {
		t.Errorf("Values = %v, want [42]", result.Values)
	}
	if result.Context != testContext {
		t.Errorf("Context = %v, want %q", result.Context, testContext)
	}
}

func TestValueInput_EditText(t *testing.T) {
	h := newTestInput("42", false)
	h.SendKey("backspace")
	h.SendKey("backspace")
	h.Type("17.5")
	h.SendKey("enter")

	result := getResult(t, h)
	if len(result.Values) != 1 || result.Values[0] != 17.5 {
		t.Errorf("Values = %v, want [17.5]", result.Values)
	}
}

func TestValueInput_Range(t *testing.T) {
	h := newTestInput("", true)
	h.Type("10, 90")
	h.SendKey("enter")

	result := getResult(t, h)
	if len(result.Values) != 2 || result.Values[0] != 10 || result.Values[1] != 90 {
		t.Errorf("Values = %v, want [10 90]", result.Values)
	}
}

func TestValueInput_InvalidKeepsPopupOpen(t *testing.T) {
	h := newTestInput("", false)
	h.Type("abc")
	cmd := h.SendKey("enter")

	if cmd != nil {
		t.Fatal("expected no command for invalid input")
	}
	m, ok := h.Popup().(*Model)
	if !ok {
		t.Fatalf("expected *Model, got %T", h.Popup())
	}
	if m.Err() == "" {
		t.Error("expected an error message")
	}
	view := testutil.StripANSI(h.View())
	if testutil.FindLine(view, "not a number") == "" {
		t.Errorf("error not shown in view:\n%s", view)
	}
}

func TestValueInput_Escape(t *testing.T) {
	h := newTestInput("42", false)
	h.SendKey("esc")

	result := getResult(t, h)
	if !result.Canceled {
		t.Error("expected Canceled=true")
	}
	if result.Context != testContext {
		t.Errorf("Context = %v, want %q", result.Context, testContext)
	}
}

func TestValueInput_View(t *testing.T) {
	h := newTestInput("", true)
	view := testutil.StripANSI(h.View())

	if testutil.FindLine(view, "Value") == "" {
		t.Error("view should contain title")
	}
	if testutil.FindLine(view, "Esc: cancel") == "" {
		t.Error("view should contain hint")
	}
}

func TestValueInput_ZeroSizeRendersNothing(t *testing.T) {
	m := New()
	if got := m.View(); got != "" {
		t.Errorf("View() = %q, want empty", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		isRange bool
		want    []float64
		wantErr bool
	}{
		{"integer", "42", false, []float64{42}, false},
		{"negative", "-1.5", false, []float64{-1.5}, false},
		{"si prefix", "2k", false, []float64{2000}, false},
		{"padded", "  7 ", false, []float64{7}, false},
		{"pair comma", "10,90", true, []float64{10, 90}, false},
		{"pair spaces", "10 90", true, []float64{10, 90}, false},
		{"empty", "", false, nil, true},
		{"garbage", "abc", false, nil, true},
		{"unit suffix", "5kg", false, nil, true},
		{"pair in single mode", "1,2", false, nil, true},
		{"single in range mode", "1", true, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text, tt.isRange)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Parse(%q)[%d] = %v, want %v", tt.text, i, got[i], tt.want[i])
				}
			}
		})
	}
}
