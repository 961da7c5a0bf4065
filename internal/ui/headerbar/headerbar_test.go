package headerbar

import (
	"strings"
	"testing"

	"github.com/llehouerou/rangeslider/internal/ui/testutil"
)

func TestRender(t *testing.T) {
	got := testutil.StripANSI(Render("rangeslider", []string{"Simple", "Range"}, 1, 60))

	if w := testutil.MeasureWidth(got); w != 60 {
		t.Errorf("width = %d, want 60", w)
	}
	if !strings.HasPrefix(got, "rangeslider  Simple │ Range") {
		t.Errorf("header = %q", got)
	}
	if !strings.HasSuffix(got, "? help") {
		t.Errorf("header should end with the help hint: %q", got)
	}
}

func TestRender_TruncatesTabs(t *testing.T) {
	tabs := []string{"First slider", "Second slider", "Third slider", "Fourth slider"}
	got := testutil.StripANSI(Render("rangeslider", tabs, 0, 40))

	if w := testutil.MeasureWidth(got); w != 40 {
		t.Errorf("width = %d, want 40", w)
	}
	if !strings.Contains(got, "…") {
		t.Errorf("expected truncation marker: %q", got)
	}
	if !strings.HasSuffix(got, "? help") {
		t.Errorf("help hint must survive truncation: %q", got)
	}
}

func TestRender_TooNarrow(t *testing.T) {
	if got := Render("rangeslider", nil, 0, 10); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}
