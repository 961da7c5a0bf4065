package valueinput

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

var errEmpty = errors.New("enter a value")

// Parse reads one value, or two separated by a comma or spaces. Values may
// carry an SI prefix ("2.5k").
func Parse(text string, isRange bool) ([]float64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, errEmpty
	}

	want := 1
	if isRange {
		want = 2
	}
	if len(fields) != want {
		return nil, fmt.Errorf("expected %d value(s), got %d", want, len(fields))
	}

	values := make([]float64, 0, want)
	for _, f := range fields {
		v, unit, err := humanize.ParseSI(f)
		if err != nil || unit != "" {
			return nil, fmt.Errorf("not a number: %q", f)
		}
		values = append(values, v)
	}
	return values, nil
}
