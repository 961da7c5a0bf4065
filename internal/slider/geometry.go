package slider

import (
	"math"
	"strconv"
)

// roundDecimals is the precision every stored and emitted value is rounded to.
const roundDecimals = 10

// PercentToValue maps a track percentage (0-100) to a domain value.
func PercentToValue(percent, minVal, maxVal float64) float64 {
	return minVal + (maxVal-minVal)*percent/100
}

// ValueToPercent maps a domain value to a track percentage clamped to [0, 100].
func ValueToPercent(value, minVal, maxVal float64) float64 {
	return clamp(100*(value-minVal)/(maxVal-minVal), 0, 100)
}

// offsetToPercent maps a position along a track of the given width to a
// percentage clamped to [0, 100].
func offsetToPercent(offset, width float64) float64 {
	return ValueToPercent(offset, 0, width)
}

// RoundValue rounds x to 10 decimal places to absorb floating point drift
// (0.1+0.2 and friends).
func RoundValue(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', roundDecimals, 64), 64)
	if err != nil {
		return x
	}
	if v == 0 {
		// -0 would print as "-0"
		return 0
	}
	return v
}

// Quantize returns the point of the lattice {minVal + k*step} nearest to x.
// When x is exactly halfway between two lattice points the upper one wins.
func Quantize(x, minVal, step float64) float64 {
	steps := (x - minVal) / step
	lower := minVal + math.Floor(steps)*step
	upper := minVal + math.Ceil(steps)*step
	if math.Abs(upper-x) <= math.Abs(lower-x) {
		return upper
	}
	return lower
}

// FixValue clamps and quantizes a proposed [lo, hi] pair so that
// minVal <= lo <= hi <= maxVal and both ends lie on the step lattice.
//
// allowSame permits lo == hi; when false the ends are kept at least one step
// apart. anchorLow selects which end holds its position when the two would
// cross: true keeps lo and pushes hi up, false keeps hi and pushes lo down.
func FixValue(v Pair, minVal, maxVal, step float64, allowSame, anchorLow bool) Pair {
	gap := step
	if allowSame {
		gap = 0
	}

	lo := clamp(v[0], minVal, maxVal-gap)
	hi := clamp(v[1], minVal+gap, maxVal)
	lo = Quantize(lo, minVal, step)
	hi = Quantize(hi, minVal, step)

	if anchorLow {
		hi = math.Max(lo+gap, hi)
	} else {
		lo = math.Min(lo, hi-gap)
	}

	return Pair{RoundValue(lo), RoundValue(hi)}
}

// FormatValue is the default value text formatter: the shortest decimal
// representation of v.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
