package writer

import (
	"math"
	"strconv"
)

// NumberIsInteger reports whether f has no fractional component and is
// small enough that a bare integer literal round-trips without needing
// scientific notation.
func NumberIsInteger(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f) && math.Abs(f) < 1e21
}

// FormatNumber renders f in the strict-JSON canonical form used by both
// [WriteXJS] and [WriteStrict]: a bare integer literal when
// [NumberIsInteger], otherwise the shortest round-tripping decimal with a
// lowercase 'e' exponent (Go's 'g' verb already omits a trailing ".0" and
// lowercases the exponent, so no further trimming is needed).
func FormatNumber(f float64) string {
	if NumberIsInteger(f) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}
