package estimation

import "math"

// MinTrackDays is the smallest estimate a track can receive.
const MinTrackDays = 1

// RoundDays rounds half up to whole person-days, never below MinTrackDays.
// Values beyond the int range saturate at math.MaxInt.
// Totals are summed after rounding, so a plan total can differ from the rounded exact sum.
func RoundDays(days float64) int {
	if math.IsNaN(days) {
		return MinTrackDays
	}
	rounded := math.Floor(days + 0.5)
	if rounded >= float64(math.MaxInt) {
		return math.MaxInt
	}
	if rounded < MinTrackDays {
		return MinTrackDays
	}
	return int(rounded)
}
