package timemetrics

import (
	"fmt"
	"math"
	"time"
)

const timeLayout = "15:04"

// RangePlaceholder is shown when either bound of a window is missing.
const RangePlaceholder = "-"

// ElapsedMinutes is the span between two timestamps in minutes. Missing
// bounds and inverted pairs both count as "no time recorded" and return 0;
// the dashboard tolerates dirty rows instead of rejecting them.
func ElapsedMinutes(start, end *time.Time) float64 {
	if start == nil || end == nil {
		return 0
	}

	d := end.Sub(*start)
	if d < 0 {
		return 0
	}

	return d.Minutes()
}

// FormatHM renders minutes as HH:MM, rounding to the nearest whole minute.
func FormatHM(minutes float64) string {
	total := roundMinutes(minutes)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatHMWords renders minutes as "<H> hours <M> minutes".
func FormatHMWords(minutes float64) string {
	total := roundMinutes(minutes)
	return fmt.Sprintf("%d hours %d minutes", total/60, total%60)
}

// FormatRange renders "HH:MM - HH:MM", or the placeholder when either bound
// is absent.
func FormatRange(start, end *time.Time) string {
	if start == nil || end == nil {
		return RangePlaceholder
	}
	return start.Format(timeLayout) + " - " + end.Format(timeLayout)
}

func roundMinutes(minutes float64) int {
	total := int(math.Round(minutes))
	if total < 0 {
		return 0
	}
	return total
}
