package formatter

import (
	"math"
	"strconv"
	"time"
)

// FormatDelta renders d in the short single-unit form used by the delta
// column: "0ms", "750ms", "2s", "5m", "3h", "2d". Larger units are
// rounded to the nearest integer.
func FormatDelta(d time.Duration) string {
	ms := float64(d) / float64(time.Millisecond)
	abs := math.Abs(ms)

	switch {
	case abs >= float64(24*time.Hour/time.Millisecond):
		return round(ms, 24*time.Hour) + "d"
	case abs >= float64(time.Hour/time.Millisecond):
		return round(ms, time.Hour) + "h"
	case abs >= float64(time.Minute/time.Millisecond):
		return round(ms, time.Minute) + "m"
	case abs >= float64(time.Second/time.Millisecond):
		return round(ms, time.Second) + "s"
	}
	return strconv.FormatInt(int64(ms), 10) + "ms"
}

func round(ms float64, unit time.Duration) string {
	return strconv.FormatInt(int64(math.Round(ms/float64(unit/time.Millisecond))), 10)
}
