package session

import (
	"math"
	"time"
)

// charsPerWord is the standard word length used for WPM.
const charsPerWord = 5.0

// Metrics are the live or final scores of a session.
type Metrics struct {
	WPM      int
	RawWPM   int
	Accuracy int
}

// ComputeMetrics derives WPM, raw WPM and accuracy from counts and elapsed
// time. It reports false when start is unset or no time has elapsed, in which
// case callers keep their previous values.
func ComputeMetrics(start, now time.Time, c Counts) (Metrics, bool) {
	if start.IsZero() {
		return Metrics{}, false
	}
	elapsedMs := now.Sub(start).Milliseconds()
	if elapsedMs <= 0 {
		return Metrics{}, false
	}
	minutes := float64(elapsedMs) / 60000.0
	return Metrics{
		WPM:      perMinute(c.Correct, minutes),
		RawWPM:   perMinute(c.Total(), minutes),
		Accuracy: Accuracy(c),
	}, true
}

// Accuracy returns the rounded percentage of correct characters, or 100 when
// nothing has been attempted.
func Accuracy(c Counts) int {
	total := c.Total()
	if total == 0 {
		return 100
	}
	acc := finiteOrZero(math.Round(float64(c.Correct) / float64(total) * 100))
	if acc > 100 {
		return 100
	}
	return int(acc)
}

func perMinute(chars int, minutes float64) int {
	if minutes <= 0 {
		return 0
	}
	return int(finiteOrZero(math.Round(float64(chars) / charsPerWord / minutes)))
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
