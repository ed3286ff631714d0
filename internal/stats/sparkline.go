// Package stats renders session results as plain text.
package stats

import (
	"math"
	"strings"

	"github.com/verte-zerg/typesprint/internal/model"
)

const sparkChars = "▁▂▃▄▅▆▇█"

// Sparkline renders a single-line sparkline for the values. Values are scaled
// between zero and the series maximum so a flat series of zeros stays low.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	levels := []rune(sparkChars)
	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	var b strings.Builder
	for _, v := range values {
		idx := 0
		if maxVal > 0 && v > 0 {
			idx = int(math.Round(v / maxVal * float64(len(levels)-1)))
		}
		if idx < 0 {
			idx = 0
		}
		if idx >= len(levels) {
			idx = len(levels) - 1
		}
		b.WriteRune(levels[idx])
	}
	return b.String()
}

// WPMSeries extracts the WPM values of the samples.
func WPMSeries(samples []model.Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s.WPM)
	}
	return out
}

// Resample shrinks values to at most width points by averaging buckets.
func Resample(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		start := i * len(values) / width
		end := (i + 1) * len(values) / width
		if end <= start {
			end = start + 1
		}
		var sum float64
		for _, v := range values[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}
