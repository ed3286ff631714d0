// Package model defines shared data structures.
package model

import "time"

// Config defines session settings.
type Config struct {
	Duration     time.Duration
	Sentences    int
	TickInterval time.Duration
}

// Sample is a metrics snapshot taken at a whole elapsed second.
type Sample struct {
	Second int
	WPM    int
	RawWPM int
}

// Result is the frozen summary of a finished session.
type Result struct {
	StartedAt time.Time
	Duration  time.Duration
	WPM       int
	RawWPM    int
	Accuracy  int
	Correct   int
	Incorrect int
	Extra     int
	Samples   []Sample
}

// Total returns the number of attempted characters.
func (r Result) Total() int {
	return r.Correct + r.Incorrect + r.Extra
}
