package session

import (
	"time"

	"github.com/verte-zerg/typesprint/internal/model"
)

// State is the lifecycle phase of a session.
type State int

const (
	// Idle sessions wait for the first keystroke.
	Idle State = iota
	// Running sessions count down and update metrics.
	Running
	// Finished sessions are frozen.
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Session is the complete state of one typing test. Methods return updated
// copies and never mutate the receiver.
type Session struct {
	Target    string
	Typed     string
	StartedAt time.Time
	Duration  time.Duration
	Counts    Counts
	Metrics   Metrics
	TimeLeft  int
	Finished  bool
	Samples   []model.Sample
}

// New returns an idle session for the given target text.
func New(target string, duration time.Duration) Session {
	return Session{
		Target:   target,
		Duration: duration,
		TimeLeft: seconds(duration),
		Metrics:  Metrics{Accuracy: 100},
	}
}

// State reports the current lifecycle phase.
func (s Session) State() State {
	switch {
	case s.Finished:
		return Finished
	case s.StartedAt.IsZero():
		return Idle
	default:
		return Running
	}
}

// Deadline returns the instant the countdown reaches zero. It is zero while idle.
func (s Session) Deadline() time.Time {
	if s.StartedAt.IsZero() {
		return time.Time{}
	}
	return s.StartedAt.Add(s.Duration)
}

// Input replaces the typed text and reclassifies it. The first non-empty
// input starts the countdown. Input at or past the deadline finishes the
// session instead of being recorded.
func (s Session) Input(typed string, now time.Time) Session {
	switch s.State() {
	case Finished:
		return s
	case Idle:
		if typed == "" {
			return s
		}
		s.StartedAt = now
	case Running:
		if !now.Before(s.Deadline()) {
			return s.Tick(now)
		}
	}
	s.Typed = typed
	s.Counts = Classify(s.Target, typed)
	s.Metrics.Accuracy = Accuracy(s.Counts)
	return s
}

// Tick recomputes the countdown and metrics from a single clock reading.
// When the countdown reaches zero the metrics are computed one last time
// and the session is finished.
func (s Session) Tick(now time.Time) Session {
	if s.State() != Running {
		return s
	}
	if deadline := s.Deadline(); now.After(deadline) {
		now = deadline
	}
	elapsed := now.Sub(s.StartedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	total := seconds(s.Duration)
	second := int(elapsed / time.Second)

	s.TimeLeft = total - second
	if s.TimeLeft < 0 {
		s.TimeLeft = 0
	}
	if m, ok := ComputeMetrics(s.StartedAt, now, s.Counts); ok {
		s.Metrics = m
	}
	if second > 0 && (len(s.Samples) == 0 || s.Samples[len(s.Samples)-1].Second < second) {
		s.Samples = appendSample(s.Samples, model.Sample{
			Second: second,
			WPM:    s.Metrics.WPM,
			RawWPM: s.Metrics.RawWPM,
		})
	}
	if s.TimeLeft == 0 {
		s.Finished = true
	}
	return s
}

// Result returns the summary of the session as it currently stands.
func (s Session) Result() model.Result {
	samples := make([]model.Sample, len(s.Samples))
	copy(samples, s.Samples)
	return model.Result{
		StartedAt: s.StartedAt,
		Duration:  s.Duration,
		WPM:       s.Metrics.WPM,
		RawWPM:    s.Metrics.RawWPM,
		Accuracy:  s.Metrics.Accuracy,
		Correct:   s.Counts.Correct,
		Incorrect: s.Counts.Incorrect,
		Extra:     s.Counts.Extra,
		Samples:   samples,
	}
}

func appendSample(samples []model.Sample, sample model.Sample) []model.Sample {
	out := make([]model.Sample, len(samples), len(samples)+1)
	copy(out, samples)
	return append(out, sample)
}

func seconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(d / time.Second)
}
