package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestNewSessionIsIdle(t *testing.T) {
	s := New("ab", 30*time.Second)
	assert.Equal(t, Idle, s.State())
	assert.Equal(t, 30, s.TimeLeft)
	assert.Equal(t, "", s.Typed)
	assert.Equal(t, Counts{}, s.Counts)
	assert.Equal(t, 100, s.Metrics.Accuracy)
	assert.False(t, s.Finished)
	assert.True(t, s.Deadline().IsZero())
}

func TestFirstKeystrokeStartsOnce(t *testing.T) {
	s := New("abc", 30*time.Second)

	s = s.Input("", t0)
	assert.Equal(t, Idle, s.State(), "empty input does not start")

	s = s.Input("a", t0)
	require.Equal(t, Running, s.State())
	assert.Equal(t, t0, s.StartedAt)

	s = s.Input("ab", t0.Add(2*time.Second))
	assert.Equal(t, t0, s.StartedAt, "start time is fixed by the first keystroke")

	s = s.Input("", t0.Add(3*time.Second))
	assert.Equal(t, Running, s.State(), "clearing input keeps the session running")
	assert.Equal(t, t0, s.StartedAt)
}

func TestInputUpdatesCountsAndAccuracy(t *testing.T) {
	s := New("ab", 30*time.Second)
	s = s.Input("a", t0)
	assert.Equal(t, Counts{Correct: 1}, s.Counts)
	assert.Equal(t, 100, s.Metrics.Accuracy)

	s = s.Input("ax", t0.Add(time.Second))
	assert.Equal(t, Counts{Correct: 1, Incorrect: 1}, s.Counts)
	assert.Equal(t, 50, s.Metrics.Accuracy)

	s = s.Input("axc", t0.Add(2*time.Second))
	assert.Equal(t, Counts{Correct: 1, Incorrect: 1, Extra: 1}, s.Counts)
	assert.Equal(t, 33, s.Metrics.Accuracy)
	assert.Equal(t, 0, s.Metrics.WPM, "wpm only moves on ticks")
}

func TestTickIgnoredWhileIdle(t *testing.T) {
	s := New("ab", 30*time.Second)
	after := s.Tick(t0.Add(time.Minute))
	assert.Equal(t, s.TimeLeft, after.TimeLeft)
	assert.Equal(t, Idle, after.State())
}

func TestTickDerivesTimeLeftAndMetrics(t *testing.T) {
	s := New("aaaaaaaaaa", 30*time.Second)
	s = s.Input("aaaaa", t0)

	s = s.Tick(t0.Add(12500 * time.Millisecond))
	assert.Equal(t, 18, s.TimeLeft)
	assert.Equal(t, 5, s.Metrics.WPM)
	assert.Equal(t, 5, s.Metrics.RawWPM)
	assert.Equal(t, Running, s.State())
}

func TestTickAtStartDoesNotProduceGarbage(t *testing.T) {
	s := New("ab", 30*time.Second).Input("a", t0)
	s = s.Tick(t0)
	assert.Equal(t, 30, s.TimeLeft)
	assert.Equal(t, 0, s.Metrics.WPM)
	assert.Equal(t, 0, s.Metrics.RawWPM)
}

func TestCountdownFinishesAtZero(t *testing.T) {
	s := New("hello world", 30*time.Second).Input("hello", t0)

	for ms := 200; ms < 30000; ms += 200 {
		s = s.Tick(t0.Add(time.Duration(ms) * time.Millisecond))
		require.Greater(t, s.TimeLeft, 0, "at %dms", ms)
		require.False(t, s.Finished)
	}

	s = s.Tick(t0.Add(30 * time.Second))
	assert.Equal(t, 0, s.TimeLeft)
	assert.True(t, s.Finished)
	assert.Equal(t, Finished, s.State())
	assert.Equal(t, 2, s.Metrics.WPM)
}

func TestFinishedSessionIsFrozen(t *testing.T) {
	s := New("hello", 30*time.Second).Input("hel", t0)
	s = s.Tick(t0.Add(31 * time.Second))
	require.True(t, s.Finished)
	frozen := s

	s = s.Tick(t0.Add(45 * time.Second))
	assert.Equal(t, frozen.Metrics, s.Metrics)
	assert.Equal(t, frozen.TimeLeft, s.TimeLeft)

	s = s.Input("hello", t0.Add(46*time.Second))
	assert.Equal(t, "hel", s.Typed)
	assert.Equal(t, frozen.Counts, s.Counts)
}

func TestLateTickUsesDeadline(t *testing.T) {
	s := New("aaaaaaaaaa", 30*time.Second).Input("aaaaa", t0)
	s = s.Tick(t0.Add(time.Minute))
	require.True(t, s.Finished)
	// 5 chars over 30s, not over the minute the tick arrived at.
	assert.Equal(t, 2, s.Metrics.WPM)
}

func TestInputPastDeadlineFinishes(t *testing.T) {
	s := New("abcdef", 30*time.Second).Input("abc", t0)
	s = s.Input("abcd", t0.Add(30*time.Second))
	assert.True(t, s.Finished)
	assert.Equal(t, "abc", s.Typed)
}

func TestSamplesRecordedPerSecond(t *testing.T) {
	s := New("aaaaaaaaaaaaaaaaaaaa", 5*time.Second).Input("a", t0)
	for ms := 200; ms <= 5000; ms += 200 {
		s = s.Tick(t0.Add(time.Duration(ms) * time.Millisecond))
	}
	require.True(t, s.Finished)
	require.Len(t, s.Samples, 5)
	for i, sample := range s.Samples {
		assert.Equal(t, i+1, sample.Second)
	}
}

func TestTickDoesNotShareSamples(t *testing.T) {
	s := New("aaaa", 10*time.Second).Input("a", t0)
	a := s.Tick(t0.Add(time.Second))
	b := a.Tick(t0.Add(2 * time.Second))
	c := a.Tick(t0.Add(3 * time.Second))
	assert.Len(t, a.Samples, 1)
	assert.Equal(t, 2, b.Samples[1].Second)
	assert.Equal(t, 3, c.Samples[1].Second)
}

func TestRestartResetsEverything(t *testing.T) {
	s := New("ab", 30*time.Second).Input("ax", t0)
	s = s.Tick(t0.Add(40 * time.Second))
	require.True(t, s.Finished)

	fresh := New("cd", 30*time.Second)
	assert.Equal(t, "", fresh.Typed)
	assert.Equal(t, Counts{}, fresh.Counts)
	assert.Equal(t, 30, fresh.TimeLeft)
	assert.False(t, fresh.Finished)
	assert.True(t, fresh.StartedAt.IsZero())
}

func TestResult(t *testing.T) {
	s := New("ab", 30*time.Second).Input("axc", t0)
	s = s.Tick(t0.Add(30 * time.Second))

	r := s.Result()
	assert.Equal(t, 1, r.Correct)
	assert.Equal(t, 3, r.Total())
	assert.Equal(t, 33, r.Accuracy)
	assert.Equal(t, 0, r.WPM)
	assert.Equal(t, 1, r.RawWPM)
	assert.Equal(t, t0, r.StartedAt)
}
