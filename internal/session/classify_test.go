package session

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestClassifyProgressive(t *testing.T) {
	cases := []struct {
		typed string
		want  Counts
		acc   int
	}{
		{typed: "", want: Counts{}, acc: 100},
		{typed: "a", want: Counts{Correct: 1}, acc: 100},
		{typed: "ax", want: Counts{Correct: 1, Incorrect: 1}, acc: 50},
		{typed: "axc", want: Counts{Correct: 1, Incorrect: 1, Extra: 1}, acc: 33},
	}
	for _, tc := range cases {
		t.Run(tc.typed, func(t *testing.T) {
			got := Classify("ab", tc.typed)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.acc, Accuracy(got))
		})
	}
}

func TestClassifyInvariants(t *testing.T) {
	targets := []string{"", "a", "hello world", "naïve café"}
	inputs := []string{"", "h", "hello", "hello world!!", "xxxxxxxxxxxxxxxxxxxxx", "naive cafe"}
	for _, target := range targets {
		for _, typed := range inputs {
			c := Classify(target, typed)
			typedLen := utf8.RuneCountInString(typed)
			targetLen := utf8.RuneCountInString(target)
			assert.Equal(t, typedLen, c.Total(), "target=%q typed=%q", target, typed)
			assert.Equal(t, min(typedLen, targetLen), c.Correct+c.Incorrect, "target=%q typed=%q", target, typed)
			acc := Accuracy(c)
			assert.GreaterOrEqual(t, acc, 0)
			assert.LessOrEqual(t, acc, 100)
		}
	}
}

func TestClassifyComparesRunes(t *testing.T) {
	c := Classify("café", "cafe")
	assert.Equal(t, Counts{Correct: 3, Incorrect: 1}, c)
}
