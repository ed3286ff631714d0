// Package session implements the typing session tracker: input
// classification, metrics and the countdown state machine.
package session

// Counts holds the classification of typed characters against the target.
type Counts struct {
	Correct   int
	Incorrect int
	Extra     int
}

// Total returns the number of attempted characters.
func (c Counts) Total() int {
	return c.Correct + c.Incorrect + c.Extra
}

// Classify compares typed against target rune by rune.
func Classify(target, typed string) Counts {
	return classifyRunes([]rune(target), []rune(typed))
}

func classifyRunes(target, typed []rune) Counts {
	var c Counts
	for i, r := range typed {
		switch {
		case i >= len(target):
			c.Extra++
		case r == target[i]:
			c.Correct++
		default:
			c.Incorrect++
		}
	}
	return c
}
