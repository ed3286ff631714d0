package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type charState int

const (
	statePending charState = iota
	stateCurrentWord
	stateCorrect
	stateIncorrect
	stateExtra
	stateCursor
)

var stateStyles = map[charState]lipgloss.Style{
	statePending:     pendingStyle,
	stateCurrentWord: currentWordStyle,
	stateCorrect:     correctStyle,
	stateIncorrect:   incorrectStyle,
	stateExtra:       extraStyle,
	stateCursor:      cursorStyle,
}

type styledRune struct {
	r       rune
	state   charState
	s       string
	width   int
	isSpace bool
}

// buildStyledRunes renders the target with per-character state. Runes typed
// past the end of the target are appended as extra.
func buildStyledRunes(targetRunes, inputRunes []rune, cursorIndex int) []styledRune {
	words := findWords(targetRunes)
	currentWord := wordForCursor(words, cursorIndex)

	out := make([]styledRune, 0, max(len(targetRunes), len(inputRunes)))
	for i, target := range targetRunes {
		displayed := target
		state := statePending
		if i < len(inputRunes) {
			switch {
			case target == ' ' && inputRunes[i] != ' ':
				displayed = '·'
				state = stateIncorrect
			case inputRunes[i] == target:
				state = stateCorrect
			default:
				state = stateIncorrect
			}
		} else if target != ' ' && currentWord != nil && i >= currentWord.start && i < currentWord.end {
			state = stateCurrentWord
		}
		if i == cursorIndex {
			state = stateCursor
		}
		out = append(out, newStyledRune(displayed, state, target == ' '))
	}
	for i := len(targetRunes); i < len(inputRunes); i++ {
		r := inputRunes[i]
		if r == ' ' {
			r = '·'
		}
		out = append(out, newStyledRune(r, stateExtra, false))
	}
	return out
}

func newStyledRune(r rune, state charState, isSpace bool) styledRune {
	return styledRune{
		r:       r,
		state:   state,
		s:       stateStyles[state].Render(string(r)),
		width:   runewidth.RuneWidth(r),
		isSpace: isSpace,
	}
}

type wordRange struct {
	start int
	end   int
}

func findWords(targetRunes []rune) []wordRange {
	var words []wordRange
	start := -1
	for i, r := range targetRunes {
		if r == ' ' {
			if start != -1 {
				words = append(words, wordRange{start: start, end: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, wordRange{start: start, end: len(targetRunes)})
	}
	return words
}

// wordForCursor returns the word containing the cursor, or the next word when
// the cursor sits on a space. It returns nil when the cursor is past the text.
func wordForCursor(words []wordRange, cursorIndex int) *wordRange {
	if cursorIndex < 0 {
		return nil
	}
	for i := range words {
		if cursorIndex < words[i].end {
			return &words[i]
		}
	}
	return nil
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes soft-wraps at spaces so no line exceeds width cells.
// Words longer than width are split.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, width)
	lineWidth := 0
	lastSpace := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if item.isSpace {
				// Keep the space on the line it ends.
				out.WriteString(renderStyledRunes(line))
				out.WriteString(item.s)
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpace = -1
				i++
				continue
			}
			cut := len(line)
			if lastSpace >= 0 {
				cut = lastSpace + 1
			}
			out.WriteString(renderStyledRunes(line[:cut]))
			out.WriteRune('\n')
			line = append(line[:0:0], line[cut:]...)
			lineWidth = 0
			lastSpace = -1
			for j, r := range line {
				lineWidth += r.width
				if r.isSpace {
					lastSpace = j
				}
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpace = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}
