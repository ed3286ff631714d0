// Package sentences holds the canonical sentence pool used for typing text.
package sentences

// Default is the fixed pool sampled by the generator.
var Default = []string{
	"The quick brown fox jumps over the lazy dog.",
	"A journey of a thousand miles begins with a single step.",
	"To be or not to be, that is the question.",
	"All that glitters is not gold.",
	"Actions speak louder than words.",
	"Where there's a will, there's a way.",
	"The early bird catches the worm.",
	"A picture is worth a thousand words.",
	"When in Rome, do as the Romans do.",
	"Practice makes perfect.",
	"Don't count your chickens before they hatch.",
	"Two wrongs don't make a right.",
	"The pen is mightier than the sword.",
	"When life gives you lemons, make lemonade.",
	"Knowledge is power.",
}

// Pool returns a copy of the default pool.
func Pool() []string {
	out := make([]string, len(Default))
	copy(out, Default)
	return out
}
