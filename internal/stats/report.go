package stats

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/verte-zerg/typesprint/internal/model"
)

const (
	colorBold           = "\x1b[1m"
	colorAccent         = "\x1b[33m"
	colorReset          = "\x1b[0m"
	terminalWidthBackup = 80
	trendLabel          = "WPM trend  "
)

// RenderResult prints the summary of a finished session.
func RenderResult(w io.Writer, r model.Result, width int, useColor bool) error {
	title := "Test Results"
	if useColor {
		title = colorBold + title + colorReset
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	headers := []string{"Metric", "Value"}
	rows := [][]string{
		{"WPM", fmt.Sprintf("%d", r.WPM)},
		{"Raw WPM", fmt.Sprintf("%d", r.RawWPM)},
		{"Accuracy", fmt.Sprintf("%d%%", r.Accuracy)},
		{"Characters", fmt.Sprintf("%d/%d", r.Correct, r.Total())},
		{"Incorrect", fmt.Sprintf("%d", r.Incorrect)},
		{"Extra", fmt.Sprintf("%d", r.Extra)},
		{"Time", fmt.Sprintf("%ds", int(r.Duration.Seconds()))},
	}
	for _, line := range formatTable(headers, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if len(r.Samples) > 0 {
		if width <= 0 {
			width = terminalWidthBackup
		}
		spark := Sparkline(Resample(WPMSeries(r.Samples), width-len(trendLabel)))
		if useColor {
			spark = colorAccent + spark + colorReset
		}
		if _, err := fmt.Fprintf(w, "\n%s%s\n", trendLabel, spark); err != nil {
			return err
		}
	}
	return nil
}

// TerminalWidth returns the width of stdout or a fallback.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// ShouldUseColor reports whether ANSI color should be written to w.
func ShouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
