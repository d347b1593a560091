package preview

import (
	"strings"
)

const (
	leftPadding = 2
	columnGap   = 4
	minInfo     = 20
)

// WrapText breaks text into lines of at most width runes, splitting on
// whitespace. Words longer than width get a line of their own.
func WrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len([]rune(current))+1+len([]rune(word)) <= width {
			current += " " + word
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// InfoWidth is the room left for the info column next to art of artWidth
// columns in a terminal termWidth columns wide.
func InfoWidth(artWidth, termWidth int) int {
	w := termWidth - leftPadding - artWidth - columnGap - 2
	if w < minInfo {
		return minInfo
	}
	return w
}

// SideBySide places art on the left and info lines on the right, padding
// the art column to its widest visible line.
func SideBySide(art string, info []string) string {
	artLines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	artWidth := 0
	for _, line := range artLines {
		if w := VisibleWidth(line); w > artWidth {
			artWidth = w
		}
	}

	rows := max(len(artLines), len(info))
	pad := strings.Repeat(" ", leftPadding)

	var b strings.Builder
	for i := 0; i < rows; i++ {
		b.WriteString(pad)
		if i < len(artLines) {
			b.WriteString(artLines[i])
			b.WriteString(strings.Repeat(" ", artWidth-VisibleWidth(artLines[i])+columnGap))
		} else {
			b.WriteString(strings.Repeat(" ", artWidth+columnGap))
		}
		if i < len(info) {
			b.WriteString(info[i])
		}
		b.WriteString("\n")
	}
	return b.String()
}
