package dimsync

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Label is a leaf widget whose natural size is its text measured in
// terminal cells: the widest line by the number of lines.
type Label struct {
	text string
	size Size
}

// NewLabel creates a label.
func NewLabel(text string) *Label {
	return &Label{text: text}
}

// Text returns the label's text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the label's text.
func (l *Label) SetText(text string) {
	l.text = text
}

// NaturalSize returns the measured size of the text.
func (l *Label) NaturalSize() Size {
	if l.text == "" {
		return Size{}
	}
	lines := strings.Split(l.text, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	return Size{Width: float64(width), Height: float64(len(lines))}
}

// Size returns the size of the last layout.
func (l *Label) Size() Size {
	return l.size
}

// Layout implements Widget.
func (l *Label) Layout(_ *Context, bc Constraints) Size {
	l.size = bc.Constrain(l.NaturalSize())
	return l.size
}
