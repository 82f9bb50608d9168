package editor

import (
	"demoplay/internal/utils"

	"github.com/gdamore/tcell"
	"github.com/mattn/go-runewidth"
)

// Span is one character cell.
type Span struct {
	Char       rune
	Bold       bool
	Foreground tcell.Color
}

func EmptySpan() Span {
	return Span{Char: ' ', Foreground: tcell.ColorWhite}
}

// Width is the number of screen cells the span takes, wide runes take two.
func (s Span) Width() int {
	return max(runewidth.RuneWidth(s.Char), 1)
}

type Line struct {
	Spans []Span
}

func (l Line) String() string {
	chars := make([]rune, len(l.Spans))
	for i, span := range l.Spans {
		chars[i] = span.Char
	}
	return string(chars)
}

// Cells is the screen width of the first n spans.
func (l Line) Cells(n int) int {
	cells := 0
	for _, span := range l.Spans[:min(n, len(l.Spans))] {
		cells += span.Width()
	}
	return cells
}

// Buffer grows on demand to whatever position is addressed and only shrinks on Reset.
type Buffer struct {
	Lines []Line
}

func NewBuffer() Buffer {
	return Buffer{Lines: []Line{{}}}
}

// Ensure makes (x, y) a valid position: at least y+1 lines and x spans on line y.
func (b *Buffer) Ensure(x, y int) {
	for y >= len(b.Lines) {
		b.Lines = append(b.Lines, Line{})
	}
	line := &b.Lines[y]
	for x > len(line.Spans) {
		line.Spans = append(line.Spans, EmptySpan())
	}
}

// Insert puts span at (x, y), shifting the rest of the line right.
func (b *Buffer) Insert(x, y int, span Span) {
	b.Ensure(x, y)
	line := &b.Lines[y]
	line.Spans = utils.InsertTo(line.Spans, x, span)
}

func (b *Buffer) Reset() {
	b.Lines = b.Lines[:0]
}

func (b *Buffer) Text() []string {
	text := make([]string, len(b.Lines))
	for i, line := range b.Lines {
		text[i] = line.String()
	}
	return text
}
