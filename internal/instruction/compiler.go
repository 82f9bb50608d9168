package instruction

import (
	"time"

	"demoplay/internal/highlighter"
	"demoplay/internal/utils"

	"github.com/gdamore/tcell"
)

// Compile turns highlighted lines into the typing script of one editor session.
// Leading whitespace is never typed: the editor auto-indents, every Newline puts the
// cursor on the indent of the line it opens. Whitespace-only lines stay empty.
func Compile(lines []highlighter.StyledLine) []Instruction {
	if len(lines) == 0 {
		return []Instruction{}
	}

	out := []Instruction{MoveCursor{X: 0, Y: 0}}
	if indent := openingIndent(lines, 0); indent > 0 {
		out = append(out, SetColumn{X: indent})
	}

	var color tcell.Color
	colorSet := false

	for i, line := range lines {
		skip, _ := lineIndent(line)
		for _, run := range line {
			for _, c := range run.Text {
				if skip > 0 {
					skip--
					continue
				}
				if !colorSet || color != run.Color {
					out = append(out, SetForegroundColor{Color: run.Color})
					color = run.Color
					colorSet = true
				}
				out = append(out, TypeChar{Char: c, Bold: run.Bold})
			}
		}

		out = append(out, Newline{ResetColumn: openingIndent(lines, i+1)})
	}

	return out
}

// openingIndent is the column the cursor starts at on line i, 0 past the end and on blank lines.
func openingIndent(lines []highlighter.StyledLine, i int) int {
	if i >= len(lines) {
		return 0
	}
	indent, blank := lineIndent(lines[i])
	if blank {
		return 0
	}
	return indent
}

// Finalize drops the trailing newline of a compiled session, opens it with a pause
// and ends it with a wait for the quitting key press.
func Finalize(compiled []Instruction, startPause time.Duration) []Instruction {
	out := make([]Instruction, 0, len(compiled)+2)
	out = append(out, Pause{Duration: startPause})
	if len(compiled) > 0 {
		out = append(out, compiled[:len(compiled)-1]...)
	}
	return append(out, WaitForQuit{})
}

// lineIndent counts leading spaces across runs. Whitespace-only lines are blank.
func lineIndent(line highlighter.StyledLine) (int, bool) {
	indent := 0
	for _, run := range line {
		n := utils.CountIndent(run.Text)
		indent += n
		if n < len(run.Text) {
			return indent, false
		}
	}
	return indent, true
}
