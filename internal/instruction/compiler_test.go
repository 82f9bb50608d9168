package instruction

import (
	"testing"
	"time"

	"demoplay/internal/highlighter"

	"github.com/gdamore/tcell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(text string, color tcell.Color) highlighter.Run {
	return highlighter.Run{Text: text, Color: color}
}

func TestCompileTwoLinesOneColor(t *testing.T) {
	lines := []highlighter.StyledLine{
		{run("ab", tcell.ColorRed)},
		{run("c", tcell.ColorRed)},
	}

	compiled := Compile(lines)
	assert.Equal(t, []Instruction{
		MoveCursor{X: 0, Y: 0},
		SetForegroundColor{Color: tcell.ColorRed},
		TypeChar{Char: 'a'},
		TypeChar{Char: 'b'},
		Newline{ResetColumn: 0},
		TypeChar{Char: 'c'},
		Newline{ResetColumn: 0},
	}, compiled)

	out := Finalize(compiled, time.Second)
	assert.Len(t, out, len(compiled)-1+2)
	assert.Equal(t, Pause{Duration: time.Second}, out[0])
	assert.Equal(t, TypeChar{Char: 'c'}, out[len(out)-2])
	assert.Equal(t, WaitForQuit{}, out[len(out)-1])
}

func TestCompileColorChanges(t *testing.T) {
	lines := []highlighter.StyledLine{
		{
			{Text: "if", Color: tcell.ColorPink, Bold: true},
			run(" x", tcell.ColorWhite),
			run(" y", tcell.ColorWhite),
		},
	}

	compiled := Compile(lines)
	assert.Equal(t, []Instruction{
		MoveCursor{},
		SetForegroundColor{Color: tcell.ColorPink},
		TypeChar{Char: 'i', Bold: true},
		TypeChar{Char: 'f', Bold: true},
		SetForegroundColor{Color: tcell.ColorWhite},
		TypeChar{Char: ' '},
		TypeChar{Char: 'x'},
		TypeChar{Char: ' '},
		TypeChar{Char: 'y'},
		Newline{},
	}, compiled)
}

func TestCompileAutoIndent(t *testing.T) {
	white := tcell.ColorWhite
	lines := []highlighter.StyledLine{
		{run("f {", white)},
		{run("  ", white), run("x", white)},
		{},
		{run("}", white)},
	}

	compiled := Compile(lines)
	assert.Equal(t, []Instruction{
		MoveCursor{},
		SetForegroundColor{Color: white},
		TypeChar{Char: 'f'},
		TypeChar{Char: ' '},
		TypeChar{Char: '{'},
		Newline{ResetColumn: 2},
		TypeChar{Char: 'x'},
		Newline{ResetColumn: 0},
		Newline{ResetColumn: 0},
		TypeChar{Char: '}'},
		Newline{ResetColumn: 0},
	}, compiled)
}

func TestCompileDedentNeverPads(t *testing.T) {
	white := tcell.ColorWhite
	lines := []highlighter.StyledLine{
		{run("    a", white)},
		{run("        ", white)},
		{run("  b", white)},
	}

	assert.Equal(t, []Instruction{
		MoveCursor{},
		SetColumn{X: 4},
		SetForegroundColor{Color: white},
		TypeChar{Char: 'a'},
		Newline{ResetColumn: 0},
		Newline{ResetColumn: 2},
		TypeChar{Char: 'b'},
		Newline{ResetColumn: 0},
	}, Compile(lines))
}

func TestCompileIndentedFirstLine(t *testing.T) {
	compiled := Compile([]highlighter.StyledLine{{run("    x", tcell.ColorWhite)}})
	require.Len(t, compiled, 5)
	assert.Equal(t, SetColumn{X: 4}, compiled[1])
	assert.Equal(t, Newline{ResetColumn: 0}, compiled[4])
}

func TestCompileSourceOrder(t *testing.T) {
	lines := []highlighter.StyledLine{
		{run("ab", tcell.ColorRed), run("cd", tcell.ColorBlue)},
		{run("ef", tcell.ColorGreen)},
	}

	typed := []rune{}
	for _, inst := range Compile(lines) {
		if c, ok := inst.(TypeChar); ok {
			typed = append(typed, c.Char)
		}
	}
	assert.Equal(t, "abcdef", string(typed))
}

func TestFinalizeEmpty(t *testing.T) {
	assert.Empty(t, Compile(nil))
	assert.Equal(t, []Instruction{Pause{Duration: time.Second}, WaitForQuit{}}, Finalize(nil, time.Second))
}

func TestString(t *testing.T) {
	assert.Equal(t, "MoveCursor(1, 2)", String(MoveCursor{X: 1, Y: 2}))
	assert.Equal(t, "TypeChar('a', bold=true)", String(TypeChar{Char: 'a', Bold: true}))
	assert.Equal(t, "Pause(1s)", String(Pause{Duration: time.Second}))
	assert.Equal(t, "WaitForQuit", String(WaitForQuit{}))
	assert.Equal(t, "UpdateFocus(main.go)", String(UpdateFocus{Path: "main.go"}))
	assert.Panics(t, func() { String(nil) })
}
