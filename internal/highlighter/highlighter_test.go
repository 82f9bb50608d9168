package highlighter

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineText(line StyledLine) string {
	var sb strings.Builder
	for _, run := range line {
		sb.WriteString(run.Text)
	}
	return sb.String()
}

func TestHighlightGo(t *testing.T) {
	code := "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n"

	h := New("demoplay", 4)
	lines := h.Highlight(code, "go")

	require.Len(t, lines, 5)
	assert.Equal(t, "package main", lineText(lines[0]))
	assert.Equal(t, "", lineText(lines[1]))
	assert.Equal(t, "func main() {", lineText(lines[2]))
	assert.Equal(t, `    println("hi")`, lineText(lines[3]))
	assert.Equal(t, "}", lineText(lines[4]))

	// keywords are pink and bold in the demoplay theme
	first := lines[0][0]
	assert.Equal(t, "package", first.Text)
	assert.Equal(t, tcell.GetColor("#FF69B4"), first.Color)
	assert.True(t, first.Bold)
}

func TestHighlightNeverLeavesTerminators(t *testing.T) {
	h := New("demoplay", 2)
	for _, line := range h.Highlight("a = 1\r\nb = 2\r\n", "py") {
		for _, run := range line {
			assert.NotContains(t, run.Text, "\n")
			assert.NotContains(t, run.Text, "\r")
			assert.NotEmpty(t, run.Text)
		}
	}
}

func TestHighlightUnknownExtension(t *testing.T) {
	h := New("demoplay", 4)
	lines := h.Highlight("just some words\nmore", "nope-not-a-lang")

	require.Len(t, lines, 2)
	assert.Equal(t, "just some words", lineText(lines[0]))
	assert.Equal(t, "more", lineText(lines[1]))
}

func TestAppendRunMergesSameStyle(t *testing.T) {
	line := appendRun(nil, Run{Text: "a", Color: tcell.ColorRed})
	line = appendRun(line, Run{Text: "b", Color: tcell.ColorRed})
	line = appendRun(line, Run{Text: "c", Color: tcell.ColorRed, Bold: true})

	assert.Equal(t, StyledLine{
		{Text: "ab", Color: tcell.ColorRed},
		{Text: "c", Color: tcell.ColorRed, Bold: true},
	}, line)
}

func TestDetectLang(t *testing.T) {
	assert.Equal(t, "go", DetectLang("go"))
	assert.Equal(t, "python", DetectLang("py"))
	assert.Equal(t, "", DetectLang("definitely-unknown"))
}
