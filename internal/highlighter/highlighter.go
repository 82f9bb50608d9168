package highlighter

import (
	"strings"
	"time"

	"demoplay/internal/logger"
	"demoplay/internal/utils"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
	"github.com/gdamore/tcell"
)

// Run is a piece of text sharing one style.
type Run struct {
	Text  string
	Color tcell.Color
	Bold  bool
}

// StyledLine is one source line, without its terminator.
type StyledLine []Run

var DefaultColor = tcell.ColorWhite

type Highlighter struct {
	theme    *chroma.Style
	tabWidth int
}

func New(theme string, tabWidth int) *Highlighter {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return &Highlighter{theme: styles.Get(theme), tabWidth: tabWidth}
}

// DetectLang returns the lowercase lexer name for an extension, "" if unknown.
func DetectLang(extension string) string {
	lexer := lexers.Match("file." + extension)
	if lexer == nil {
		return ""
	}
	config := lexer.Config()
	if config == nil {
		return ""
	}
	return strings.ToLower(config.Name)
}

// Highlight splits source into styled lines, picking the lexer by file extension.
func (h *Highlighter) Highlight(source string, extension string) []StyledLine {
	start := time.Now()

	lexer := lexers.Match("file." + extension)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	source = strings.ReplaceAll(source, "\r\n", "\n")
	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		logger.Log.Error("tokenization failed, falling back to plain text", "ext", extension, "err", err)
		return h.plain(source)
	}

	tokensIntoLines := chroma.SplitTokensIntoLines(iterator.Tokens())
	lines := make([]StyledLine, 0, len(tokensIntoLines))

	for _, tokens := range tokensIntoLines {
		line := StyledLine{}
		for _, token := range tokens {
			text := strings.TrimRight(token.Value, "\n")
			text = utils.ExpandTabs(text, h.tabWidth)
			if text == "" {
				continue
			}
			color, bold := h.style(token.Type)
			line = appendRun(line, Run{Text: text, Color: color, Bold: bold})
		}
		lines = append(lines, line)
	}

	logger.Log.Debug("highlight end", "ext", extension, "lines", len(lines), "elapsed", time.Since(start))
	return lines
}

func (h *Highlighter) style(tokenType chroma.TokenType) (tcell.Color, bool) {
	entry := h.theme.Get(tokenType)
	color := DefaultColor
	if entry.Colour.IsSet() {
		color = tcell.GetColor(entry.Colour.String())
	}
	return color, entry.Bold == chroma.Yes
}

func (h *Highlighter) plain(source string) []StyledLine {
	lines := []StyledLine{}
	for _, text := range strings.Split(strings.TrimSuffix(source, "\n"), "\n") {
		text = utils.ExpandTabs(text, h.tabWidth)
		line := StyledLine{}
		if text != "" {
			line = append(line, Run{Text: text, Color: DefaultColor})
		}
		lines = append(lines, line)
	}
	return lines
}

// appendRun merges runs that share a style.
func appendRun(line StyledLine, run Run) StyledLine {
	if n := len(line); n > 0 && line[n-1].Color == run.Color && line[n-1].Bold == run.Bold {
		line[n-1].Text += run.Text
		return line
	}
	return append(line, run)
}
