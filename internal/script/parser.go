package script

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEditorArity is returned for a `+` line that does not carry exactly two tokens.
var ErrEditorArity = errors.New("editor action `+` expects exactly 2 arguments: a destination and a source file")

// ParseError points at the script line that could not be parsed.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

const (
	sigilQuiet      = '#'
	sigilOutputOnly = '-'
	sigilEditor     = '+'
)

// ParseFile reads a script file and parses it.
func ParseFile(path string) ([]Action, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse turns script text into actions, one per non-blank line.
// A malformed editor line fails the whole script.
func Parse(text string) ([]Action, error) {
	actions := []Action{}

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")

		var sigil byte
		body := line
		if line != "" && strings.IndexByte("#-+", line[0]) >= 0 {
			sigil = line[0]
			body = line[1:]
		}

		tokens := Tokenize(body)
		if len(tokens) == 0 {
			continue
		}

		if len(tokens) == 2 && tokens[0] == "cd" && sigil != sigilEditor {
			if sigil == sigilQuiet || sigil == sigilOutputOnly {
				actions = append(actions, ChangeDirQuiet{Path: tokens[1]})
			} else {
				actions = append(actions, ChangeDir{Path: tokens[1]})
			}
			continue
		}

		switch sigil {
		case sigilQuiet:
			actions = append(actions, RunCommandQuiet{Args: tokens})
		case sigilOutputOnly:
			actions = append(actions, RunCommandVisibleOutputOnly{Args: tokens})
		case sigilEditor:
			if len(tokens) != 2 {
				return nil, &ParseError{Line: i + 1, Text: line, Err: ErrEditorArity}
			}
			actions = append(actions, RunEditor{Dest: tokens[0], Src: tokens[1]})
		default:
			actions = append(actions, RunCommand{Args: tokens})
		}
	}

	return actions, nil
}

// Tokenize splits a line on unquoted, unescaped spaces.
// "..." groups text into one token and a backslash takes the next character literally.
// An unterminated quote is flushed with the quote restored, a trailing backslash is kept.
func Tokenize(line string) []string {
	tokens := []string{}
	var last strings.Builder

	escape := false
	inStr := false

	for _, c := range line {
		switch {
		case escape:
			last.WriteRune(c)
			escape = false
		case c == '\\':
			escape = true
		case inStr:
			if c == '"' {
				inStr = false
				tokens = append(tokens, last.String())
				last.Reset()
			} else {
				last.WriteRune(c)
			}
		case c == '"':
			inStr = true
		case c == ' ':
			if last.Len() > 0 {
				tokens = append(tokens, last.String())
				last.Reset()
			}
		default:
			last.WriteRune(c)
		}
	}

	rest := last.String()
	if inStr {
		rest = `"` + rest
	}
	if escape {
		rest += `\`
	}
	if rest != "" {
		tokens = append(tokens, rest)
	}

	return tokens
}
