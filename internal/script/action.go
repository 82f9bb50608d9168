package script

import (
	"fmt"
	"strings"
)

// Action is one top-level scripted step. The set of implementations is closed.
type Action interface {
	fmt.Stringer
	isAction()
}

// ChangeDir prints `cd <path>` and changes the directory.
type ChangeDir struct{ Path string }

// ChangeDirQuiet changes the directory without echo.
type ChangeDirQuiet struct{ Path string }

// RunCommand echoes the command, runs it and waits for a key press.
type RunCommand struct{ Args []string }

// RunCommandQuiet runs the command without echo and without stdin.
type RunCommandQuiet struct{ Args []string }

// RunCommandVisibleOutputOnly runs the command with its output but no echo.
type RunCommandVisibleOutputOnly struct{ Args []string }

// RunEditor copies Src to Dest and replays Dest in the editor.
type RunEditor struct{ Dest, Src string }

func (ChangeDir) isAction()                   {}
func (ChangeDirQuiet) isAction()              {}
func (RunCommand) isAction()                  {}
func (RunCommandQuiet) isAction()             {}
func (RunCommandVisibleOutputOnly) isAction() {}
func (RunEditor) isAction()                   {}

func (a ChangeDir) String() string      { return fmt.Sprintf("cd %q", a.Path) }
func (a ChangeDirQuiet) String() string { return fmt.Sprintf("#cd %q", a.Path) }
func (a RunEditor) String() string      { return fmt.Sprintf("+ %q %q", a.Dest, a.Src) }

func (a RunCommand) String() string                  { return quoteArgs("", a.Args) }
func (a RunCommandQuiet) String() string             { return quoteArgs("#", a.Args) }
func (a RunCommandVisibleOutputOnly) String() string { return quoteArgs("-", a.Args) }

func quoteArgs(sigil string, args []string) string {
	var sb strings.Builder
	sb.WriteString(sigil)
	for i, arg := range args {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%q", arg))
	}
	return sb.String()
}
