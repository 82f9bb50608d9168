package editor

import (
	"fmt"
	"path/filepath"

	"demoplay/internal/instruction"
	"demoplay/internal/io"
	"demoplay/internal/logger"

	"github.com/gdamore/tcell"
)

type Cursor struct{ X, Y int }

// Viewport maps the buffer cursor onto the visible rows.
type Viewport struct {
	Height       int // visible buffer rows
	ScrollOffset int // first visible buffer row
	ScreenX      int
	ScreenY      int // always in [0, Height)
}

// Focus is what the title bar and the sidebar show for the file being edited.
type Focus struct {
	Root       string
	Path       string
	Title      string
	Tree       io.Folder
	FolderList []string // breadcrumb down to the file, file name excluded
	FileName   string
}

type Options struct {
	Blacklist    []string
	SidebarWidth int
}

// Editor is the simulated editor of one session. Only the foreground loop touches it.
type Editor struct {
	Buffer     Buffer
	Cursor     Cursor
	Viewport   Viewport
	Foreground tcell.Color
	Waiting    bool
	ShowCursor bool
	Focus      Focus
	Current    string // last applied instruction

	ack     chan<- struct{}
	options Options
	columns int
	rows    int
}

func New(root string, focused string, ack chan<- struct{}, options Options) *Editor {
	e := &Editor{
		Buffer:     NewBuffer(),
		Foreground: tcell.ColorWhite,
		ShowCursor: true,
		Viewport:   Viewport{Height: 1},
		ack:        ack,
		options:    options,
	}
	e.loadFocus(root, focused)
	return e
}

// Apply performs one instruction. Pause and WaitForQuit belong to the player,
// receiving them here is a programming error.
func (e *Editor) Apply(inst instruction.Instruction) {
	e.Current = instruction.String(inst)

	switch inst := inst.(type) {
	case instruction.MoveCursor:
		e.Cursor = Cursor{X: inst.X, Y: inst.Y}
		e.updateCursor()
	case instruction.TypeChar:
		e.Buffer.Insert(e.Cursor.X, e.Cursor.Y, Span{Char: inst.Char, Bold: inst.Bold, Foreground: e.Foreground})
		e.Cursor.X++
		e.updateCursor()
	case instruction.SetForegroundColor:
		e.Foreground = inst.Color
	case instruction.Newline:
		e.Cursor.X = inst.ResetColumn
		e.Cursor.Y++
		e.updateCursor()
	case instruction.SetColumn:
		e.Cursor.X = inst.X
		e.updateCursor()
	case instruction.HideCursor:
		e.ShowCursor = false
	case instruction.WaitForAck:
		e.Waiting = true
	case instruction.UpdateFocus:
		e.ack = inst.Ack
		e.Buffer.Reset()
		e.Cursor = Cursor{}
		e.Viewport.ScrollOffset = 0
		e.loadFocus(e.Focus.Root, inst.Path)
		e.updateCursor()
	case instruction.Pause, instruction.WaitForQuit:
		panic(fmt.Sprintf("editor: %s must be handled by the player", e.Current))
	default:
		panic(fmt.Sprintf("editor: unknown instruction %T", inst))
	}
}

// OnKey is any key press: it ends a wait and acknowledges once.
func (e *Editor) OnKey() {
	e.Waiting = false
	select {
	case e.ack <- struct{}{}:
	default: // an ack is already pending
	}
}

// Resize takes the screen size; title and footer rows are not part of the viewport.
func (e *Editor) Resize(columns, rows int) {
	e.columns, e.rows = columns, rows
	e.Viewport.Height = max(rows-2, 1)
	e.updateCursor()
}

// updateCursor extends the buffer under the cursor and scrolls it into view.
func (e *Editor) updateCursor() {
	if e.Cursor.X < 0 {
		e.Cursor.X = 0
	}
	if e.Cursor.Y < 0 {
		e.Cursor.Y = 0
	}
	e.Buffer.Ensure(e.Cursor.X, e.Cursor.Y)

	screenY := e.Cursor.Y - e.Viewport.ScrollOffset
	if screenY < 0 {
		e.Viewport.ScrollOffset += screenY
		screenY = 0
	}
	if screenY >= e.Viewport.Height {
		e.Viewport.ScrollOffset += screenY + 1 - e.Viewport.Height
		screenY = e.Viewport.Height - 1
	}

	e.Viewport.ScreenX = e.Buffer.Lines[e.Cursor.Y].Cells(e.Cursor.X)
	e.Viewport.ScreenY = screenY
}

func (e *Editor) loadFocus(root string, focused string) {
	if !filepath.IsAbs(focused) {
		focused = filepath.Join(root, focused)
	}

	title, err := filepath.Rel(root, focused)
	if err != nil || filepath.IsAbs(title) {
		title = focused
	}

	folderList := io.Breadcrumb(root, focused)
	fileName := ""
	if n := len(folderList); n > 0 {
		fileName = folderList[n-1]
		folderList = folderList[:n-1]
	}

	e.Focus = Focus{
		Root:       root,
		Path:       focused,
		Title:      title,
		Tree:       io.ListChildren(root, focused, e.options.Blacklist),
		FolderList: folderList,
		FileName:   fileName,
	}
	logger.Log.Debug("editor focus", "root", root, "path", focused)
}
