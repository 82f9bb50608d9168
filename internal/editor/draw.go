package editor

import (
	"fmt"
	"strings"

	"demoplay/internal/utils"

	"github.com/gdamore/tcell"
)

const linesWidth = 6

var (
	titleStyle   = tcell.StyleDefault.Reverse(true)
	dimStyle     = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	accentStyle  = tcell.StyleDefault.Foreground(tcell.GetColor("#FF69B4")).Bold(true)
	folderStyle  = tcell.StyleDefault.Foreground(tcell.GetColor("#7FFFD4"))
	waitingStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.GetColor("#FF69B4"))
)

// Draw paints title, sidebar, buffer and footer. The caller shows the screen.
func (e *Editor) Draw(screen tcell.Screen) {
	screen.Clear()
	columns, rows := screen.Size()
	if columns != e.columns || rows != e.rows {
		e.Resize(columns, rows)
	}

	sidebar := e.sidebarWidth()
	e.drawText(screen, 0, 0, columns, fmt.Sprintf(" %-*s", columns, e.Focus.Title), titleStyle)
	e.drawSidebar(screen, sidebar)
	e.drawBuffer(screen, sidebar)
	e.drawFooter(screen)

	if e.ShowCursor {
		screen.ShowCursor(sidebar+linesWidth+e.Viewport.ScreenX, 1+e.Viewport.ScreenY)
	} else {
		screen.HideCursor()
	}
}

func (e *Editor) sidebarWidth() int {
	width := e.options.SidebarWidth
	if width > e.columns/3 {
		width = e.columns / 3
	}
	return max(width, 0)
}

func (e *Editor) drawSidebar(screen tcell.Screen, width int) {
	if width == 0 {
		return
	}

	row := 1
	last := e.Viewport.Height
	line := func(text string, style tcell.Style) {
		if row > last {
			return
		}
		e.drawText(screen, 1, row, width-2, text, style)
		row++
	}

	for _, folder := range e.Focus.FolderList {
		line(folder+"/", folderStyle)
	}
	if e.Focus.FileName != "" {
		line(e.Focus.FileName, accentStyle)
	}
	line("", tcell.StyleDefault)
	for _, folder := range e.Focus.Tree.Folders {
		line(folder+"/", folderStyle)
	}
	for _, file := range e.Focus.Tree.Files {
		line(file, dimStyle)
	}

	for y := 1; y <= last; y++ {
		screen.SetContent(width-1, y, '│', nil, dimStyle)
	}
}

func (e *Editor) drawBuffer(screen tcell.Screen, shiftx int) {
	for row := 0; row < e.Viewport.Height; row++ {
		ry := row + e.Viewport.ScrollOffset
		if ry >= len(e.Buffer.Lines) {
			break
		}

		style := dimStyle
		if ry == e.Cursor.Y {
			style = tcell.StyleDefault
		}
		e.drawText(screen, shiftx, row+1, linesWidth, utils.CenterNumber(ry+1, linesWidth), style)

		x := shiftx + linesWidth
		for _, span := range e.Buffer.Lines[ry].Spans {
			if x+span.Width() > e.columns {
				break
			}
			spanStyle := tcell.StyleDefault.Foreground(span.Foreground).Bold(span.Bold)
			screen.SetContent(x, row+1, span.Char, nil, spanStyle)
			x += span.Width()
		}
	}
}

func (e *Editor) drawFooter(screen tcell.Screen) {
	row := e.rows - 1
	if row < 1 {
		return
	}
	if e.Waiting {
		e.drawText(screen, 0, row, e.columns, " press any key to continue ", waitingStyle)
	}
	status := fmt.Sprintf(" %d:%d %s ", e.Cursor.Y+1, e.Cursor.X+1, strings.TrimSpace(e.Focus.FileName))
	e.drawText(screen, e.columns-len([]rune(status)), row, len([]rune(status)), status, tcell.StyleDefault)
}

func (e *Editor) drawText(screen tcell.Screen, col, row, width int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		if i >= width || col+i >= e.columns {
			break
		}
		if col+i < 0 {
			continue
		}
		screen.SetContent(col+i, row, ch, nil, style)
	}
}
