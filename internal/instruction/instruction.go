package instruction

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell"
)

// Instruction is one playback step of an editor session. The set of implementations is closed,
// consumers switch over every variant.
type Instruction interface {
	isInstruction()
}

type MoveCursor struct{ X, Y int }

// TypeChar inserts Char at the cursor in the current foreground colour.
type TypeChar struct {
	Char rune
	Bold bool
}

type SetForegroundColor struct{ Color tcell.Color }

// Newline moves to the next row and puts the cursor on ResetColumn.
type Newline struct{ ResetColumn int }

type SetColumn struct{ X int }

// Pause is slept by the player and never reaches the editor.
type Pause struct{ Duration time.Duration }

// WaitForAck blocks playback until one key press.
type WaitForAck struct{}

// WaitForQuit blocks playback until one key press and then ends the session.
type WaitForQuit struct{}

type HideCursor struct{}

// UpdateFocus switches the editor to another file. Later acks travel on Ack.
type UpdateFocus struct {
	Path string
	Ack  chan struct{}
}

func (MoveCursor) isInstruction()         {}
func (TypeChar) isInstruction()           {}
func (SetForegroundColor) isInstruction() {}
func (Newline) isInstruction()            {}
func (SetColumn) isInstruction()          {}
func (Pause) isInstruction()              {}
func (WaitForAck) isInstruction()         {}
func (WaitForQuit) isInstruction()        {}
func (HideCursor) isInstruction()         {}
func (UpdateFocus) isInstruction()        {}

// NewAck makes an ack channel; one pending key press is all a wait ever needs.
func NewAck() chan struct{} {
	return make(chan struct{}, 1)
}

func String(inst Instruction) string {
	switch inst := inst.(type) {
	case MoveCursor:
		return fmt.Sprintf("MoveCursor(%d, %d)", inst.X, inst.Y)
	case TypeChar:
		return fmt.Sprintf("TypeChar(%q, bold=%t)", inst.Char, inst.Bold)
	case SetForegroundColor:
		return fmt.Sprintf("SetForegroundColor(#%06x)", inst.Color.Hex())
	case Newline:
		return fmt.Sprintf("Newline(%d)", inst.ResetColumn)
	case SetColumn:
		return fmt.Sprintf("SetColumn(%d)", inst.X)
	case Pause:
		return fmt.Sprintf("Pause(%s)", inst.Duration)
	case WaitForAck:
		return "WaitForAck"
	case WaitForQuit:
		return "WaitForQuit"
	case HideCursor:
		return "HideCursor"
	case UpdateFocus:
		return fmt.Sprintf("UpdateFocus(%s)", inst.Path)
	default:
		panic(fmt.Sprintf("unknown instruction %T", inst))
	}
}
