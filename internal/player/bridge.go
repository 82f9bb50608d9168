package player

import (
	"sync"

	"github.com/gdamore/tcell"
)

// QuitFlag lets the engine end a foreground loop it does not control.
// Reading it through Consume resets it, so a raised flag stops exactly one loop.
type QuitFlag struct {
	mu     sync.Mutex
	raised bool
}

func (q *QuitFlag) Raise() {
	q.mu.Lock()
	q.raised = true
	q.mu.Unlock()
}

// Consume reports whether the flag was raised and lowers it.
func (q *QuitFlag) Consume() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	raised := q.raised
	q.raised = false
	return raised
}

// Peek reports the flag without lowering it.
func (q *QuitFlag) Peek() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.raised
}

// EventStop is returned by the bridge instead of a real event once the engine is done.
type EventStop struct {
	tcell.EventTime
}

func NewEventStop() *EventStop {
	ev := &EventStop{}
	ev.SetEventNow()
	return ev
}

type EventSource interface {
	PollEvent() tcell.Event
}

// Bridge wraps the event source of the foreground loop and turns a raised QuitFlag into EventStop.
type Bridge struct {
	Source EventSource
	Quit   *QuitFlag
}

// PollEvent checks the flag before blocking on the source and again after it returns,
// the engine interrupts the source when it raises the flag.
func (b *Bridge) PollEvent() tcell.Event {
	if b.Quit.Consume() {
		return NewEventStop()
	}
	ev := b.Source.PollEvent()
	if b.Quit.Consume() {
		return NewEventStop()
	}
	return ev
}

// ShouldQuit is the loop's own quit test: Ctrl-C, a stop event, a finished source or a raised flag.
func (b *Bridge) ShouldQuit(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		return true
	case *EventStop:
		return true
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return true
		}
	}
	return b.Quit.Peek()
}
