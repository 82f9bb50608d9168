package player

import (
	"context"
	"time"

	"demoplay/internal/instruction"
	"demoplay/internal/logger"

	"github.com/gdamore/tcell"
)

// Emitter is the inbox of the foreground loop. Emit returns once the instruction is queued,
// never after it is applied, or with ctx's error when the loop is gone.
type Emitter interface {
	Emit(ctx context.Context, inst instruction.Instruction) error
	// Interrupt wakes a foreground loop blocked on its event source.
	Interrupt()
}

// EventInstruction carries one instruction through the tcell event queue.
type EventInstruction struct {
	tcell.EventTime
	Inst instruction.Instruction
}

// queueRetry is how long Emit backs off while the event queue is full.
const queueRetry = 5 * time.Millisecond

// ScreenEmitter queues instructions as screen events, keeping their order.
type ScreenEmitter struct {
	Screen tcell.Screen
}

func (s ScreenEmitter) Emit(ctx context.Context, inst instruction.Instruction) error {
	ev := &EventInstruction{Inst: inst}
	ev.SetEventNow()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Screen.PostEvent(ev); err == nil {
			return nil
		}

		timer := time.NewTimer(queueRetry)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (s ScreenEmitter) Interrupt() {
	if err := s.Screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		logger.Log.Warn("failed to interrupt screen", "err", err)
	}
}
