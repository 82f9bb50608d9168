package player

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"demoplay/internal/instruction"
	"demoplay/internal/logger"
)

// Pacer produces the human looking delay between two typed characters.
type Pacer struct {
	Min   time.Duration
	Max   time.Duration
	Sleep func(time.Duration) // time.Sleep when nil
}

func NewPacer(min, max time.Duration) Pacer {
	return Pacer{Min: min, Max: max, Sleep: time.Sleep}
}

// Delay samples uniformly from [Min, Max).
func (p Pacer) Delay() time.Duration {
	if p.Max <= p.Min {
		return p.Min
	}
	return p.Min + rand.N(p.Max-p.Min)
}

// Wait sleeps one sampled delay.
func (p Pacer) Wait() {
	p.Pause(p.Delay())
}

func (p Pacer) Pause(d time.Duration) {
	if p.Sleep == nil {
		time.Sleep(d)
		return
	}
	p.Sleep(d)
}

// Engine plays the instructions of one editor session on its own goroutine.
// It only ever sends to the foreground; the editor state stays with the foreground loop.
type Engine struct {
	Emitter Emitter
	Ack     chan struct{}
	Quit    *QuitFlag
	Pacer   Pacer
}

// Run plays instructions in order and raises Quit when the session is over.
// Waits have no timeout, only ctx ends them early.
func (e *Engine) Run(ctx context.Context, instructions []instruction.Instruction) {
	defer e.stop()
	logger.Log.Debug("engine started", "instructions", len(instructions))

	for _, inst := range instructions {
		switch inst := inst.(type) {
		case instruction.Pause:
			e.Pacer.Pause(inst.Duration)
		case instruction.WaitForAck:
			if err := e.Emitter.Emit(ctx, inst); err != nil {
				return
			}
			if !e.wait(ctx) {
				return
			}
		case instruction.WaitForQuit:
			e.wait(ctx)
			return
		case instruction.MoveCursor, instruction.TypeChar, instruction.SetForegroundColor,
			instruction.Newline, instruction.SetColumn, instruction.HideCursor, instruction.UpdateFocus:
			e.drain()
			e.Pacer.Wait()
			if err := e.Emitter.Emit(ctx, inst); err != nil {
				return
			}
			if focus, ok := inst.(instruction.UpdateFocus); ok {
				e.Ack = focus.Ack
			}
		default:
			panic(fmt.Sprintf("player: unknown instruction %T", inst))
		}
	}

	// no WaitForQuit at the end, still let the viewer look at the result
	e.wait(ctx)
}

// drain drops a key press made while typing so it does not answer the next wait.
func (e *Engine) drain() {
	select {
	case <-e.Ack:
		logger.Log.Debug("dropped stale ack")
	default:
	}
}

func (e *Engine) wait(ctx context.Context) bool {
	select {
	case <-e.Ack:
		return true
	case <-ctx.Done():
		return false
	}
}

func (e *Engine) stop() {
	e.Quit.Raise()
	e.Emitter.Interrupt()
	logger.Log.Debug("engine stopped")
}
