package demo

import (
	"context"
	"fmt"

	"demoplay/internal/config"
	"demoplay/internal/editor"
	"demoplay/internal/instruction"
	"demoplay/internal/logger"
	"demoplay/internal/player"

	"github.com/gdamore/tcell"
)

// TerminalSession runs editor sessions full screen on the terminal.
type TerminalSession struct {
	Config config.Config
	// NewScreen defaults to tcell.NewScreen.
	NewScreen func() (tcell.Screen, error)
}

func (s *TerminalSession) RunSession(ctx context.Context, session Session) error {
	newScreen := s.NewScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	s.play(ctx, screen, session)
	return nil
}

// play runs the foreground loop: the engine types, the loop applies and draws,
// keys acknowledge, until the bridge reports the end of the session.
func (s *TerminalSession) play(ctx context.Context, screen tcell.Screen, session Session) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ack := instruction.NewAck()
	quit := &player.QuitFlag{}
	ed := editor.New(session.Root, session.Path, ack, editor.Options{
		Blacklist:    s.Config.Blacklist,
		SidebarWidth: s.Config.SidebarWidth,
	})
	bridge := &player.Bridge{Source: screen, Quit: quit}
	engine := &player.Engine{
		Emitter: player.ScreenEmitter{Screen: screen},
		Ack:     ack,
		Quit:    quit,
		Pacer:   player.NewPacer(s.Config.TypingDelay()),
	}

	logger.Log.Info("session started", "root", session.Root, "path", session.Path)
	go engine.Run(ctx, session.Instructions)

	ed.Draw(screen)
	screen.Show()

	for {
		ev := bridge.PollEvent()
		if bridge.ShouldQuit(ev) {
			break
		}

		switch ev := ev.(type) {
		case *player.EventInstruction:
			ed.Apply(ev.Inst)
		case *tcell.EventKey:
			ed.OnKey()
		case *tcell.EventResize:
			screen.Sync()
		}

		ed.Draw(screen)
		screen.Show()
	}

	logger.Log.Info("session stopped", "path", session.Path, "last", ed.Current)
}
