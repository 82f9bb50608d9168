package demo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"demoplay/internal/config"
	"demoplay/internal/highlighter"
	"demoplay/internal/instruction"
	"demoplay/internal/io"
	"demoplay/internal/logger"
	"demoplay/internal/player"
	"demoplay/internal/process"
	"demoplay/internal/script"

	"github.com/muesli/termenv"
)

var (
	ErrNoExtension      = errors.New("file does not have an extension")
	ErrInvalidExtension = errors.New("file extension is not valid utf-8")
)

// KeyWaiter blocks until the viewer presses any key.
type KeyWaiter interface {
	WaitForKey() error
}

// Session is one editor session: Path is typed out inside a sidebar rooted at Root.
type Session struct {
	Root         string
	Path         string
	Instructions []instruction.Instruction
}

type SessionRunner interface {
	RunSession(ctx context.Context, session Session) error
}

// Orchestrator plays a parsed script against the real shell.
// Cwd is the working directory of the demo, the process directory is never changed.
type Orchestrator struct {
	Cwd  string
	Home string

	Executor    process.Runner
	Keys        KeyWaiter
	Sessions    SessionRunner
	Highlighter *highlighter.Highlighter
	Config      config.Config
	Pacer       player.Pacer

	Out *termenv.Output
	Err *termenv.Output
}

// NewOrchestrator wires the orchestrator to the current terminal.
func NewOrchestrator(cfg config.Config) (*Orchestrator, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Log.Warn("no home directory", "err", err)
	}

	return &Orchestrator{
		Cwd:         cwd,
		Home:        home,
		Executor:    process.NewExecutor(),
		Keys:        NewKeyReader(os.Stdin),
		Sessions:    &TerminalSession{Config: cfg},
		Highlighter: highlighter.New(cfg.Theme, cfg.TabWidth),
		Config:      cfg,
		Pacer:       player.NewPacer(cfg.TypingDelay()),
		Out:         termenv.NewOutput(os.Stdout),
		Err:         termenv.NewOutput(os.Stderr),
	}, nil
}

// Run waits for a first key and then plays every action in order.
// Commands that fail to start are reported and skipped, any other failure ends the run.
func (o *Orchestrator) Run(ctx context.Context, actions []script.Action) error {
	o.Out.ClearScreen()

	if err := o.Keys.WaitForKey(); err != nil {
		return err
	}

	for _, action := range actions {
		if err := ctx.Err(); err != nil {
			return err
		}
		logger.Log.Info("action", "action", action.String(), "cwd", o.Cwd)

		if err := o.runAction(ctx, action); err != nil {
			logger.Log.Error("action failed", "action", action.String(), "err", err)
			return err
		}
		o.Pacer.Pause(o.Config.ActionGap())
	}

	o.Pacer.Wait()
	o.Pacer.Wait()
	return nil
}

func (o *Orchestrator) runAction(ctx context.Context, action script.Action) error {
	switch action := action.(type) {
	case script.ChangeDir:
		o.prompt()
		o.typeCommand("cd", action.Path)
		if err := o.changeDir(action.Path); err != nil {
			return err
		}
		return o.Keys.WaitForKey()
	case script.ChangeDirQuiet:
		return o.changeDir(action.Path)
	case script.RunCommand:
		o.prompt()
		o.typeCommand(action.Args...)
		o.run(ctx, action.Args, true)
		return o.Keys.WaitForKey()
	case script.RunCommandVisibleOutputOnly:
		o.run(ctx, action.Args, true)
		return nil
	case script.RunCommandQuiet:
		o.run(ctx, action.Args, false)
		return nil
	case script.RunEditor:
		o.prompt()
		o.typeCommand("edit", action.Dest)
		return o.edit(ctx, action)
	default:
		panic(fmt.Sprintf("demo: unknown action %T", action))
	}
}

func (o *Orchestrator) run(ctx context.Context, args []string, inheritIO bool) {
	err := o.Executor.Run(ctx, process.Command{Args: args, Dir: o.Cwd, InheritIO: inheritIO})
	if err != nil {
		logger.Log.Warn("command failed", "args", args, "err", err)
		fmt.Fprintln(o.Err, o.Err.String(err.Error()).Foreground(termenv.ANSIRed))
	}
}

func (o *Orchestrator) edit(ctx context.Context, action script.RunEditor) error {
	dst := o.resolve(action.Dest)
	src := o.resolve(action.Src)
	if err := io.CopyFile(src, dst); err != nil {
		return err
	}

	extension := strings.TrimPrefix(filepath.Ext(dst), ".")
	if extension == "" {
		return fmt.Errorf("%s: %w", dst, ErrNoExtension)
	}
	if !utf8.ValidString(extension) {
		return fmt.Errorf("%s: %w", dst, ErrInvalidExtension)
	}

	code, err := os.ReadFile(dst)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dst, err)
	}

	lines := o.Highlighter.Highlight(string(code), extension)
	instructions := instruction.Finalize(instruction.Compile(lines), o.Config.StartPause())
	logger.Log.Info("editor session", "file", dst, "lang", highlighter.DetectLang(extension), "instructions", len(instructions))

	return o.Sessions.RunSession(ctx, Session{Root: o.Cwd, Path: dst, Instructions: instructions})
}

func (o *Orchestrator) changeDir(path string) error {
	target := o.resolve(path)
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to change directory to %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("failed to change directory to %s: not a directory", path)
	}
	o.Cwd = target
	return nil
}

// resolve keeps absolute paths, expands ~ and joins the rest onto the tracked cwd.
func (o *Orchestrator) resolve(path string) string {
	switch {
	case filepath.IsAbs(path):
		return filepath.Clean(path)
	case o.Home != "" && path == "~":
		return o.Home
	case o.Home != "" && strings.HasPrefix(path, "~/"):
		return filepath.Join(o.Home, path[2:])
	default:
		return filepath.Join(o.Cwd, path)
	}
}

func (o *Orchestrator) promptText() string {
	dir := o.Cwd
	if o.Home != "" {
		if dir == o.Home {
			dir = "~"
		} else if rel, err := filepath.Rel(o.Home, dir); err == nil && rel != ".." && !strings.HasPrefix(rel, "../") {
			dir = "~/" + rel
		}
	}
	return dir + " $ "
}

func (o *Orchestrator) prompt() {
	fmt.Fprint(o.Out, o.Out.String(o.promptText()).Foreground(termenv.ANSIGreen))
}

// typeCommand echoes args one character at a time, the command name in cyan.
func (o *Orchestrator) typeCommand(args ...string) {
	if len(args) == 0 {
		return
	}

	for _, c := range args[0] {
		fmt.Fprint(o.Out, o.Out.String(string(c)).Foreground(termenv.ANSICyan))
		o.Pacer.Wait()
	}
	for _, arg := range args[1:] {
		fmt.Fprint(o.Out, " ")
		o.Pacer.Wait()
		for _, c := range arg {
			fmt.Fprint(o.Out, string(c))
			o.Pacer.Wait()
		}
	}
	fmt.Fprintln(o.Out)
}
