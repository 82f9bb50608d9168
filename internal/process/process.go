package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"demoplay/internal/logger"
)

var ErrEmptyCommand = errors.New("empty command")

// Command is one program run on behalf of the script.
type Command struct {
	Args      []string // Args[0] is the executable
	Dir       string   // working directory, the orchestrator tracks it
	InheritIO bool     // attach stdin as well as stdout/stderr
}

// Runner runs commands to completion.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// Executor runs commands with the demo terminal as their output.
type Executor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func NewExecutor() *Executor {
	return &Executor{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run starts the command and blocks until it exits. Only failing to start is an error,
// a non-zero exit status is part of the demo.
func (e *Executor) Run(ctx context.Context, command Command) error {
	if len(command.Args) == 0 {
		return ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, command.Args[0], command.Args[1:]...)
	cmd.Dir = command.Dir
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if command.InheritIO {
		cmd.Stdin = e.Stdin
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", command.Args[0], err)
	}

	err := cmd.Wait() // blocks until process exiting
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logger.Log.Info("command finished", "args", command.Args, "exit", exitErr.ExitCode(), "elapsed", time.Since(start))
		return nil
	}
	if err != nil {
		return fmt.Errorf("waiting for %s: %w", command.Args[0], err)
	}

	logger.Log.Info("command finished", "args", command.Args, "exit", 0, "elapsed", time.Since(start))
	return nil
}
