package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"demoplay/internal/config"
	"demoplay/internal/demo"
	"demoplay/internal/logger"
	"demoplay/internal/script"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "demoplay <script>",
	Short: "Replay a script of shell commands and file edits as a live terminal demo.",
	Long: `Replay a script of shell commands and file edits as a live terminal demo.

Every line of the script is one action:
  cmd args...      type the command, run it, wait for a key
  # cmd args...    run silently
  - cmd args...    run with output but without typing it
  + dest src       copy src to dest and type it out in an editor`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), args[0])
	},
}

func run(ctx context.Context, path string) error {
	if err := logger.Log.Start(); err != nil {
		return err
	}
	defer logger.Log.Stop()

	actions, err := script.ParseFile(path)
	if err != nil {
		return err
	}

	orchestrator, err := demo.NewOrchestrator(config.GetConfig())
	if err != nil {
		return err
	}
	return orchestrator.Run(ctx, actions)
}

func main() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "demoplay:", err)
		stop()
		os.Exit(1)
	}
}
