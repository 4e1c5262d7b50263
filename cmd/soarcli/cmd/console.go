package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/SoarGroup/soarcli/internal/repl"
	"github.com/SoarGroup/soarcli/internal/tui/console"
	"github.com/SoarGroup/soarcli/pkg/core/config"
)

var consoleMode string

var consoleCmd = &cobra.Command{
	Use:   "console [file...]",
	Short: "Interactive console",
	Long: `Starts an interactive session after sourcing the given files.

The full-screen console is used when stdin and stdout are terminals,
line mode otherwise. --mode overrides the configured choice.

Keys (full-screen console):
  Enter     - Evaluate
  Up/Down   - History
  PgUp/PgDn - Scroll
  Ctrl+L    - Clear
  Ctrl+C    - Quit`,
	RunE: runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)
	consoleCmd.Flags().StringVar(&consoleMode, "mode", "", "auto, tui or line (default from config)")
}

func runConsole(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfgFile, true)
	if err != nil {
		return err
	}
	defer a.Close()

	mode := a.cfg.Console.Mode
	if consoleMode != "" {
		mode = consoleMode
	}
	switch mode {
	case config.ModeAuto:
		mode = config.ModeLine
		if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
			mode = config.ModeTUI
		}
	case config.ModeTUI, config.ModeLine:
	default:
		return fmt.Errorf("invalid console mode %q (want auto, tui or line)", mode)
	}

	if mode == config.ModeTUI {
		output := console.NewOutput()
		session, err := a.newSession(output)
		if err != nil {
			return err
		}
		if err := sourceAll(session, args); err != nil {
			return err
		}
		return console.Run(session, output, console.Config{
			Prompt:             a.cfg.Console.Prompt,
			ContinuationPrompt: a.cfg.Console.ContinuationPrompt,
			History:            a.store,
			HistoryLimit:       a.cfg.Console.HistoryLimit,
			Logger:             a.logger,
		})
	}

	out := cmd.OutOrStdout()
	session, err := a.newSession(out)
	if err != nil {
		return err
	}
	if err := sourceAll(session, args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := repl.New(session, cmd.InOrStdin(), out, repl.Config{
		Prompt:             a.cfg.Console.Prompt,
		ContinuationPrompt: a.cfg.Console.ContinuationPrompt,
		History:            a.store,
		HistoryLimit:       a.cfg.Console.HistoryLimit,
		Logger:             a.logger,
	})
	return r.Run(ctx)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
