// ============================================================================
// soarcli - Soar command interpreter
// ============================================================================
//
// Package:     repl
// Description: Line-mode interactive loop for terminals without TUI support
//              and for piped input
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/SoarGroup/soarcli/foundation/cli"
	mdwlog "github.com/SoarGroup/soarcli/foundation/core/log"
	"github.com/SoarGroup/soarcli/internal/commands"
	"github.com/SoarGroup/soarcli/internal/history"
)

// Config holds REPL configuration
type Config struct {
	Prompt             string
	ContinuationPrompt string
	History            history.Store // nil disables recording
	HistoryLimit       int           // Entries kept after the loop ends; 0 keeps all
	Logger             *mdwlog.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Prompt:             "soar> ",
		ContinuationPrompt: "  ... ",
	}
}

// REPL reads command lines and evaluates them in a session
type REPL struct {
	session *cli.Session
	in      *bufio.Scanner
	out     io.Writer
	cfg     Config
	logger  *mdwlog.Logger
}

// New creates a REPL reading from in and writing prompts and errors to out
func New(session *cli.Session, in io.Reader, out io.Writer, cfg Config) *REPL {
	defaults := DefaultConfig()
	if cfg.Prompt == "" {
		cfg.Prompt = defaults.Prompt
	}
	if cfg.ContinuationPrompt == "" {
		cfg.ContinuationPrompt = defaults.ContinuationPrompt
	}
	if cfg.Logger == nil {
		cfg.Logger = mdwlog.GetDefault()
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &REPL{
		session: session,
		in:      scanner,
		out:     out,
		cfg:     cfg,
		logger:  cfg.Logger.WithField("component", "repl"),
	}
}

// Run reads lines until end of input, "exit" or "quit", or until ctx is
// done. Lines that end inside a quote or brace are joined with the
// following lines before they are evaluated.
func (r *REPL) Run(ctx context.Context) error {
	defer r.prune(ctx)

	var pending strings.Builder
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if pending.Len() == 0 {
			fmt.Fprint(r.out, r.cfg.Prompt)
		} else {
			fmt.Fprint(r.out, r.cfg.ContinuationPrompt)
		}

		if !r.in.Scan() {
			if err := r.in.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			if pending.Len() > 0 {
				r.evaluate(ctx, pending.String())
			}
			fmt.Fprintln(r.out)
			return nil
		}

		line := r.in.Text()
		if pending.Len() == 0 {
			switch strings.TrimSpace(line) {
			case "exit", "quit":
				return nil
			}
		}

		pending.WriteString(line)
		if cli.NeedsMore(pending.String()) {
			pending.WriteByte('\n')
			continue
		}

		r.evaluate(ctx, pending.String())
		pending.Reset()
	}
}

func (r *REPL) evaluate(ctx context.Context, input string) {
	if strings.TrimSpace(input) == "" {
		return
	}

	err := r.session.Evaluate(input)
	if err != nil {
		fmt.Fprintf(r.out, "Error: %s\n", err)
		if hint := commands.ErrorHint(err); hint != "" {
			fmt.Fprintf(r.out, "Hint: %s\n", hint)
		}
	}

	if recErr := history.Record(ctx, r.cfg.History, r.session.ID(), input, err); recErr != nil {
		r.logger.WarnWithErr("Failed to record history", recErr)
	}
}

func (r *REPL) prune(ctx context.Context) {
	if r.cfg.History == nil || r.cfg.HistoryLimit <= 0 {
		return
	}
	// ctx may already be cancelled
	deleted, err := r.cfg.History.Prune(context.WithoutCancel(ctx), r.cfg.HistoryLimit)
	if err != nil {
		r.logger.WarnWithErr("Failed to prune history", err)
		return
	}
	if deleted > 0 {
		r.logger.Debug("History pruned", mdwlog.Fields{"deleted": deleted})
	}
}
