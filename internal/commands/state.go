package commands

import (
	"context"
	"fmt"

	"github.com/SoarGroup/soarcli/foundation/cli/options"
	mdwerror "github.com/SoarGroup/soarcli/foundation/core/error"
	"github.com/SoarGroup/soarcli/foundation/utils/stringx"
	"github.com/SoarGroup/soarcli/internal/history"
	"github.com/SoarGroup/soarcli/internal/kernel"
)

var historyOptions = []options.Spec{
	{Short: 'c', Long: "count", Arity: options.RequiredArgument},
	{Short: 'a', Long: "all-sessions", Arity: options.NoArgument},
}

var watchOptions = []options.Spec{
	{Short: 'l', Long: "level", Arity: options.RequiredArgument},
}

const (
	// defaultHistoryCount is how many entries history lists without -c
	defaultHistoryCount = 20
	// maxHistoryLine is the number of runes history prints per entry
	maxHistoryLine = 120
)

func (e *Env) historyCommand() *command {
	return &command{
		name:  "history",
		usage: "history [-c count] [-a]",
		run:   e.doHistory,
	}
}

func (e *Env) doHistory(words []string) error {
	s := options.NewScanner(words, historyOptions)
	q := history.Query{SessionID: e.SessionID, Limit: defaultHistoryCount}
	for s.Next() {
		switch s.Option() {
		case 'c':
			n, err := parseInt("count", s.Argument())
			if err != nil {
				return err
			}
			if n < 1 {
				return mdwerror.Newf("invalid count: %d (must be at least 1)", n).
					WithCode(mdwerror.CodeInvalidArgument).
					WithDetail("count", n)
			}
			q.Limit = n
		case 'a':
			q.SessionID = ""
		}
	}
	if err := s.Err(); err != nil {
		return err
	}
	if err := s.CheckArgCount(0, 0); err != nil {
		return err
	}

	if e.History == nil {
		return mdwerror.New("history is disabled").
			WithCode(mdwerror.CodeInvalidInput)
	}

	entries, err := e.History.Recent(context.Background(), q)
	if err != nil {
		return mdwerror.Wrap(err, "failed to read history").
			WithCode(mdwerror.CodeDatabaseError)
	}
	for _, entry := range entries {
		line := stringx.Truncate(entry.Line, maxHistoryLine, "...")
		if entry.OK {
			fmt.Fprintf(e.Out, "%5d  %s\n", entry.ID, line)
		} else {
			fmt.Fprintf(e.Out, "%5d! %s\n", entry.ID, line)
		}
	}
	return nil
}

func (e *Env) sourceCommand() *command {
	return &command{
		name:  "source",
		usage: "source file...",
		run:   e.doSource,
	}
}

func (e *Env) doSource(words []string) error {
	s := options.NewScanner(words, nil)
	for s.Next() {
	}
	if err := s.Err(); err != nil {
		return err
	}
	if err := s.CheckArgCount(1, -1); err != nil {
		return err
	}
	if e.Source == nil {
		return mdwerror.New("source is not available in this session").
			WithCode(mdwerror.CodeInvalidInput)
	}

	for _, path := range s.Args() {
		if err := e.Source(path); err != nil {
			return err
		}
	}
	return nil
}

func (e *Env) watchCommand() *command {
	return &command{
		name:  "watch",
		usage: fmt.Sprintf("watch [-l level] [level]  (%d-%d)", kernel.MinWatchLevel, kernel.MaxWatchLevel),
		run:   e.doWatch,
	}
}

func (e *Env) doWatch(words []string) error {
	s := options.NewScanner(words, watchOptions)
	level := ""
	for s.Next() {
		if s.Option() == 'l' {
			level = s.Argument()
		}
	}
	if err := s.Err(); err != nil {
		return err
	}

	maxArgs := 1
	if level != "" {
		maxArgs = 0
	}
	if err := s.CheckArgCount(0, maxArgs); err != nil {
		return err
	}
	if args := s.Args(); len(args) == 1 {
		level = args[0]
	}

	if level == "" {
		fmt.Fprintf(e.Out, "Current watch level: %d\n", e.Agent.WatchLevel())
		return nil
	}

	n, err := parseInt("watch level", level)
	if err != nil {
		return err
	}
	return e.Agent.SetWatchLevel(n)
}
