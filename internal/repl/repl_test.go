package repl

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	mdwlog "github.com/SoarGroup/soarcli/foundation/core/log"
	"github.com/SoarGroup/soarcli/internal/commands"
	"github.com/SoarGroup/soarcli/internal/history"
	"github.com/SoarGroup/soarcli/internal/kernel"
)

func runREPL(t *testing.T, input string, cfg Config) (string, *kernel.Agent) {
	t.Helper()
	out := &bytes.Buffer{}
	env := &commands.Env{Out: out, Agent: kernel.NewAgent("test"), History: cfg.History}
	sess, err := commands.NewSession(env, commands.SessionOptions{
		Logger:     mdwlog.Discard(),
		AliasLines: commands.DefaultAliases,
	})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	cfg.Logger = mdwlog.Discard()
	r := New(sess, strings.NewReader(input), out, cfg)
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String(), env.Agent
}

func TestRun_EvaluatesLines(t *testing.T) {
	out, agent := runREPL(t, "echo hello\nwatch 3\n", Config{Prompt: "> "})

	if want := "> hello\n> > \n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	if agent.WatchLevel() != 3 {
		t.Errorf("WatchLevel() = %d", agent.WatchLevel())
	}
}

func TestRun_ContinuationLines(t *testing.T) {
	input := "echo once; sp {r1\n  (state <s>)\n-->\n  (<s> ^a b)}\nprint -c\n"
	out, agent := runREPL(t, input, Config{Prompt: "> ", ContinuationPrompt: ". "})

	if agent.ProductionCount() != 1 {
		t.Fatalf("ProductionCount() = %d, output:\n%s", agent.ProductionCount(), out)
	}
	if strings.Count(out, "once") != 1 {
		t.Errorf("commands before an open brace ran more than once:\n%s", out)
	}
	if !strings.Contains(out, "> . . . once\n*\n> 1\n> \n") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRun_ErrorsAndExit(t *testing.T) {
	out, _ := runREPL(t, "bogus\nexit\necho never\n", Config{Prompt: "> "})

	if !strings.Contains(out, "Error: no such command: bogus\nHint: type \"help\" to list commands\n") {
		t.Errorf("missing error in %q", out)
	}
	if strings.Contains(out, "never") {
		t.Errorf("input after exit was evaluated: %q", out)
	}
}

func TestRun_UnterminatedAtEOF(t *testing.T) {
	out, _ := runREPL(t, "echo {open\n", Config{Prompt: "> "})
	if !strings.Contains(out, "Error: unexpected end of input") {
		t.Errorf("output = %q", out)
	}
}

func TestRun_RecordsHistory(t *testing.T) {
	store := history.NewMemoryStore()
	runREPL(t, "echo a\n\nbogus\necho {b\nc}\necho d\n", Config{History: store, HistoryLimit: 2})

	entries, err := store.Recent(context.Background(), history.Query{})
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("history has %d entries after pruning, want 2", len(entries))
	}
	if entries[0].Line != "echo {b\nc}" || entries[1].Line != "echo d" {
		t.Errorf("entries = %q, %q", entries[0].Line, entries[1].Line)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	env := &commands.Env{Out: &bytes.Buffer{}}
	sess, _ := commands.NewSession(env, commands.SessionOptions{Logger: mdwlog.Discard()})
	r := New(sess, strings.NewReader("echo x\n"), &bytes.Buffer{}, Config{Logger: mdwlog.Discard()})
	if err := r.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
