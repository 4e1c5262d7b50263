// ============================================================================
// soarcli - Soar command interpreter
// ============================================================================
//
// Package:     commands
// Description: Built-in command catalog. Each command scans its own options
//              and then acts on the kernel agent, the alias table or the
//              history store of its session.
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package commands

import (
	"io"
	"os"
	"strconv"

	"github.com/SoarGroup/soarcli/foundation/cli"
	"github.com/SoarGroup/soarcli/foundation/cli/alias"
	"github.com/SoarGroup/soarcli/foundation/cli/dispatch"
	mdwerror "github.com/SoarGroup/soarcli/foundation/core/error"
	mdwlog "github.com/SoarGroup/soarcli/foundation/core/log"
	"github.com/SoarGroup/soarcli/internal/history"
	"github.com/SoarGroup/soarcli/internal/kernel"
)

// DefaultAliases is the alias catalog loaded into new sessions
var DefaultAliases = []string{
	"? help",
	"a alias",
	"e echo",
	"ex excise",
	"h history",
	"p print",
	"unalias alias -r",
	"w watch",
}

// Env is the state the built-in commands of one session act on
type Env struct {
	Out       io.Writer
	Agent     *kernel.Agent
	Aliases   *alias.Table
	History   history.Store // nil disables the history command
	SessionID string
	Source    func(path string) error
	NoSource  bool // leaves the source command out of the registry

	registry *dispatch.Registry
}

// command adapts a function to dispatch.Handler
type command struct {
	name  string
	usage string
	run   func(words []string) error
}

func (c *command) Name() string {
	return c.name
}

func (c *command) Usage() string {
	return c.usage
}

func (c *command) Parse(words []string) error {
	return c.run(words)
}

// NewRegistry builds the registry of built-in commands for env. Missing
// parts of env are filled with defaults.
func NewRegistry(env *Env) (*dispatch.Registry, error) {
	if env.Out == nil {
		env.Out = os.Stdout
	}
	if env.Agent == nil {
		env.Agent = kernel.NewAgent("")
	}
	if env.Aliases == nil {
		env.Aliases = alias.New()
	}

	handlers := []dispatch.Handler{
		env.aliasCommand(),
		env.echoCommand(),
		env.exciseCommand(),
		env.helpCommand(),
		env.historyCommand(),
		env.printCommand(),
	}
	if !env.NoSource {
		handlers = append(handlers, env.sourceCommand())
	}
	handlers = append(handlers, env.spCommand(), env.watchCommand())

	reg, err := dispatch.NewRegistry(handlers...)
	if err != nil {
		return nil, err
	}
	env.registry = reg
	return reg, nil
}

// SessionOptions configures NewSession
type SessionOptions struct {
	Logger     *mdwlog.Logger
	ID         string
	AliasLines []string
}

// NewSession creates an interpreter session running the built-in commands
// against env. env.SessionID is set to the session ID, and env.Source to the
// session's Source unless it was already set.
func NewSession(env *Env, opts SessionOptions) (*cli.Session, error) {
	if env.Aliases == nil {
		env.Aliases = alias.New(alias.WithLogger(opts.Logger))
	}

	reg, err := NewRegistry(env)
	if err != nil {
		return nil, err
	}

	sess, err := cli.NewSession(cli.Options{
		Logger:     opts.Logger,
		Registry:   reg,
		Aliases:    env.Aliases,
		AliasLines: opts.AliasLines,
		ID:         opts.ID,
	})
	if err != nil {
		return nil, err
	}

	env.SessionID = sess.ID()
	if env.Source == nil && !env.NoSource {
		env.Source = sess.Source
	}
	return sess, nil
}

// ErrorHint suggests a help command for lookup and argument count errors,
// or returns ""
func ErrorHint(err error) string {
	code := mdwerror.GetCode(err)
	switch {
	case code == mdwerror.CodeUnknownCommand, code == mdwerror.CodeAmbiguousCommand:
		return `type "help" to list commands`
	case code.IsLookup(), code.IsArity():
		return `type "help <command>" for usage`
	}
	return ""
}

func parseInt(what, text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, mdwerror.Newf("invalid %s: %s", what, text).
			WithCode(mdwerror.CodeInvalidArgument).
			WithDetail(what, text)
	}
	return n, nil
}
