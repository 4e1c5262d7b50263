// File: session.go
// Title: Interpreter Session
// Description: Connects tokenizer, alias table and dispatcher into one
//              interpreter session. Every front end (script runner, console,
//              remote connection) owns its own session.
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

// Package cli provides the command interpreter session built on the
// tokenizer, alias, options and dispatch packages.
package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/SoarGroup/soarcli/foundation/cli/alias"
	"github.com/SoarGroup/soarcli/foundation/cli/dispatch"
	"github.com/SoarGroup/soarcli/foundation/cli/tokenizer"
	mdwerror "github.com/SoarGroup/soarcli/foundation/core/error"
	mdwlog "github.com/SoarGroup/soarcli/foundation/core/log"
)

// MaxSourceDepth limits how deeply source files may include each other
const MaxSourceDepth = 32

// Options configures a Session
type Options struct {
	Logger     *mdwlog.Logger
	Registry   *dispatch.Registry
	Aliases    *alias.Table // Alias table to use; a new one is created if nil
	AliasLines []string     // Catalog lines loaded into the alias table
	ID         string       // Session identifier; a UUID if empty
}

// Session evaluates command text. It is not safe for concurrent use.
type Session struct {
	id        string
	logger    *mdwlog.Logger
	aliases   *alias.Table
	parser    *dispatch.Parser
	tokenizer *tokenizer.Tokenizer
	depth     int
	lastErr   error
}

// NewSession creates a session
func NewSession(opts Options) (*Session, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}

	logger := opts.Logger.WithFields(mdwlog.Fields{
		"component": "session",
		"session":   opts.ID,
	})

	aliases := opts.Aliases
	if aliases == nil {
		aliases = alias.New(alias.WithLogger(logger))
	}
	if err := aliases.Load(opts.AliasLines); err != nil {
		return nil, mdwerror.Wrap(err, "failed to load alias catalog").
			WithOperation("cli.NewSession")
	}

	parser := dispatch.New(opts.Registry, aliases, dispatch.WithLogger(logger))
	s := &Session{
		id:        opts.ID,
		logger:    logger,
		aliases:   aliases,
		parser:    parser,
		tokenizer: tokenizer.New(parser),
	}

	logger.Debug("Session created", mdwlog.Fields{
		"commands": parser.Registry().Len(),
		"aliases":  aliases.Len(),
	})
	return s, nil
}

// Evaluate runs every command in input. It stops at the first lexical error
// or failed command.
func (s *Session) Evaluate(input string) error {
	s.lastErr = nil
	if err := s.tokenizer.Evaluate(input); err != nil {
		s.lastErr = err
		return err
	}
	return nil
}

// Source evaluates the contents of a file. Errors are prefixed with the file
// name, line and offset. A lexical error inside the file is reported as
// invalid input so it does not look like an incomplete interactive line.
func (s *Session) Source(path string) error {
	if s.depth >= MaxSourceDepth {
		return mdwerror.Newf("source nesting deeper than %d", MaxSourceDepth).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cli.Source").
			WithDetail("path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return mdwerror.Wrap(err, "failed to read source file").
			WithCode(mdwerror.CodeIOError).
			WithOperation("cli.Source").
			WithDetail("path", path)
	}

	s.depth++
	defer func() { s.depth-- }()

	s.logger.Debug("Sourcing file", mdwlog.Fields{
		"path":  path,
		"depth": s.depth,
	})

	tok := tokenizer.New(s.parser)
	if err := tok.Evaluate(string(data)); err != nil {
		// Lexical errors point at where input ran out, command errors at the
		// start of the rejected command
		line, offset := tok.CommandStartLine(), tok.CommandStartOffset()
		if IsIncomplete(err) {
			line, offset = tok.CurrentLine(), tok.Offset()
		}
		wrapped := mdwerror.Wrap(err, fmt.Sprintf("%s:%d:%d", path, line, offset)).
			WithOperation("cli.Source").
			WithDetail("path", path).
			WithDetail("line", line).
			WithDetail("offset", offset)
		if IsIncomplete(err) {
			wrapped = wrapped.WithCode(mdwerror.CodeInvalidInput)
		}
		return wrapped
	}
	return nil
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Aliases returns the session's alias table
func (s *Session) Aliases() *alias.Table {
	return s.aliases
}

// Parser returns the session's dispatcher
func (s *Session) Parser() *dispatch.Parser {
	return s.parser
}

// Registry returns the command registry
func (s *Session) Registry() *dispatch.Registry {
	return s.parser.Registry()
}

// Tokenizer returns the tokenizer used by Evaluate
func (s *Session) Tokenizer() *tokenizer.Tokenizer {
	return s.tokenizer
}

// Err returns the error of the last Evaluate call
func (s *Session) Err() error {
	return s.lastErr
}

// LastError returns the message of the last failed Evaluate call, or ""
func (s *Session) LastError() string {
	if s.lastErr == nil {
		return ""
	}
	return s.lastErr.Error()
}

// IsIncomplete reports whether err means the input ended inside a quote,
// brace or escape, so an interactive caller should read another line and
// evaluate the joined text again
func IsIncomplete(err error) bool {
	return err != nil && mdwerror.GetCode(err) == mdwerror.CodeUnexpectedEOF
}

// NeedsMore reports whether input ends inside a quote, brace or escape. It
// only tokenizes, so no command runs; interactive front ends use it to
// collect continuation lines before calling Evaluate.
func NeedsMore(input string) bool {
	return IsIncomplete(tokenizer.New(nil).Evaluate(input))
}
