// File: parser.go
// Title: Command Dispatcher
// Description: Receives commands from the tokenizer, expands aliases,
//              resolves the command name and runs the matching handler.
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

package dispatch

import (
	"errors"

	"github.com/SoarGroup/soarcli/foundation/cli/alias"
	mdwerror "github.com/SoarGroup/soarcli/foundation/core/error"
	mdwlog "github.com/SoarGroup/soarcli/foundation/core/log"
)

// Parser dispatches commands for one session. It implements
// tokenizer.Handler and is not safe for concurrent use.
type Parser struct {
	registry *Registry
	aliases  *alias.Table
	logger   *mdwlog.Logger
	lastErr  error
}

// Option configures a Parser
type Option func(*Parser)

// WithLogger sets the logger used for dispatch output
func WithLogger(logger *mdwlog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a parser. A nil alias table is replaced by an empty one.
func New(registry *Registry, aliases *alias.Table, opts ...Option) *Parser {
	if registry == nil {
		registry, _ = NewRegistry()
	}
	if aliases == nil {
		aliases = alias.New()
	}

	p := &Parser{
		registry: registry,
		aliases:  aliases,
		logger:   mdwlog.GetDefault(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.WithField("component", "dispatch")
	return p
}

// HandleCommand expands an alias in words[0] once, resolves the command and
// runs its handler. An empty command does nothing.
func (p *Parser) HandleCommand(words []string) error {
	if len(words) == 0 {
		return nil
	}
	p.lastErr = nil
	p.logger.Trace("Command received", mdwlog.Fields{"words": words})

	expanded, isAlias := p.aliases.Expand(words)
	if len(expanded) == 0 {
		return nil
	}

	handler, err := p.registry.Lookup(expanded[0])
	if err != nil {
		p.logger.LogError("Command lookup failed", err, mdwlog.Fields{"command": expanded[0]})
		return p.fail(err)
	}

	p.logger.Debug("Dispatching command", mdwlog.Fields{
		"command": handler.Name(),
		"words":   len(expanded),
		"alias":   isAlias,
	})

	if err := handler.Parse(expanded); err != nil {
		var structured *mdwerror.Error
		if !errors.As(err, &structured) {
			err = mdwerror.Wrap(err, handler.Name()).
				WithCode(mdwerror.CodeCommandFailed).
				WithOperation("dispatch.HandleCommand").
				WithDetail("command", handler.Name())
		}
		p.logger.LogError("Command failed", err, mdwlog.Fields{"command": handler.Name()})
		return p.fail(err)
	}
	return nil
}

// LastError returns the message of the last failed command, or ""
func (p *Parser) LastError() string {
	if p.lastErr == nil {
		return ""
	}
	return p.lastErr.Error()
}

// Err returns the error of the last failed command
func (p *Parser) Err() error {
	return p.lastErr
}

// Aliases returns the alias table
func (p *Parser) Aliases() *alias.Table {
	return p.aliases
}

// Registry returns the command registry
func (p *Parser) Registry() *Registry {
	return p.registry
}

func (p *Parser) fail(err error) error {
	p.lastErr = err
	return err
}
