// File: registry.go
// Title: Command Registry
// Description: Immutable table of command handlers with abbreviation-aware
//              lookup. A registry is built once and may be shared read-only
//              between sessions.
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

// Package dispatch routes tokenized commands to their handlers.
package dispatch

import (
	"sort"
	"strings"

	"github.com/SoarGroup/soarcli/foundation/cli/prefix"
	mdwerror "github.com/SoarGroup/soarcli/foundation/core/error"
	mdwstringx "github.com/SoarGroup/soarcli/foundation/utils/stringx"
)

// Handler implements one command
type Handler interface {
	// Name returns the registry key of the command
	Name() string
	// Usage returns a short help text
	Usage() string
	// Parse runs the command. words[0] is the command name as typed, after
	// alias expansion.
	Parse(words []string) error
}

// Registry maps command names to handlers
type Registry struct {
	handlers map[string]Handler
	names    []string
}

// NewRegistry builds a registry from handlers. Blank and duplicate names are
// rejected.
func NewRegistry(handlers ...Handler) (*Registry, error) {
	r := &Registry{
		handlers: make(map[string]Handler, len(handlers)),
		names:    make([]string, 0, len(handlers)),
	}

	for _, h := range handlers {
		if h == nil {
			return nil, mdwerror.New("command handler cannot be nil").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("dispatch.NewRegistry")
		}
		name := h.Name()
		if mdwstringx.IsBlank(name) {
			return nil, mdwerror.New("command name cannot be empty").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("dispatch.NewRegistry")
		}
		if _, exists := r.handlers[name]; exists {
			return nil, mdwerror.Newf("command %s is already registered", name).
				WithCode(mdwerror.CodeDuplicateEntry).
				WithOperation("dispatch.NewRegistry").
				WithDetail("command", name)
		}
		r.handlers[name] = h
		r.names = append(r.names, name)
	}

	sort.Strings(r.names)
	return r, nil
}

// Lookup resolves name, which may be an unambiguous abbreviation
func (r *Registry) Lookup(name string) (Handler, error) {
	match, candidates, ok := prefix.Resolve(r.names, name)
	if ok {
		return r.handlers[match], nil
	}

	if prefix.Ambiguous(candidates) {
		return nil, mdwerror.New("ambiguous command, possibilities: "+strings.Join(candidates, " ")).
			WithCode(mdwerror.CodeAmbiguousCommand).
			WithOperation("dispatch.Lookup").
			WithDetail("command", name).
			WithDetail("candidates", candidates)
	}
	return nil, mdwerror.New("no such command: "+name).
		WithCode(mdwerror.CodeUnknownCommand).
		WithOperation("dispatch.Lookup").
		WithDetail("command", name)
}

// Get returns the handler registered under exactly name
func (r *Registry) Get(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns the command names in lexicographic order
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Handlers returns the handlers ordered by name
func (r *Registry) Handlers() []Handler {
	handlers := make([]Handler, len(r.names))
	for i, name := range r.names {
		handlers[i] = r.handlers[name]
	}
	return handlers
}

// Len returns the number of commands
func (r *Registry) Len() int {
	return len(r.names)
}
