// File: alias.go
// Title: Command Alias Table
// Description: Maps alias names to word sequences. Before a command is
//              dispatched its first word is looked up here and, if it is an
//              alias, replaced by the expansion. Alias catalogs are plain
//              command lines loaded through the tokenizer.
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

// Package alias implements the alias table used by the command dispatcher.
package alias

import (
	"iter"
	"slices"
	"sort"

	"github.com/SoarGroup/soarcli/foundation/cli/tokenizer"
	mdwerror "github.com/SoarGroup/soarcli/foundation/core/error"
	"github.com/SoarGroup/soarcli/foundation/core/log"
)

// Table holds alias definitions. A Table belongs to one session and is not
// safe for concurrent use.
type Table struct {
	entries map[string][]string
	logger  *log.Logger
}

// Option configures a Table
type Option func(*Table)

// WithLogger sets the logger used for debug output
func WithLogger(logger *log.Logger) Option {
	return func(t *Table) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New creates an empty alias table
func New(opts ...Option) *Table {
	t := &Table{
		entries: make(map[string][]string),
		logger:  log.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.WithField("component", "alias")
	return t
}

// Set defines or removes an alias. With a single word the alias of that name
// is removed (nothing happens if there is none). With more words the first
// is the name and the rest replace any previous expansion.
func (t *Table) Set(words []string) error {
	if len(words) == 0 {
		return mdwerror.New("alias definition is empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("alias.Set")
	}

	name := words[0]
	if len(words) == 1 {
		t.Remove(name)
		return nil
	}

	t.entries[name] = slices.Clone(words[1:])
	t.logger.Debug("Alias defined", log.Fields{
		"name":      name,
		"expansion": words[1:],
	})
	return nil
}

// Remove deletes the alias name and reports whether it existed
func (t *Table) Remove(name string) bool {
	if _, ok := t.entries[name]; !ok {
		return false
	}
	delete(t.entries, name)
	t.logger.Debug("Alias removed", log.Fields{"name": name})
	return true
}

// Expand replaces words[0] by its expansion if it is an alias. The result is
// a new slice; words is never modified. When words[0] is not an alias, words
// is returned unchanged together with false.
//
// Expand is applied once per command. Calling it until nothing changes can
// loop forever on an alias whose expansion starts with its own name.
func (t *Table) Expand(words []string) ([]string, bool) {
	if len(words) == 0 {
		return words, false
	}

	expansion, ok := t.entries[words[0]]
	if !ok {
		return words, false
	}

	expanded := make([]string, 0, len(expansion)+len(words)-1)
	expanded = append(expanded, expansion...)
	expanded = append(expanded, words[1:]...)
	return expanded, true
}

// Lookup returns a copy of the expansion of name
func (t *Table) Lookup(name string) ([]string, bool) {
	expansion, ok := t.entries[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(expansion), true
}

// Len returns the number of aliases
func (t *Table) Len() int {
	return len(t.entries)
}

// Names returns all alias names in lexicographic order
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All iterates over the aliases in lexicographic order of their names
func (t *Table) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, name := range t.Names() {
			if !yield(name, slices.Clone(t.entries[name])) {
				return
			}
		}
	}
}

// Lines renders the table as catalog lines that Load accepts
func (t *Table) Lines() []string {
	lines := make([]string, 0, len(t.entries))
	for name, expansion := range t.All() {
		lines = append(lines, tokenizer.Join(append([]string{name}, expansion...)))
	}
	return lines
}

// Load applies a catalog of alias definitions. Every line is tokenized and
// each resulting command is passed to Set, so "p print" defines p and a bare
// "p" removes it. Loading stops at the first bad line.
func (t *Table) Load(lines []string) error {
	tok := tokenizer.New(tokenizer.HandlerFunc(t.Set))
	for i, line := range lines {
		if err := tok.Evaluate(line); err != nil {
			return mdwerror.Wrap(err, "invalid alias definition").
				WithOperation("alias.Load").
				WithDetail("line", i+1).
				WithDetail("text", line)
		}
	}
	t.logger.Debug("Alias catalog loaded", log.Fields{
		"lines":   len(lines),
		"aliases": len(t.entries),
	})
	return nil
}
