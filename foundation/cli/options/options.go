// File: options.go
// Title: Command Option Parser
// Description: Classifies the words of one command as options or positional
//              arguments against a declarative option table. Long options
//              may be abbreviated, short options may be clustered, and every
//              resolved option is moved in front of the positional words so
//              the positional arguments end up contiguous at the end.
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

// Package options implements abbreviation-aware option scanning for
// interpreter commands.
package options

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/SoarGroup/soarcli/foundation/cli/prefix"
	mdwerror "github.com/SoarGroup/soarcli/foundation/core/error"
)

// Arity says whether an option takes an argument
type Arity int

const (
	NoArgument Arity = iota
	RequiredArgument
	OptionalArgument
)

// String returns the arity name
func (a Arity) String() string {
	switch a {
	case NoArgument:
		return "none"
	case RequiredArgument:
		return "required"
	case OptionalArgument:
		return "optional"
	default:
		return "unknown"
	}
}

// Spec describes one option. Short is 0 for long-only options and Long is ""
// for short-only ones. Several specs may share a Short code to give one
// option more than one long spelling. A zero Spec ends a table early.
type Spec struct {
	Short rune
	Long  string
	Arity Arity
}

// EndOfOptions is the Cursor.Option value once no options are left
const EndOfOptions rune = -1

// Cursor is the state of one scan. The zero Cursor starts a scan in which
// words[0] is the command name and is never examined.
type Cursor struct {
	Index       int    // Index of the word examined last
	Option      rune   // Short code of the last resolved option, or EndOfOptions
	Spec        Spec   // Table entry of the last resolved option
	Argument    string // Argument of the last resolved option
	HasArgument bool
	NonOptions  int // Positional words seen so far
}

// Done reports whether the scan has reached the end of the options
func (c Cursor) Done() bool {
	return c.Option == EndOfOptions
}

// CheckArgCount checks the number of positional words after a scan. A
// negative max means no upper limit.
func (c Cursor) CheckArgCount(min, max int) error {
	if c.NonOptions < min {
		return mdwerror.New("too few arguments").
			WithCode(mdwerror.CodeTooFewArguments).
			WithOperation("options.CheckArgCount").
			WithDetail("min", min).
			WithDetail("count", c.NonOptions)
	}
	if max >= 0 && c.NonOptions > max {
		return mdwerror.New("too many arguments").
			WithCode(mdwerror.CodeTooManyArguments).
			WithOperation("options.CheckArgCount").
			WithDetail("max", max).
			WithDetail("count", c.NonOptions)
	}
	return nil
}

// Args returns the positional words of a finished scan
func Args(cur Cursor, words []string) []string {
	n := min(cur.NonOptions, len(words))
	return slices.Clone(words[len(words)-n:])
}

// Next resolves the next option in words. It returns the advanced cursor and
// the reordered words to pass to the following call; the input slice is not
// modified. When no options are left the returned cursor is Done.
//
// Words shorter than two characters or not starting with '-' are positional
// and are skipped. A lone "--" is dropped and makes every later word
// positional. "--name" is a long option and may be abbreviated to any
// unambiguous prefix. "-x" is a short option; "-xyz" is split into "-x"
// followed by a new word "-yz".
func Next(cur Cursor, words []string, table []Spec) (Cursor, []string, error) {
	words = slices.Clone(words)
	cur.Option = EndOfOptions
	cur.Spec = Spec{}
	cur.Argument = ""
	cur.HasArgument = false

	for {
		cur.Index++
		if cur.Index >= len(words) {
			cur.Index = len(words)
			return cur, words, nil
		}

		word := words[cur.Index]
		if len(word) < 2 || word[0] != '-' {
			cur.NonOptions++
			continue
		}

		if word == "--" {
			words = slices.Delete(words, cur.Index, cur.Index+1)
			cur.NonOptions += len(words) - cur.Index
			cur.Index = len(words)
			return cur, words, nil
		}

		var spec Spec
		var err error
		if word[1] == '-' {
			spec, err = resolveLong(word, table)
		} else {
			spec, words, err = resolveShort(word, words, cur.Index, table)
		}
		if err != nil {
			return cur, words, err
		}

		moveBack(words, cur.Index, cur.Index-cur.NonOptions)
		cur.Option = spec.Short
		cur.Spec = spec
		return takeArgument(cur, words)
	}
}

func resolveLong(word string, table []Spec) (Spec, error) {
	text := word[2:]

	var names []string
	for _, spec := range entries(table) {
		if spec.Long != "" {
			names = append(names, spec.Long)
		}
	}

	match, candidates, ok := prefix.Resolve(names, text)
	if !ok {
		if prefix.Ambiguous(candidates) {
			return Spec{}, mdwerror.New("ambiguous option, possibilities: --"+strings.Join(candidates, " --")).
				WithCode(mdwerror.CodeAmbiguousOption).
				WithOperation("options.Next").
				WithDetail("option", word).
				WithDetail("candidates", candidates)
		}
		return Spec{}, unknownOption(word)
	}

	for _, spec := range entries(table) {
		if spec.Long == match {
			return spec, nil
		}
	}
	return Spec{}, unknownOption(word)
}

func resolveShort(word string, words []string, index int, table []Spec) (Spec, []string, error) {
	code, size := utf8.DecodeRuneInString(word[1:])

	for _, spec := range entries(table) {
		if spec.Short != code {
			continue
		}
		if rest := word[1+size:]; rest != "" {
			words[index] = word[:1+size]
			words = slices.Insert(words, index+1, "-"+rest)
		}
		return spec, words, nil
	}
	return Spec{}, words, unknownOption(word[:1+size])
}

func takeArgument(cur Cursor, words []string) (Cursor, []string, error) {
	next := cur.Index + 1

	switch cur.Spec.Arity {
	case RequiredArgument:
		if next >= len(words) {
			return cur, words, mdwerror.New("missing argument for "+optionName(cur.Spec)).
				WithCode(mdwerror.CodeMissingArgument).
				WithOperation("options.Next")
		}
	case OptionalArgument:
		if next >= len(words) || strings.HasPrefix(words[next], "-") {
			return cur, words, nil
		}
	default:
		return cur, words, nil
	}

	cur.Argument = words[next]
	cur.HasArgument = true
	moveBack(words, next, next-cur.NonOptions)
	cur.Index = next
	return cur, words, nil
}

// entries returns the table up to its terminating zero entry
func entries(table []Spec) []Spec {
	for i, spec := range table {
		if spec == (Spec{}) {
			return table[:i]
		}
	}
	return table
}

// moveBack moves words[from] to position to, shifting the words in between
// one place towards the end
func moveBack(words []string, from, to int) {
	if from <= to {
		return
	}
	word := words[from]
	copy(words[to+1:from+1], words[to:from])
	words[to] = word
}

func optionName(spec Spec) string {
	if spec.Long != "" {
		return "--" + spec.Long
	}
	return "-" + string(spec.Short)
}

func unknownOption(text string) error {
	return mdwerror.New("no such option: "+text).
		WithCode(mdwerror.CodeUnknownOption).
		WithOperation("options.Next").
		WithDetail("option", text)
}
