// File: quote.go
// Title: Word Quoting and Convenience Entry Points
// Description: Helpers to render words back into command text that
//              tokenizes to the same words, and to collect all commands of a
//              buffer at once.
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

package tokenizer

import (
	"strings"
)

// Quote returns word in a form that tokenizes back to exactly word
func Quote(word string) string {
	if word != "" && !strings.ContainsAny(word, " \t\r\v\f\n;#\"{}\\|") {
		return word
	}

	var b strings.Builder
	b.Grow(len(word) + 2)
	b.WriteByte('"')
	for i := 0; i < len(word); i++ {
		switch ch := word[i]; ch {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(ch)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Join quotes every word and joins them with single spaces
func Join(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = Quote(w)
	}
	return strings.Join(quoted, " ")
}

// Tokenize returns all commands in input
func Tokenize(input string) ([][]string, error) {
	var commands [][]string
	t := New(HandlerFunc(func(words []string) error {
		commands = append(commands, words)
		return nil
	}))
	if err := t.Evaluate(input); err != nil {
		return commands, err
	}
	return commands, nil
}
