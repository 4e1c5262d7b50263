// File: tokenizer.go
// Title: Command Line Tokenizer
// Description: Splits a text buffer into commands and words following a
//              subset of the Tcl quoting rules: double quotes, nested braces,
//              backslash escapes and comments. Commands are pushed to a
//              Handler one at a time, in input order.
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

// Package tokenizer splits interpreter input into commands and words.
package tokenizer

import (
	"strings"

	mdwerror "github.com/SoarGroup/soarcli/foundation/core/error"
)

// Handler receives each command found in the input. Returning an error stops
// the evaluation; the rest of the buffer is not processed.
type Handler interface {
	HandleCommand(words []string) error
}

// HandlerFunc adapts a function to the Handler interface
type HandlerFunc func(words []string) error

// HandleCommand calls f(words)
func (f HandlerFunc) HandleCommand(words []string) error {
	return f(words)
}

// Tokenizer turns text into commands. A Tokenizer is not safe for concurrent
// use and Evaluate must not be re-entered from its own handler.
type Tokenizer struct {
	handler     Handler
	cur         Cursor
	startLine   int
	startOffset int
	lastErr     error
}

// New creates a tokenizer that delivers commands to h
func New(h Handler) *Tokenizer {
	return &Tokenizer{
		handler: h,
		cur:     newCursor(""),
	}
}

// SetHandler replaces the command handler
func (t *Tokenizer) SetHandler(h Handler) {
	t.handler = h
}

// Evaluate tokenizes input and calls the handler for every non-empty
// command. It stops at the first lexical error or handler error and returns
// it.
func (t *Tokenizer) Evaluate(input string) error {
	t.cur = newCursor(input)
	t.startLine = 0
	t.startOffset = 0
	t.lastErr = nil

	for {
		t.skipWhitespaceAndComments()
		if t.cur.atEnd() {
			return nil
		}

		t.startLine = t.cur.line
		t.startOffset = t.cur.Offset()
		words, err := t.parseCommand()
		if err != nil {
			return t.fail(err)
		}
		if len(words) == 0 || t.handler == nil {
			continue
		}

		if err := t.handler.HandleCommand(words); err != nil {
			return t.fail(err)
		}
	}
}

// LastError returns the message of the error that stopped the last
// evaluation, or "" if it succeeded
func (t *Tokenizer) LastError() string {
	if t.lastErr == nil {
		return ""
	}
	return t.lastErr.Error()
}

// Err returns the error that stopped the last evaluation
func (t *Tokenizer) Err() error {
	return t.lastErr
}

// CurrentLine returns the line the cursor is on (1-based)
func (t *Tokenizer) CurrentLine() int {
	return t.cur.Line()
}

// CommandStartLine returns the line the last command started on
func (t *Tokenizer) CommandStartLine() int {
	return t.startLine
}

// CommandStartOffset returns the column the last command started at (1-based)
func (t *Tokenizer) CommandStartOffset() int {
	return t.startOffset
}

// Offset returns the column of the cursor within the current line (1-based)
func (t *Tokenizer) Offset() int {
	return t.cur.Offset()
}

// Cursor returns a copy of the current cursor
func (t *Tokenizer) Cursor() Cursor {
	return t.cur
}

func (t *Tokenizer) fail(err error) error {
	t.cur.good = false
	t.lastErr = err
	return err
}

func (t *Tokenizer) unexpectedEOF() error {
	return mdwerror.New("unexpected end of input").
		WithCode(mdwerror.CodeUnexpectedEOF).
		WithOperation("tokenizer.Evaluate").
		WithDetail("line", t.cur.Line()).
		WithDetail("offset", t.cur.Offset())
}

// skipWhitespaceAndComments skips everything that can sit between commands:
// whitespace, empty commands, comments and line continuations
func (t *Tokenizer) skipWhitespaceAndComments() {
	for !t.cur.atEnd() {
		ch := t.cur.current()
		switch {
		case isSpace(ch) || ch == ';':
			t.cur.advance()
		case ch == '#':
			t.skipComment()
		case ch == '\\' && t.cur.peek() == '\n':
			t.cur.advance()
			t.cur.advance()
		default:
			return
		}
	}
}

// skipComment moves to the end of the line, leaving the newline in place
func (t *Tokenizer) skipComment() {
	for !t.cur.atEnd() && t.cur.current() != '\n' {
		t.cur.advance()
	}
}

// skipWordSeparators skips whitespace inside a command
func (t *Tokenizer) skipWordSeparators() {
	for !t.cur.atEnd() {
		ch := t.cur.current()
		switch {
		case isHorizontalSpace(ch):
			t.cur.advance()
		case ch == '\\' && t.cur.peek() == '\n':
			t.cur.advance()
			t.cur.advance()
		default:
			return
		}
	}
}

func (t *Tokenizer) parseCommand() ([]string, error) {
	var words []string
	for {
		t.skipWordSeparators()
		if t.cur.atEnd() {
			return words, nil
		}

		switch t.cur.current() {
		case '\n', ';':
			t.cur.advance()
			return words, nil
		case '#':
			t.skipComment()
			continue
		}

		word, err := t.parseWord()
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}
}

func (t *Tokenizer) parseWord() (string, error) {
	switch t.cur.current() {
	case '"':
		return t.parseQuoted()
	case '{':
		return t.parseBraces()
	default:
		return t.parseBare()
	}
}

// parseQuoted reads a double-quoted word. Escapes are decoded; newlines,
// semicolons and hashes are literal.
func (t *Tokenizer) parseQuoted() (string, error) {
	t.cur.advance()

	var b strings.Builder
	for {
		if t.cur.atEnd() {
			return "", t.unexpectedEOF()
		}

		switch ch := t.cur.current(); ch {
		case '"':
			t.cur.advance()
			return b.String(), nil
		case '\\':
			decoded, _, err := t.parseEscape()
			if err != nil {
				return "", err
			}
			b.WriteByte(decoded)
		default:
			b.WriteByte(ch)
			t.cur.advance()
		}
	}
}

// parseBraces reads a brace-quoted word without substitution, except that a
// backslash-newline and the whitespace after it collapse into one space.
// Pipes toggle a literal mode in which '#' does not start a comment. A '#'
// starts a comment only where a word could start; comment text is kept
// verbatim, but braces and pipes in it are not counted.
func (t *Tokenizer) parseBraces() (string, error) {
	t.cur.advance()

	var b strings.Builder
	depth := 1
	pipe := false
	wordStart := true
	for {
		if t.cur.atEnd() {
			return "", t.unexpectedEOF()
		}

		ch := t.cur.current()
		switch {
		case ch == '\\':
			if !t.cur.hasNext() {
				t.cur.advance()
				return "", t.unexpectedEOF()
			}
			if t.cur.peek() == '\n' {
				t.cur.advance()
				t.cur.advance()
				t.skipHorizontalSpace()
				b.WriteByte(' ')
				wordStart = true
				continue
			}
			b.WriteByte('\\')
			t.cur.advance()
			b.WriteByte(t.cur.current())
			t.cur.advance()
			wordStart = false
		case ch == '|':
			pipe = !pipe
			b.WriteByte(ch)
			t.cur.advance()
			wordStart = false
		case ch == '#' && !pipe && wordStart:
			for !t.cur.atEnd() && t.cur.current() != '\n' {
				b.WriteByte(t.cur.current())
				t.cur.advance()
			}
		case ch == '{':
			depth++
			b.WriteByte(ch)
			t.cur.advance()
			wordStart = true
		case ch == '}':
			depth--
			t.cur.advance()
			if depth == 0 {
				return b.String(), nil
			}
			b.WriteByte(ch)
			wordStart = true
		default:
			b.WriteByte(ch)
			t.cur.advance()
			wordStart = separatesBraceWords(ch)
		}
	}
}

// separatesBraceWords reports whether ch ends a word inside a brace word
func separatesBraceWords(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f', ';':
		return true
	}
	return false
}

// parseBare reads an unquoted word. It ends before whitespace, ';', '#' or
// a line continuation.
func (t *Tokenizer) parseBare() (string, error) {
	var b strings.Builder
	for !t.cur.atEnd() {
		ch := t.cur.current()
		if isSpace(ch) || ch == ';' || ch == '#' {
			break
		}
		if ch == '\\' {
			if t.cur.peek() == '\n' {
				break
			}
			decoded, _, err := t.parseEscape()
			if err != nil {
				return "", err
			}
			b.WriteByte(decoded)
			continue
		}
		b.WriteByte(ch)
		t.cur.advance()
	}
	return b.String(), nil
}

// parseEscape decodes the backslash sequence under the cursor. continuation
// is true for a backslash-newline, which also swallows the horizontal
// whitespace after it and decodes to a single space.
func (t *Tokenizer) parseEscape() (decoded byte, continuation bool, err error) {
	t.cur.advance()
	if t.cur.atEnd() {
		return 0, false, t.unexpectedEOF()
	}

	ch := t.cur.current()
	t.cur.advance()

	switch ch {
	case 'a':
		return '\a', false, nil
	case 'b':
		return '\b', false, nil
	case 'f':
		return '\f', false, nil
	case 'n':
		return '\n', false, nil
	case 'r':
		return '\r', false, nil
	case 't':
		return '\t', false, nil
	case 'v':
		return '\v', false, nil
	case '\n':
		t.skipHorizontalSpace()
		return ' ', true, nil
	default:
		return ch, false, nil
	}
}

func (t *Tokenizer) skipHorizontalSpace() {
	for !t.cur.atEnd() && isHorizontalSpace(t.cur.current()) {
		t.cur.advance()
	}
}

func isSpace(ch byte) bool {
	return ch == '\n' || isHorizontalSpace(ch)
}

func isHorizontalSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}
