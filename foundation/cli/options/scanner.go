// File: scanner.go
// Title: Option Scanner
// Description: Loop-friendly wrapper around Next in the style of
//              bufio.Scanner, used by command handlers.
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

package options

// Scanner walks through the options of one command.
//
//	s := options.NewScanner(words, table)
//	for s.Next() {
//		switch s.Option() {
//		case 'f':
//			full = true
//		}
//	}
//	if err := s.Err(); err != nil {
//		return err
//	}
//	args := s.Args()
type Scanner struct {
	words []string
	table []Spec
	cur   Cursor
	err   error
	done  bool
}

// NewScanner creates a scanner over words, where words[0] is the command
// name
func NewScanner(words []string, table []Spec) *Scanner {
	return &Scanner{
		words: words,
		table: table,
	}
}

// Next advances to the next option. It returns false at the end of the
// options or on error.
func (s *Scanner) Next() bool {
	if s.done {
		return false
	}

	cur, words, err := Next(s.cur, s.words, s.table)
	s.cur = cur
	s.words = words
	if err != nil {
		s.err = err
		s.done = true
		return false
	}
	if cur.Done() {
		s.done = true
		return false
	}
	return true
}

// Option returns the short code of the current option. Long-only options
// report 0; use Long to tell them apart.
func (s *Scanner) Option() rune {
	return s.cur.Option
}

// Long returns the long name of the current option
func (s *Scanner) Long() string {
	return s.cur.Spec.Long
}

// Spec returns the table entry of the current option
func (s *Scanner) Spec() Spec {
	return s.cur.Spec
}

// Argument returns the argument of the current option
func (s *Scanner) Argument() string {
	return s.cur.Argument
}

// HasArgument reports whether the current option was given an argument
func (s *Scanner) HasArgument() bool {
	return s.cur.HasArgument
}

// Cursor returns the scan state
func (s *Scanner) Cursor() Cursor {
	return s.cur
}

// Err returns the error that stopped the scan
func (s *Scanner) Err() error {
	return s.err
}

// LastError returns the message of the error that stopped the scan
func (s *Scanner) LastError() string {
	if s.err == nil {
		return ""
	}
	return s.err.Error()
}

// Args returns the positional words. Call it after Next returned false.
func (s *Scanner) Args() []string {
	return Args(s.cur, s.words)
}

// Words returns the reordered words
func (s *Scanner) Words() []string {
	return s.words
}

// CheckArgCount checks the number of positional words. A negative max means
// no upper limit.
func (s *Scanner) CheckArgCount(min, max int) error {
	if err := s.cur.CheckArgCount(min, max); err != nil {
		s.err = err
		return err
	}
	return nil
}
