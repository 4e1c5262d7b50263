// File: cursor.go
// Title: Tokenizer Input Cursor
// Description: Position tracking for the tokenizer. The cursor knows the
//              absolute byte offset, the current line and where that line
//              starts, so errors can be reported as line and column.
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

package tokenizer

// Cursor is a read position in a tokenizer input buffer
type Cursor struct {
	input     string
	pos       int // Byte offset of the current character
	line      int // Current line number (1-based)
	lineStart int // Byte offset of the first character of the current line
	good      bool
}

func newCursor(input string) Cursor {
	return Cursor{
		input: input,
		line:  1,
		good:  true,
	}
}

// Position returns the absolute byte offset into the input
func (c Cursor) Position() int {
	return c.pos
}

// Line returns the current line number (1-based)
func (c Cursor) Line() int {
	return c.line
}

// Offset returns the column of the cursor within the current line (1-based)
func (c Cursor) Offset() int {
	return c.pos - c.lineStart + 1
}

// Good reports whether the last evaluation finished without error
func (c Cursor) Good() bool {
	return c.good
}

func (c *Cursor) atEnd() bool {
	return c.pos >= len(c.input)
}

// current returns the character under the cursor, or 0 at end of input
func (c *Cursor) current() byte {
	if c.atEnd() {
		return 0
	}
	return c.input[c.pos]
}

// peek returns the character after the current one, or 0
func (c *Cursor) peek() byte {
	if c.pos+1 >= len(c.input) {
		return 0
	}
	return c.input[c.pos+1]
}

// hasNext reports whether a character follows the current one
func (c *Cursor) hasNext() bool {
	return c.pos+1 < len(c.input)
}

// advance moves past the current character and keeps line tracking current
func (c *Cursor) advance() {
	if c.atEnd() {
		return
	}
	if c.input[c.pos] == '\n' {
		c.line++
		c.lineStart = c.pos + 1
	}
	c.pos++
}
