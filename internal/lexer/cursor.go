package lexer

import "github.com/Manas1820/super-engine/internal/source"

// Cursor is the scan position inside one source buffer: the half-open
// lexeme range [start, current) plus line and column bookkeeping. line is
// 1-based; column counts characters consumed on the current line. Advance
// bumps the column for every character, newlines included; the reset
// rules live in the scan dispatch, not here.
type Cursor struct {
	src     *source.Buffer
	start   uint32
	current uint32
	line    uint32
	column  uint32
}

// NewCursor creates a cursor at the top of src, line 1, column 0.
func NewCursor(src *source.Buffer) Cursor {
	return Cursor{src: src, line: 1}
}

// AtEnd reports whether every character has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.current >= c.src.Len()
}

// Advance consumes and returns the next character, moving the cursor one
// column forward. At the end of the buffer it returns 0.
func (c *Cursor) Advance() rune {
	if c.AtEnd() {
		return 0
	}
	ch := c.src.At(c.current)
	c.current++
	c.column++
	return ch
}

// Match consumes the next character only if it equals want.
func (c *Cursor) Match(want rune) bool {
	if c.AtEnd() || c.src.At(c.current) != want {
		return false
	}
	c.current++
	c.column++
	return true
}

// Peek reads the next character without consuming it, 0 at the end.
func (c *Cursor) Peek() rune {
	if c.AtEnd() {
		return 0
	}
	return c.src.At(c.current)
}

// PeekNext reads one character past Peek, 0 if the buffer ends first.
func (c *Cursor) PeekNext() rune {
	if c.current+1 >= c.src.Len() {
		return 0
	}
	return c.src.At(c.current + 1)
}

// BeginLexeme marks the current position as the start of the next lexeme.
func (c *Cursor) BeginLexeme() {
	c.start = c.current
}

// Lexeme returns the source text consumed since BeginLexeme.
func (c *Cursor) Lexeme() string {
	return c.src.Slice(c.start, c.current)
}
