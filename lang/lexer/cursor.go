// File: lexer/cursor.go
package lexer

import (
	"bufio"
	"io"
)

// Cursor reads runes from a source and tracks their position. It can
// re-deliver the last rune once, which gives the lexer one rune of
// lookahead on sources that cannot seek.
type Cursor struct {
	src    io.RuneReader
	line   int
	column int
	last   rune
	pos    Position // position of last
	replay bool
	eof    bool
	err    error
}

// NewCursor creates a new Cursor
func NewCursor(r io.Reader) *Cursor {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &Cursor{
		src:  rr,
		line: 1,
		pos:  Position{Line: 1},
	}
}

// Advance returns the next rune, or false once the source is exhausted.
// A read failure also ends the input; it is kept in Err.
func (c *Cursor) Advance() (rune, bool) {
	if c.eof {
		return 0, false
	}
	if c.replay {
		c.replay = false
		return c.last, true
	}

	r, _, err := c.src.ReadRune()
	if err != nil {
		if err != io.EOF {
			c.err = err
		}
		c.eof = true
		c.pos = Position{Line: c.line, Column: c.column}
		return 0, false
	}

	c.column++
	c.last = r
	c.pos = Position{Line: c.line, Column: c.column}
	if r == '\n' {
		c.line++
		c.column = 0
	}
	return r, true
}

// Unread makes the next Advance return the last rune again.
func (c *Cursor) Unread() {
	if c.eof {
		return
	}
	c.replay = true
}

// Pos returns the position of the last rune returned by Advance. At the
// end of input it is the position just past the last rune.
func (c *Cursor) Pos() Position {
	return c.pos
}

// Err returns the read error that ended the input, if any.
func (c *Cursor) Err() error {
	return c.err
}
