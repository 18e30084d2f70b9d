// File: lexer/layout.go
package lexer

import (
	"io"
	"iter"
	"log/slog"
)

type layoutState int

const (
	accumulating layoutState = iota
	emitting
)

// Layout rewrites the indentation markers of a token stream into explicit
// delimiters, so consumers only ever see parenthesized expressions.
//
// Tokens are grouped per physical line. A line with two or more tokens that
// does not already start with "(" is wrapped in a synthetic pair. A line
// followed by an Indent opens a block that holds the line itself and every
// nested line; a Dedent(n) closes n blocks. Blocks still open at the end of
// input are closed there.
type Layout struct {
	src    TokenSource
	state  layoutState
	line   []Token
	queue  []Token
	head   int
	open   int // blocks opened by Indent and not yet closed
	wrap   bool
	begun  bool
	done   bool
	last   Position
	logger *slog.Logger
}

// NewLayout creates a new Layout reading from src
func NewLayout(src TokenSource) *Layout {
	return &Layout{src: src, logger: slog.Default()}
}

// SetWrapProgram makes the implicit outermost group explicit: the whole
// stream is enclosed in one extra pair of delimiters.
func (ly *Layout) SetWrapProgram(wrap bool) {
	ly.wrap = wrap
}

// SetLogger sets the logger used for block debug output. It defaults
// to slog.Default().
func (ly *Layout) SetLogger(logger *slog.Logger) {
	ly.logger = logger
}

// Next returns the next token of the delimited stream. Errors from the
// underlying source are passed through as soon as they are read; the
// tokens of the line being accumulated are kept.
func (ly *Layout) Next() (Token, error) {
	for {
		if ly.state == emitting {
			if ly.head < len(ly.queue) {
				tok := ly.queue[ly.head]
				ly.head++
				return tok, nil
			}
			ly.queue = ly.queue[:0]
			ly.head = 0
			ly.state = accumulating
		}

		if ly.done {
			return Token{}, io.EOF
		}

		if err := ly.accumulate(); err != nil {
			return Token{}, err
		}
	}
}

// All ranges over the remaining tokens.
func (ly *Layout) All() iter.Seq2[Token, error] {
	return drain(ly)
}

// accumulate buffers tokens until a structural marker or the end of input
// finalizes the line into the queue.
func (ly *Layout) accumulate() error {
	for {
		tok, err := ly.src.Next()
		if err == io.EOF {
			ly.finishLine(Token{}, true)
			return nil
		}
		if err != nil {
			return err
		}
		ly.last = tok.Pos

		if tok.Type.IsStructural() {
			ly.finishLine(tok, false)
			return nil
		}
		ly.line = append(ly.line, tok)
	}
}

func (ly *Layout) finishLine(marker Token, eof bool) {
	if ly.wrap && !ly.begun {
		ly.push(TokenOpen, ly.firstPos(marker))
	}
	ly.begun = true

	switch {
	case !eof && marker.Type == TokenIndent:
		ly.push(TokenOpen, ly.firstPos(marker))
		ly.queue = append(ly.queue, ly.line...)
		ly.open++
		ly.debug("block opened", "line", marker.Pos.Line, "open", ly.open)

	default:
		ly.emitLine()
		if !eof && marker.Type == TokenDedent {
			ly.closeBlocks(marker.Count, marker.Pos)
		}
	}

	if eof {
		ly.closeBlocks(ly.open, ly.last)
		if ly.wrap {
			ly.push(TokenClose, ly.last)
		}
		ly.done = true
	}

	ly.line = ly.line[:0]
	ly.state = emitting
}

// emitLine queues the buffered line, wrapping it when it holds more than
// one bare token.
func (ly *Layout) emitLine() {
	if len(ly.line) == 0 {
		return
	}
	if len(ly.line) > 1 && ly.line[0].Type != TokenOpen {
		ly.push(TokenOpen, ly.line[0].Pos)
		ly.queue = append(ly.queue, ly.line...)
		ly.push(TokenClose, ly.line[len(ly.line)-1].Pos)
		return
	}
	ly.queue = append(ly.queue, ly.line...)
}

func (ly *Layout) closeBlocks(n int, pos Position) {
	n = min(n, ly.open)
	for range n {
		ly.push(TokenClose, pos)
	}
	ly.open -= n
	if n > 0 {
		ly.debug("blocks closed", "line", pos.Line, "count", n, "open", ly.open)
	}
}

func (ly *Layout) push(typ TokenType, pos Position) {
	lit := "("
	if typ == TokenClose {
		lit = ")"
	}
	ly.queue = append(ly.queue, Token{Type: typ, Literal: lit, Pos: pos})
}

func (ly *Layout) firstPos(marker Token) Position {
	if len(ly.line) > 0 {
		return ly.line[0].Pos
	}
	if marker.Type == 0 {
		return ly.last
	}
	return marker.Pos
}

func (ly *Layout) debug(msg string, args ...any) {
	if ly.logger != nil {
		ly.logger.Debug(msg, args...)
	}
}
