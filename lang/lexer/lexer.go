// File: lexer/lexer.go
package lexer

import (
	"io"
	"iter"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

var (
	intPattern   = regexp.MustCompile(`^-?[0-9]+$`)
	floatPattern = regexp.MustCompile(`^[+-]?[0-9]*\.[0-9]+$`)
)

// TokenSource is anything that hands out tokens one at a time and
// returns io.EOF once exhausted. Both Lexer and Layout implement it.
type TokenSource interface {
	Next() (Token, error)
}

// Lexer tokenizes source text. Indentation changes at the start of a line
// come out as Indent/Dedent markers; Layout turns them into delimiters.
type Lexer struct {
	cur       *Cursor
	indent    IndentStack
	operators map[string]struct{}
	pending   []Token
	failed    bool
	logger    *slog.Logger
}

// NewLexer creates a new Lexer
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		cur:       NewCursor(r),
		operators: operatorSet(DefaultOperators),
		logger:    slog.Default(),
	}
}

// SetOperators replaces the operator table.
func (l *Lexer) SetOperators(ops []string) {
	l.operators = operatorSet(ops)
}

// SetLogger sets the logger used for indentation debug output. It
// defaults to slog.Default().
func (l *Lexer) SetLogger(logger *slog.Logger) {
	l.logger = logger
}

// Next returns the next token. A *LexError replaces the token it affects;
// calling Next again continues with the following token. io.EOF marks the
// end of the stream.
func (l *Lexer) Next() (Token, error) {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok, nil
	}

	for {
		ch, ok := l.cur.Advance()
		if !ok {
			return l.finish()
		}

		switch ch {
		case '\n':
			return l.detectIndent(l.cur.Pos())
		case '(':
			return Token{Type: TokenOpen, Literal: "(", Pos: l.cur.Pos()}, nil
		case ')':
			return Token{Type: TokenClose, Literal: ")", Pos: l.cur.Pos()}, nil
		case '"':
			return l.readString()
		case ' ', '\t', '\r':
			continue
		default:
			return l.readWord(ch)
		}
	}
}

// All ranges over the remaining tokens.
func (l *Lexer) All() iter.Seq2[Token, error] {
	return drain(l)
}

// detectIndent measures the line that follows a newline and compares it
// with the indentation stack. Blank lines are skipped entirely.
func (l *Lexer) detectIndent(newline Position) (Token, error) {
	level := 0
	for {
		ch, ok := l.cur.Advance()
		if !ok {
			level = 0
			break
		}
		if ch == '\n' {
			level = 0
			continue
		}
		if ch == ' ' {
			level++
			continue
		}
		if ch == '\t' || ch == '\r' {
			continue
		}
		l.cur.Unread()
		break
	}

	pos := l.cur.Pos()
	depth := l.indent.Depth()

	if level > depth {
		l.indent.Push(level)
		l.debug("indent", "line", pos.Line, "level", level, "depth", depth)
		return Token{Type: TokenIndent, Count: 1, Pos: pos}, nil
	}

	if level < depth {
		popped, exact := l.indent.Collapse(level)
		l.debug("dedent", "line", pos.Line, "level", level, "depth", depth, "levels", popped)
		tok := Token{Type: TokenDedent, Count: popped, Pos: pos}
		if !exact {
			// The dedent still closes the popped levels so the stream stays
			// balanced; it is delivered right after the error.
			l.pending = append(l.pending, tok)
			return Token{}, newError(InconsistentDedent, "", pos, nil)
		}
		return tok, nil
	}

	return Token{Type: TokenLineEnd, Pos: newline}, nil
}

func (l *Lexer) readString() (Token, error) {
	start := l.cur.Pos()
	var sb strings.Builder
	for {
		ch, ok := l.cur.Advance()
		if !ok {
			return Token{}, newError(UnterminatedString, sb.String(), start, nil)
		}
		if ch == '"' {
			return Token{Type: TokenString, Literal: sb.String(), Pos: start}, nil
		}
		sb.WriteRune(ch)
	}
}

// readWord reads an identifier-like run and classifies it. The rune that
// ends the run is left for the next call.
func (l *Lexer) readWord(first rune) (Token, error) {
	start := l.cur.Pos()
	var sb strings.Builder
	sb.WriteRune(first)
	for {
		ch, ok := l.cur.Advance()
		if !ok {
			break
		}
		if isBoundary(ch) {
			l.cur.Unread()
			break
		}
		sb.WriteRune(ch)
	}
	return l.classify(sb.String(), start)
}

func (l *Lexer) classify(text string, pos Position) (Token, error) {
	if _, ok := l.operators[text]; ok {
		return Token{Type: TokenOperator, Literal: text, Pos: pos}, nil
	}

	if intPattern.MatchString(text) {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Token{}, newError(InvalidIntLiteral, text, pos, err)
		}
		return Token{Type: TokenInt, Literal: text, Int: n, Pos: pos}, nil
	}

	if floatPattern.MatchString(text) {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, newError(InvalidFloatLiteral, text, pos, err)
		}
		return Token{Type: TokenFloat, Literal: text, Float: f, Pos: pos}, nil
	}

	return Token{Type: TokenIdent, Literal: text, Pos: pos}, nil
}

// finish runs once the cursor is exhausted: it reports a read failure,
// then closes the levels still open, then ends the stream.
func (l *Lexer) finish() (Token, error) {
	if err := l.cur.Err(); err != nil && !l.failed {
		l.failed = true
		return Token{}, newError(SourceFailure, "", l.cur.Pos(), err)
	}
	if n := l.indent.Reset(); n > 0 {
		l.debug("dedent at end of input", "levels", n)
		return Token{Type: TokenDedent, Count: n, Pos: l.cur.Pos()}, nil
	}
	return Token{}, io.EOF
}

func (l *Lexer) debug(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, args...)
	}
}

func isBoundary(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == ')'
}

func drain(src TokenSource) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := src.Next()
			if err == io.EOF {
				return
			}
			if !yield(tok, err) {
				return
			}
		}
	}
}
