// File: lexer/errors.go
package lexer

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a LexError
type ErrorKind int

const (
	InvalidIntLiteral ErrorKind = iota + 1
	InvalidFloatLiteral
	UnterminatedString
	InconsistentDedent
	SourceFailure
)

var (
	ErrInvalidIntLiteral   = errors.New("invalid integer literal")
	ErrInvalidFloatLiteral = errors.New("invalid float literal")
	ErrUnterminatedString  = errors.New("unterminated string literal")
	ErrInconsistentDedent  = errors.New("dedent does not match any outer indentation level")
	ErrSourceFailure       = errors.New("reading source")

	// ErrLayout matches every error that describes malformed program
	// structure rather than a bad literal.
	ErrLayout = errors.New("layout error")
)

var kindSentinels = map[ErrorKind]error{
	InvalidIntLiteral:   ErrInvalidIntLiteral,
	InvalidFloatLiteral: ErrInvalidFloatLiteral,
	UnterminatedString:  ErrUnterminatedString,
	InconsistentDedent:  ErrInconsistentDedent,
	SourceFailure:       ErrSourceFailure,
}

func (k ErrorKind) String() string {
	if err, ok := kindSentinels[k]; ok {
		return err.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// IsLayout reports whether the kind belongs to the layout category.
func (k ErrorKind) IsLayout() bool {
	return k == UnterminatedString || k == InconsistentDedent
}

// LexError is returned in place of a token. It affects only that token;
// the lexer stays usable afterwards.
type LexError struct {
	Kind ErrorKind
	Text string // offending source text, if any
	Pos  Position
	Err  error // underlying strconv or io error
}

func (e *LexError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Pos, e.Kind)
	if e.Text != "" {
		msg += fmt.Sprintf(" %q", e.Text)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LexError) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels and ErrLayout.
func (e *LexError) Is(target error) bool {
	if target == ErrLayout {
		return e.Kind.IsLayout()
	}
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

func newError(kind ErrorKind, text string, pos Position, err error) *LexError {
	return &LexError{Kind: kind, Text: text, Pos: pos, Err: err}
}
