// File: lexer/tokenize.go
package lexer

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Tokenize lexes the whole source. Errors do not stop it; they are
// collected alongside the tokens.
func Tokenize(r io.Reader) ([]Token, []*LexError) {
	return Collect(NewLexer(r))
}

// TokenizeLayout lexes the whole source through Layout.
func TokenizeLayout(r io.Reader, wrap bool) ([]Token, []*LexError) {
	ly := NewLayout(NewLexer(r))
	ly.SetWrapProgram(wrap)
	return Collect(ly)
}

// TokenizeFile lexes a source file, optionally through Layout.
func TokenizeFile(filePath string, layout, wrap bool) ([]Token, []*LexError, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", filePath, err)
	}
	defer f.Close()

	if layout {
		tokens, errs := TokenizeLayout(f, wrap)
		return tokens, errs, nil
	}
	tokens, errs := Tokenize(f)
	return tokens, errs, nil
}

// Render joins the tokens with single spaces, e.g. `( foo "bar" )`.
func Render(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}

// Collect drains src. Errors do not stop it; a non-lexer error is
// recorded as a SourceFailure.
func Collect(src TokenSource) ([]Token, []*LexError) {
	var tokens []Token
	var errs []*LexError
	for tok, err := range drain(src) {
		if err != nil {
			if lexErr, ok := err.(*LexError); ok {
				errs = append(errs, lexErr)
				continue
			}
			errs = append(errs, newError(SourceFailure, "", tok.Pos, err))
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens, errs
}

// SliceSource replays an already collected token stream.
type SliceSource struct {
	tokens []Token
	next   int
}

// NewSliceSource creates a new SliceSource over tokens
func NewSliceSource(tokens []Token) *SliceSource {
	return &SliceSource{tokens: tokens}
}

func (s *SliceSource) Next() (Token, error) {
	if s.next >= len(s.tokens) {
		return Token{}, io.EOF
	}
	tok := s.tokens[s.next]
	s.next++
	return tok, nil
}
