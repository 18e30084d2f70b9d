package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/leolimasa/leolang/lang/lexer"
)

// TokenRecord is the wire shape of a token.
type TokenRecord struct {
	Type    string   `json:"type"`
	Literal string   `json:"literal,omitempty"`
	Int     *int64   `json:"int,omitempty"`
	Float   *float64 `json:"float,omitempty"`
	Count   int      `json:"count,omitempty"`
	Line    int      `json:"line"`
	Column  int      `json:"column"`
}

// ErrorRecord is the wire shape of a lexer error.
type ErrorRecord struct {
	Kind    string `json:"kind"`
	Text    string `json:"text,omitempty"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Layout  bool   `json:"layout"`
	Message string `json:"message"`
}

// ToRecord converts a token to its wire shape
func ToRecord(tok lexer.Token) TokenRecord {
	rec := TokenRecord{
		Type:    tok.Type.String(),
		Literal: tok.Literal,
		Line:    tok.Pos.Line,
		Column:  tok.Pos.Column,
	}
	switch tok.Type {
	case lexer.TokenInt:
		n := tok.Int
		rec.Int = &n
	case lexer.TokenFloat:
		f := tok.Float
		rec.Float = &f
	case lexer.TokenIndent, lexer.TokenDedent:
		rec.Count = tok.Count
	}
	return rec
}

// FromRecord converts a wire record back to a token
func FromRecord(rec TokenRecord) (lexer.Token, error) {
	typ, ok := lexer.ParseTokenType(rec.Type)
	if !ok {
		return lexer.Token{}, fmt.Errorf("unknown token type %q", rec.Type)
	}
	tok := lexer.Token{
		Type:    typ,
		Literal: rec.Literal,
		Count:   rec.Count,
		Pos:     lexer.Position{Line: rec.Line, Column: rec.Column},
	}
	if rec.Int != nil {
		tok.Int = *rec.Int
	}
	if rec.Float != nil {
		tok.Float = *rec.Float
	}
	return tok, nil
}

// ToRecords converts a token stream to wire records
func ToRecords(tokens []lexer.Token) []TokenRecord {
	records := make([]TokenRecord, len(tokens))
	for i, tok := range tokens {
		records[i] = ToRecord(tok)
	}
	return records
}

// ErrorRecords converts lexer errors to wire records
func ErrorRecords(errs []*lexer.LexError) []ErrorRecord {
	records := make([]ErrorRecord, len(errs))
	for i, err := range errs {
		records[i] = ErrorRecord{
			Kind:    err.Kind.String(),
			Text:    err.Text,
			Line:    err.Pos.Line,
			Column:  err.Pos.Column,
			Layout:  err.Kind.IsLayout(),
			Message: err.Error(),
		}
	}
	return records
}

// JSONSerializer encodes a token stream as a JSON array of records.
type JSONSerializer struct{}

func (s *JSONSerializer) Decode(input []byte) ([]lexer.Token, error) {
	var records []TokenRecord
	if err := json.Unmarshal(input, &records); err != nil {
		return nil, fmt.Errorf("decoding tokens: %w", err)
	}
	tokens := make([]lexer.Token, 0, len(records))
	for _, rec := range records {
		tok, err := FromRecord(rec)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func (s *JSONSerializer) Encode(tokens []lexer.Token, output io.Writer) error {
	return json.NewEncoder(output).Encode(ToRecords(tokens))
}

// TextSerializer writes the stream the way it reads as a program:
// `( my-fun = fn ( a b ) )`.
type TextSerializer struct{}

func (s *TextSerializer) Decode(input []byte) ([]lexer.Token, error) {
	return nil, fmt.Errorf("%w: text", ErrDecodeUnsupported)
}

func (s *TextSerializer) Encode(tokens []lexer.Token, output io.Writer) error {
	_, err := io.WriteString(output, lexer.Render(tokens)+"\n")
	return err
}

// LinesSerializer writes one token per line with its position and type.
type LinesSerializer struct{}

func (s *LinesSerializer) Decode(input []byte) ([]lexer.Token, error) {
	return nil, fmt.Errorf("%w: lines", ErrDecodeUnsupported)
}

func (s *LinesSerializer) Encode(tokens []lexer.Token, output io.Writer) error {
	var sb strings.Builder
	for _, tok := range tokens {
		fmt.Fprintf(&sb, "%-7s %-9s %s\n", tok.Pos, tok.Type, tok)
	}
	_, err := io.WriteString(output, sb.String())
	return err
}

func init() {
	Register("json", &JSONSerializer{})
	Register("text", &TextSerializer{})
	Register("lines", &LinesSerializer{})
}
