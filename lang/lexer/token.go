// File: lexer/token.go
package lexer

import (
	"fmt"
	"strconv"
)

// Position is a line/column pair. Columns count runes, not bytes.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// TokenType represents the type of a token
type TokenType int

// Token types
const (
	TokenOpen     TokenType = iota + 1 // (
	TokenClose                         // )
	TokenIdent                         // my-fun
	TokenString                        // "hello"
	TokenInt                           // 123
	TokenFloat                         // 43.74
	TokenIndent                        // one new indentation level
	TokenDedent                        // one or more closed levels
	TokenOperator                      // ==
	TokenLineEnd                       // line break without nesting change
)

var tokenTypeNames = map[TokenType]string{
	TokenOpen:     "open",
	TokenClose:    "close",
	TokenIdent:    "ident",
	TokenString:   "string",
	TokenInt:      "int",
	TokenFloat:    "float",
	TokenIndent:   "indent",
	TokenDedent:   "dedent",
	TokenOperator: "operator",
	TokenLineEnd:  "line_end",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

// ParseTokenType is the inverse of TokenType.String.
func ParseTokenType(name string) (TokenType, bool) {
	for t, n := range tokenTypeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// IsStructural reports whether the type is a layout marker rather than
// part of an expression.
func (t TokenType) IsStructural() bool {
	return t == TokenIndent || t == TokenDedent || t == TokenLineEnd
}

// Token represents a lexical token. Only the payload field matching Type
// is meaningful: Literal for identifiers, strings and operators (and the
// source text of numbers), Int and Float for numbers, Count for
// indent/dedent markers.
type Token struct {
	Type    TokenType
	Literal string
	Int     int64
	Float   float64
	Count   int
	Pos     Position
}

// String renders the token the way it would appear in a fully
// parenthesized program.
func (t Token) String() string {
	switch t.Type {
	case TokenOpen:
		return "("
	case TokenClose:
		return ")"
	case TokenString:
		return `"` + t.Literal + `"`
	case TokenInt:
		return strconv.FormatInt(t.Int, 10)
	case TokenFloat:
		return strconv.FormatFloat(t.Float, 'g', -1, 64)
	case TokenIndent:
		return "<indent>"
	case TokenDedent:
		return fmt.Sprintf("<dedent %d>", t.Count)
	case TokenLineEnd:
		return "<eol>"
	default:
		return t.Literal
	}
}

// DefaultOperators is the reserved operator table. Operators are matched
// against whole space-delimited runs, never split out of identifiers.
var DefaultOperators = []string{
	"+", "-", "*", "/", "**", "^", "%",
	"and", "or", "not",
	"==", "!=", ">", "<", "<=", ">=",
	"=", ":=", "v=",
}

func operatorSet(ops []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ops))
	for _, op := range ops {
		set[op] = struct{}{}
	}
	return set
}
