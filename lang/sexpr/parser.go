// File: sexpr/parser.go
package sexpr

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/leolimasa/leolang/lang/lexer"
)

var (
	ErrUnexpectedClose = errors.New("unexpected closing delimiter")
	ErrUnclosedList    = errors.New("list is never closed")
	ErrStructural      = errors.New("layout marker in delimited stream")
)

// Parser builds nodes from a delimited token stream, normally a
// lexer.Layout.
type Parser struct {
	src   lexer.TokenSource
	stack []Node
}

// NewParser creates a new Parser
func NewParser(src lexer.TokenSource) *Parser {
	return &Parser{src: src}
}

// Parse reads every top-level form from src.
func Parse(src lexer.TokenSource) (Program, error) {
	return NewParser(src).ParseProgram()
}

// ParseString lexes input through the layout rules and parses it.
func ParseString(input string) (Program, error) {
	return Parse(lexer.NewLayout(lexer.NewLexer(strings.NewReader(input))))
}

// ParseProgram parses until the end of the stream. It stops at the first
// lexer error.
func (p *Parser) ParseProgram() (Program, error) {
	var program Program

	for {
		tok, err := p.src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return program, fmt.Errorf("lexing: %w", err)
		}

		switch tok.Type {
		case lexer.TokenOpen:
			p.stack = append(p.stack, Node{List: []Node{}, Pos: tok.Pos})
			continue
		case lexer.TokenClose:
			if len(p.stack) == 0 {
				return program, fmt.Errorf("%s: %w", tok.Pos, ErrUnexpectedClose)
			}
			node := p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
			program = p.attach(program, node)
		case lexer.TokenIndent, lexer.TokenDedent, lexer.TokenLineEnd:
			return program, fmt.Errorf("%s: %w: %s", tok.Pos, ErrStructural, tok)
		default:
			atom := tok
			program = p.attach(program, Node{Atom: &atom, Pos: tok.Pos})
		}
	}

	if len(p.stack) > 0 {
		open := p.stack[len(p.stack)-1]
		return program, fmt.Errorf("%s: %w", open.Pos, ErrUnclosedList)
	}
	return program, nil
}

// attach adds node to the innermost open list, or to the program when no
// list is open.
func (p *Parser) attach(program Program, node Node) Program {
	if len(p.stack) == 0 {
		return append(program, node)
	}
	top := &p.stack[len(p.stack)-1]
	top.List = append(top.List, node)
	return program
}
