// File: sexpr/node.go
package sexpr

import (
	"strings"

	"github.com/leolimasa/leolang/lang/lexer"
)

// Node stores either a single token or a list of nodes.
type Node struct {
	Atom *lexer.Token
	List []Node
	Pos  lexer.Position
}

// IsAtom reports whether the node holds a token
func (n Node) IsAtom() bool {
	return n.Atom != nil
}

func (n Node) String() string {
	if n.Atom != nil {
		return n.Atom.String()
	}
	parts := make([]string, len(n.List))
	for i, child := range n.List {
		parts[i] = child.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Head returns the first element of a list, or false for atoms and
// empty lists.
func (n Node) Head() (Node, bool) {
	if n.Atom != nil || len(n.List) == 0 {
		return Node{}, false
	}
	return n.List[0], true
}

// Program is the sequence of top-level forms of a source.
type Program []Node

func (p Program) String() string {
	parts := make([]string, len(p))
	for i, form := range p {
		parts[i] = form.String()
	}
	return strings.Join(parts, "\n")
}
