// File: snapshot/diff.go
package snapshot

import (
	"fmt"
	"strings"

	"github.com/leolimasa/leolang/lang/lexer"
	"github.com/pmezard/go-difflib/difflib"
)

// Op marks a change as an addition or a removal
type Op byte

const (
	OpAdd    Op = '+'
	OpRemove Op = '-'
)

// Change is one token present in only one of the two streams
type Change struct {
	Op    Op
	Token lexer.Token
}

// StreamDiff represents the differences between two token streams.
// Positions are ignored when matching tokens, so moving code around
// without changing it produces no diff.
type StreamDiff struct {
	Added   []lexer.Token
	Removed []lexer.Token
	Changes []Change // in stream order
}

// Diff computes an edit script between two token streams. Tokens are
// matched on their type and rendering, so memory stays linear in the
// stream lengths.
func Diff(oldTokens, newTokens []lexer.Token) *StreamDiff {
	diff := &StreamDiff{}

	matcher := difflib.NewMatcher(tokenKeys(oldTokens), tokenKeys(newTokens))
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'r':
			for _, tok := range oldTokens[op.I1:op.I2] {
				diff.remove(tok)
			}
			for _, tok := range newTokens[op.J1:op.J2] {
				diff.add(tok)
			}
		case 'd':
			for _, tok := range oldTokens[op.I1:op.I2] {
				diff.remove(tok)
			}
		case 'i':
			for _, tok := range newTokens[op.J1:op.J2] {
				diff.add(tok)
			}
		}
	}

	return diff
}

func (d *StreamDiff) add(tok lexer.Token) {
	d.Added = append(d.Added, tok)
	d.Changes = append(d.Changes, Change{Op: OpAdd, Token: tok})
}

func (d *StreamDiff) remove(tok lexer.Token) {
	d.Removed = append(d.Removed, tok)
	d.Changes = append(d.Changes, Change{Op: OpRemove, Token: tok})
}

// tokenKeys renders each token with its type; positions are left out.
func tokenKeys(tokens []lexer.Token) []string {
	keys := make([]string, len(tokens))
	for i, tok := range tokens {
		keys[i] = tok.Type.String() + " " + tok.String()
	}
	return keys
}

// IsEmpty returns true if the diff contains no changes
func (d *StreamDiff) IsEmpty() bool {
	return len(d.Changes) == 0
}

// String returns a string representation of the stream diff
func (d *StreamDiff) String() string {
	var sb strings.Builder

	sb.WriteString("Token Stream Changes:\n\n")

	if d.IsEmpty() {
		sb.WriteString("No changes detected.\n")
		return sb.String()
	}

	for _, c := range d.Changes {
		sb.WriteString(fmt.Sprintf("  %c %-7s %-9s %s\n", c.Op, c.Token.Pos, c.Token.Type, c.Token))
	}
	sb.WriteString(fmt.Sprintf("\n%d added, %d removed\n", len(d.Added), len(d.Removed)))

	return sb.String()
}
