package lexer

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lexAll drains the lexer and fails the test on any error.
func lexAll(t *testing.T, input string) []Token {
	t.Helper()
	tokens, errs := Tokenize(strings.NewReader(input))
	require.Empty(t, errs, "unexpected lexer errors")
	return tokens
}

func TestLexer(t *testing.T) {
	program := `my-fun = fn (a b)
        print "hello"`

	l := NewLexer(strings.NewReader(program))

	expected := []struct {
		typ     TokenType
		literal string
	}{
		{TokenIdent, "my-fun"},
		{TokenOperator, "="},
		{TokenIdent, "fn"},
		{TokenOpen, "("},
		{TokenIdent, "a"},
		{TokenIdent, "b"},
		{TokenClose, ")"},
		{TokenIndent, ""},
		{TokenIdent, "print"},
		{TokenString, "hello"},
		{TokenDedent, ""},
	}

	for i, exp := range expected {
		tok, err := l.Next()
		require.NoError(t, err, "token %d", i)
		t.Logf("Token: %v, Literal: %q, Pos: %s", tok.Type, tok.Literal, tok.Pos)
		assert.Equal(t, exp.typ, tok.Type, "token %d type", i)
		assert.Equal(t, exp.literal, tok.Literal, "token %d literal", i)
		if tok.Type == TokenIndent || tok.Type == TokenDedent {
			assert.Equal(t, 1, tok.Count, "token %d count", i)
		}
	}

	_, err := l.Next()
	assert.Equal(t, io.EOF, err)

	// The stream stays finished.
	_, err = l.Next()
	assert.Equal(t, io.EOF, err)
}

func TestLexerOffside(t *testing.T) {
	program := `my-fun = fn (a b)
    print "hello world"

    map
        a b
    some-call
    line-ends-here
dedented-all-the-way
    indent-one-level
      indent-two-levels
dedent-again`

	tokens := lexAll(t, program)
	assert.Equal(t,
		`my-fun = fn ( a b ) <indent> print "hello world" <eol> map <indent> a b <dedent 1> `+
			`some-call <eol> line-ends-here <dedent 1> dedented-all-the-way <indent> indent-one-level `+
			`<indent> indent-two-levels <dedent 2> dedent-again`,
		Render(tokens))

	// The blank line is skipped, so map sits on line 4.
	for _, tok := range tokens {
		if tok.Literal == "map" {
			assert.Equal(t, Position{Line: 4, Column: 5}, tok.Pos)
		}
	}
}

func TestLexerLiterals(t *testing.T) {
	tests := []struct {
		input   string
		typ     TokenType
		literal string
		intVal  int64
		floatV  float64
	}{
		{"123", TokenInt, "123", 123, 0},
		{"-5", TokenInt, "-5", -5, 0},
		{"0", TokenInt, "0", 0, 0},
		{"43.74", TokenFloat, "43.74", 0, 43.74},
		{".5", TokenFloat, ".5", 0, 0.5},
		{"-.5", TokenFloat, "-.5", 0, -0.5},
		{"+2.5", TokenFloat, "+2.5", 0, 2.5},
		{"3.4.5", TokenIdent, "3.4.5", 0, 0},
		{"+5", TokenIdent, "+5", 0, 0},
		{"12abc", TokenIdent, "12abc", 0, 0},
		{"-", TokenOperator, "-", 0, 0},
		{"**", TokenOperator, "**", 0, 0},
		{":=", TokenOperator, ":=", 0, 0},
		{"and", TokenOperator, "and", 0, 0},
		{"a+b", TokenIdent, "a+b", 0, 0},
		{"a==b", TokenIdent, "a==b", 0, 0},
		{"fn(a", TokenIdent, "fn(a", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := lexAll(t, tt.input)
			require.Len(t, tokens, 1)
			tok := tokens[0]
			assert.Equal(t, tt.typ, tok.Type)
			assert.Equal(t, tt.literal, tok.Literal)
			assert.Equal(t, tt.intVal, tok.Int)
			assert.InDelta(t, tt.floatV, tok.Float, 1e-9)
		})
	}
}

func TestLexerOperatorsNeedSpaces(t *testing.T) {
	tokens := lexAll(t, "a == b")
	require.Len(t, tokens, 3)
	assert.Equal(t, TokenIdent, tokens[0].Type)
	assert.Equal(t, TokenOperator, tokens[1].Type)
	assert.Equal(t, "==", tokens[1].Literal)
	assert.Equal(t, TokenIdent, tokens[2].Type)
}

func TestLexerCustomOperators(t *testing.T) {
	l := NewLexer(strings.NewReader("x |> y + z"))
	l.SetOperators([]string{"|>"})

	tokens, errs := Collect(l)
	require.Empty(t, errs)
	require.Len(t, tokens, 5)
	assert.Equal(t, TokenOperator, tokens[1].Type)
	assert.Equal(t, TokenIdent, tokens[3].Type, "+ is no longer reserved")
}

func TestLexerInvalidNumbers(t *testing.T) {
	t.Run("int overflow", func(t *testing.T) {
		l := NewLexer(strings.NewReader("99999999999999999999 ok"))

		_, err := l.Next()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidIntLiteral)
		assert.ErrorIs(t, err, strconv.ErrRange)
		assert.NotErrorIs(t, err, ErrLayout)

		var lexErr *LexError
		require.True(t, errors.As(err, &lexErr))
		assert.Equal(t, InvalidIntLiteral, lexErr.Kind)
		assert.Equal(t, "99999999999999999999", lexErr.Text)
		assert.Equal(t, Position{Line: 1, Column: 1}, lexErr.Pos)

		// The lexer keeps going after the bad literal.
		tok, err := l.Next()
		require.NoError(t, err)
		assert.Equal(t, "ok", tok.Literal)
	})

	t.Run("float overflow", func(t *testing.T) {
		text := "1" + strings.Repeat("0", 400) + ".5"
		_, errs := Tokenize(strings.NewReader(text))
		require.Len(t, errs, 1)
		assert.Equal(t, InvalidFloatLiteral, errs[0].Kind)
		assert.ErrorIs(t, errs[0], ErrInvalidFloatLiteral)
	})
}

func TestLexerUnterminatedString(t *testing.T) {
	tokens, errs := Tokenize(strings.NewReader(`foo "bar`))
	require.Len(t, tokens, 1)
	assert.Equal(t, "foo", tokens[0].Literal)

	require.Len(t, errs, 1)
	assert.Equal(t, UnterminatedString, errs[0].Kind)
	assert.Equal(t, "bar", errs[0].Text)
	assert.Equal(t, Position{Line: 1, Column: 5}, errs[0].Pos)
	assert.ErrorIs(t, errs[0], ErrLayout)
}

func TestLexerStringKeepsContentVerbatim(t *testing.T) {
	tokens := lexAll(t, `"a (b) \n c"`)
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenString, tokens[0].Type)
	assert.Equal(t, `a (b) \n c`, tokens[0].Literal)
}

func TestLexerInconsistentDedent(t *testing.T) {
	l := NewLexer(strings.NewReader("a\n    b\n  c"))

	var rendered []string
	var errs []error
	for tok, err := range l.All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rendered = append(rendered, tok.String())
	}

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrInconsistentDedent)
	assert.ErrorIs(t, errs[0], ErrLayout)
	assert.Equal(t, []string{"a", "<indent>", "b", "<dedent 1>", "c"}, rendered)
}

func TestLexerDedentCollapse(t *testing.T) {
	l := NewLexer(strings.NewReader("a\n  b\n      c\n        d\ne"))

	var seen []string
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		seen = append(seen, tok.String())
		if tok.Literal == "d" {
			break
		}
	}
	assert.Equal(t, []string{"a", "<indent>", "b", "<indent>", "c", "<indent>", "d"}, seen)
	assert.Equal(t, []int{2, 4, 2}, l.indent.Widths())
	assert.Equal(t, 8, l.indent.Depth())

	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, TokenDedent, tok.Type)
	assert.Equal(t, 3, tok.Count, "all three levels collapse into one dedent")
	assert.Empty(t, l.indent.Widths())

	tok, err = l.Next()
	require.NoError(t, err)
	assert.Equal(t, "e", tok.Literal)
}

func TestLexerBlankLines(t *testing.T) {
	l := NewLexer(strings.NewReader("a\n\n   \n\t\nb"))
	tokens, errs := Collect(l)
	require.Empty(t, errs)

	assert.Equal(t, "a <eol> b", Render(tokens))
	assert.Equal(t, Position{Line: 5, Column: 1}, tokens[2].Pos)
	assert.Empty(t, l.indent.Widths())
}

func TestLexerBlankLinesInsideBlock(t *testing.T) {
	tokens := lexAll(t, "a\n  b\n\n  c\n")
	assert.Equal(t, "a <indent> b <eol> c <dedent 1>", Render(tokens))
}

func TestLexerEndOfInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"open block flushed", "a\n  b", "a <indent> b <dedent 1>"},
		{"trailing newline", "a\n  b\n", "a <indent> b <dedent 1>"},
		{"trailing spaces", "a\n  b\n   ", "a <indent> b <dedent 1>"},
		{"flat trailing newline", "a\n", "a <eol>"},
		{"crlf", "a b\r\nc", "a b <eol> c"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(lexAll(t, tt.input)))
		})
	}
}

func TestLexerPositions(t *testing.T) {
	tokens := lexAll(t, "foo (bar)\n  baz\nqux")

	expected := []Position{
		{Line: 1, Column: 1}, // foo
		{Line: 1, Column: 5}, // (
		{Line: 1, Column: 6}, // bar
		{Line: 1, Column: 9}, // )
		{Line: 2, Column: 3}, // indent
		{Line: 2, Column: 3}, // baz
		{Line: 3, Column: 1}, // dedent
		{Line: 3, Column: 1}, // qux
	}
	require.Len(t, tokens, len(expected))
	for i, pos := range expected {
		assert.Equal(t, pos, tokens[i].Pos, "token %d (%s)", i, tokens[i])
	}

	lineEnd := lexAll(t, "a\nb")[1]
	assert.Equal(t, TokenLineEnd, lineEnd.Type)
	assert.Equal(t, Position{Line: 1, Column: 2}, lineEnd.Pos)
}

func TestLexerSourceFailure(t *testing.T) {
	l := NewLexer(iotest.ErrReader(errors.New("boom")))

	_, err := l.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceFailure)
	assert.Contains(t, err.Error(), "boom")

	_, err = l.Next()
	assert.Equal(t, io.EOF, err)
}

func TestCursor(t *testing.T) {
	c := NewCursor(strings.NewReader("ab\nc"))

	r, ok := c.Advance()
	assert.True(t, ok)
	assert.Equal(t, 'a', r)
	assert.Equal(t, Position{Line: 1, Column: 1}, c.Pos())

	r, _ = c.Advance()
	assert.Equal(t, 'b', r)

	c.Unread()
	r, _ = c.Advance()
	assert.Equal(t, 'b', r, "unread replays the last rune")
	assert.Equal(t, Position{Line: 1, Column: 2}, c.Pos(), "replay does not move the column")

	r, _ = c.Advance()
	assert.Equal(t, '\n', r)
	assert.Equal(t, Position{Line: 1, Column: 3}, c.Pos())

	r, _ = c.Advance()
	assert.Equal(t, 'c', r)
	assert.Equal(t, Position{Line: 2, Column: 1}, c.Pos())

	_, ok = c.Advance()
	assert.False(t, ok)

	c.Unread()
	_, ok = c.Advance()
	assert.False(t, ok, "unread has no effect at end of input")
	assert.NoError(t, c.Err())
}

func TestIndentStack(t *testing.T) {
	var s IndentStack
	s.Push(2)
	s.Push(6)
	s.Push(8)
	assert.Equal(t, []int{2, 4, 2}, s.Widths())
	assert.Equal(t, 8, s.Depth())

	popped, exact := s.Collapse(2)
	assert.Equal(t, 2, popped)
	assert.True(t, exact)

	s.Push(6)
	popped, exact = s.Collapse(4)
	assert.Equal(t, 1, popped)
	assert.False(t, exact, "4 is not the start of any open level")

	assert.Equal(t, 1, s.Reset())
	assert.Equal(t, 0, s.Pop())
}

func TestTokenTypeNames(t *testing.T) {
	for typ := TokenOpen; typ <= TokenLineEnd; typ++ {
		parsed, ok := ParseTokenType(typ.String())
		assert.True(t, ok, typ.String())
		assert.Equal(t, typ, parsed)
	}
	_, ok := ParseTokenType("nope")
	assert.False(t, ok)
}
