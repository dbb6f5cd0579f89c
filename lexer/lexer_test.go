package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, s string) []Token {
	toks, err := Tokenize(strings.NewReader(s))
	require.NoError(t, err)

	return toks
}

func kinds(toks []Token) []string {
	var out []string
	for _, t := range toks {
		if t.Type == EOF {
			continue
		}
		out = append(out, SymbolName(t.Type))
	}
	return out
}

func named(toks []Token, name string) []Token {
	m := NewMatcher(name)

	var out []Token
	for _, t := range toks {
		if m.Is(t) {
			out = append(out, t)
		}
	}
	return out
}

func TestTokenizeDeclaration(t *testing.T) {
	toks := tokenize(t, "public static final int FOO = 1;\n")

	decls := named(toks, "DeclStart")
	require.Len(t, decls, 1)
	assert.Equal(t, DeclPrefix, decls[0].Value)

	names := named(toks, "Name")
	require.Len(t, names, 1)
	assert.Equal(t, "FOO =", names[0].Value)
	assert.Equal(t, "FOO", names[0].DeclName())
	assert.Equal(t, 1, names[0].Pos.Line)
}

func TestTokenizeIndented(t *testing.T) {
	toks := tokenize(t, "  public static final int IDENT = 42;\n")

	names := named(toks, "Name")
	require.Len(t, names, 1)
	assert.Equal(t, "IDENT", names[0].DeclName())
}

func TestTokenizeNonGreedy(t *testing.T) {
	toks := tokenize(t, "public static final int A = B = 3;\n")

	names := named(toks, "Name")
	require.Len(t, names, 1)
	assert.Equal(t, "A", names[0].DeclName())
}

func TestTokenizeNameStopsAtLineEnd(t *testing.T) {
	toks := tokenize(t, "public static final int A\nB = 1;\n")

	assert.Empty(t, named(toks, "Name"))
	assert.Len(t, named(toks, "Nl"), 2)
}

func TestTokenizeComment(t *testing.T) {
	toks := tokenize(t, "// comment\n")

	assert.Empty(t, named(toks, "DeclStart"))
	assert.Empty(t, named(toks, "Name"))

	k := kinds(toks)
	assert.Equal(t, "Nl", k[len(k)-1])
	for _, n := range k[:len(k)-1] {
		assert.Equal(t, "Char", n)
	}
}

func TestTokenizeNoTrailingNewline(t *testing.T) {
	toks := tokenize(t, "public static final int LAST = 9;")

	names := named(toks, "Name")
	require.Len(t, names, 1)
	assert.Equal(t, "LAST", names[0].DeclName())
	assert.Equal(t, EOF, toks[len(toks)-1].Type)
}

func TestTokenizeEmpty(t *testing.T) {
	toks := tokenize(t, "")

	assert.Empty(t, kinds(toks))
}

func TestMatcher(t *testing.T) {
	toks := tokenize(t, "x")

	assert.True(t, NewMatcher("Char").Is(toks[0]))
	assert.False(t, NewMatcher("Name").Is(toks[0]))
	assert.True(t, NewMatcher("EOF").Is(toks[1]))
}

func TestSymbolUnknown(t *testing.T) {
	assert.Panics(t, func() {
		Symbol("Nope")
	})
}
