package lexer

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/alecthomas/participle/v2/lexer/stateful"
)

// DeclPrefix is the literal text introducing a constant declaration.
const DeclPrefix = "public static final int "

var _def *stateful.Definition

func init() {
	Nl := stateful.Rule{Name: `Nl`, Pattern: `\n`, Action: nil}
	Char := stateful.Rule{Name: `Char`, Pattern: `.`, Action: nil}

	_def = stateful.Must(stateful.Rules{
		"Root": {
			{Name: `DeclStart`, Pattern: `public static final int `, Action: stateful.Push("Decl")},
			Nl,
			Char,
		},
		// Shortest run up to the first " =" on the line, so `.*?` never
		// crosses into the next line.
		"Decl": {
			{Name: `Name`, Pattern: `[^\n]*? =`, Action: stateful.Pop()},
			{Name: `Nl`, Pattern: `\n`, Action: stateful.Pop()},
			Char,
		},
	})
}

// Lex returns a streaming lexer over r.
func Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	return Def().Lex(filename, r)
}

func Tokenize(r io.Reader) ([]Token, error) {
	lex, err := Lex("", r)
	if err != nil {
		return nil, err
	}

	toks, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}

	mytoks := make([]Token, len(toks))
	for i, t := range toks {
		mytoks[i] = Token(t)
	}

	return mytoks, nil
}

func Def() *stateful.Definition {
	return _def
}

func Symbols() map[string]rune {
	return Def().Symbols()
}

func Symbol(name string) rune {
	t := Symbols()[name]
	if t == 0 {
		panic("unknown symbol: " + name)
	}
	return t
}

var typeToName map[rune]string

func init() {
	typeToName = map[rune]string{}
	for s, k := range Symbols() {
		typeToName[k] = s
	}
}

func SymbolName(t rune) string {
	return typeToName[t]
}
