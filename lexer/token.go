package lexer

import (
	"fmt"
	"strings"

	plexer "github.com/alecthomas/participle/v2/lexer"
)

type Token plexer.Token

var EOF = plexer.EOF

// DeclName returns the identifier carried by a Name token, without the
// trailing " =".
func (t Token) DeclName() string {
	return strings.TrimSuffix(t.Value, " =")
}

func (t Token) StringAlign() string {
	return fmt.Sprintf("%-10v %7v %q", SymbolName(t.Type), t.Pos, t.Value)
}

func (t Token) String() string {
	return fmt.Sprintf("%v %v %q", SymbolName(t.Type), t.Pos, t.Value)
}
