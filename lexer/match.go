package lexer

type Matcher interface {
	Is(t Token) bool
}

// NewMatcher matches tokens of the named kind.
func NewMatcher(name string) Matcher {
	return crit(Symbol(name))
}

type crit rune

func (c crit) Is(t Token) bool {
	return t.Type == rune(c)
}
