// Package scanner extracts constant declaration names from Java sources,
// line by line, in file order.
package scanner

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/raphaelvigee/idtoname/lexer"
)

// Decl is one `public static final int NAME = ...` match.
type Decl struct {
	Name string
	Line int
}

var (
	isName = lexer.NewMatcher("Name")
	isNl   = lexer.NewMatcher("Nl")
)

// Scan streams r and calls fn for the first declaration of every matching
// line. Lines without a declaration are skipped.
func Scan(r io.Reader, fn func(Decl) error) error {
	return scan("", r, fn)
}

func scan(filename string, r io.Reader, fn func(Decl) error) (rerr error) {
	defer func() {
		if rerr != nil {
			rerr = Wrap("scan", rerr)
		}
	}()

	lex, err := lexer.Lex(filename, r)
	if err != nil {
		return err
	}

	// Only the first match of a line counts.
	matched := false
	for {
		pt, err := lex.Next()
		if err != nil {
			return err
		}

		t := lexer.Token(pt)
		switch {
		case t.Type == lexer.EOF:
			return nil
		case isNl.Is(t):
			matched = false
		case isName.Is(t) && !matched:
			matched = true

			if err := fn(Decl{Name: t.DeclName(), Line: t.Pos.Line}); err != nil {
				return err
			}
		}
	}
}

// ScanFile opens path read-only and scans it. The file is closed before
// ScanFile returns, whether or not the scan succeeded.
func ScanFile(path string, fn func(Decl) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	return scan(path, f, fn)
}
