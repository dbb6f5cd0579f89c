// Package generator writes a Java lookup class mapping integer constants back
// to their names.
package generator

import (
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/raphaelvigee/idtoname/scanner"
)

// Source is an input file and the qualifier its constants are referenced
// with in the generated code.
type Source struct {
	Path      string
	Qualifier string
}

// SourceFromPath uses the file name without extension as qualifier, so
// `sym.java` gives `sym`.
func SourceFromPath(path string) Source {
	base := filepath.Base(path)

	return Source{
		Path:      path,
		Qualifier: strings.TrimSuffix(base, filepath.Ext(base)),
	}
}

func DefaultSources() []Source {
	return []Source{
		{Path: "sym.java", Qualifier: "sym"},
		{Path: "Nodes.java", Qualifier: "Nodes"},
	}
}

type Config struct {
	ClassName string
	Method    string
	// Message of the exception thrown for unknown ids.
	Message string
}

func DefaultConfig() Config {
	return Config{
		ClassName: "Util",
		Method:    "idToName",
		Message:   "Unknown token",
	}
}

var (
	identRe     = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	qualifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)
)

// Validate checks that the class and method names are Java identifiers.
func (c Config) Validate() error {
	if !identRe.MatchString(c.ClassName) {
		return errors.Errorf("invalid class name %q", c.ClassName)
	}
	if !identRe.MatchString(c.Method) {
		return errors.Errorf("invalid method name %q", c.Method)
	}
	return nil
}

type Generator struct {
	Config  Config
	Sources []Source
}

func New(cfg Config, sources ...Source) *Generator {
	return &Generator{
		Config:  cfg,
		Sources: sources,
	}
}

type clause struct {
	Qualifier string
	Name      string
}

// Generate writes the class to w and returns the number of case clauses.
// Sources are scanned in order, one at a time. Output is written as it is
// produced, so a failing source leaves a truncated class in w.
func (g *Generator) Generate(w io.Writer) (int, error) {
	if err := g.Config.Validate(); err != nil {
		return 0, err
	}
	for _, src := range g.Sources {
		if !qualifierRe.MatchString(src.Qualifier) {
			return 0, errors.Errorf("invalid qualifier %q for %v", src.Qualifier, src.Path)
		}
	}

	log.Infof("Creating %v.java", g.Config.ClassName)

	err := templates.ExecuteTemplate(w, "header", g.Config)
	if err != nil {
		return 0, errors.Wrap(err, "header")
	}

	n := 0
	for _, src := range g.Sources {
		c := 0
		err := scanner.ScanFile(src.Path, func(d scanner.Decl) error {
			c++
			return templates.ExecuteTemplate(w, "case", clause{
				Qualifier: src.Qualifier,
				Name:      d.Name,
			})
		})
		n += c
		if err != nil {
			return n, scanner.Wrap(src.Qualifier, err)
		}

		log.WithFields(log.Fields{
			"path":      src.Path,
			"qualifier": src.Qualifier,
			"cases":     c,
		}).Debug("Scanned source")
	}

	err = templates.ExecuteTemplate(w, "trailer", g.Config)
	if err != nil {
		return n, errors.Wrap(err, "trailer")
	}

	return n, nil
}

// Generate writes the lookup class for the constants of fileA (qualifier
// `sym`) followed by those of fileB (qualifier `Nodes`).
func Generate(w io.Writer, fileA, fileB string) error {
	_, err := New(DefaultConfig(),
		Source{Path: fileA, Qualifier: "sym"},
		Source{Path: fileB, Qualifier: "Nodes"},
	).Generate(w)

	return err
}
