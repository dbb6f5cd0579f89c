package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/raphaelvigee/idtoname/generator"
)

func newGenerateCmd() *cobra.Command {
	cfg := generator.DefaultConfig()
	var qualifiers []string
	var output string

	cmd := &cobra.Command{
		Use:   "generate [files...]",
		Short: "Generate the lookup class, from sym.java and Nodes.java by default",
		RunE: func(cmd *cobra.Command, args []string) error {
			sources := generator.DefaultSources()
			if len(args) > 0 {
				sources = make([]generator.Source, len(args))
				for i, p := range args {
					sources[i] = generator.SourceFromPath(p)
				}
			}

			if len(qualifiers) > len(sources) {
				return errors.Errorf("got %v qualifiers for %v files", len(qualifiers), len(sources))
			}
			for i, q := range qualifiers {
				sources[i].Qualifier = q
			}

			g := generator.New(cfg, sources...)

			if output == "" {
				_, err := g.Generate(cmd.OutOrStdout())
				return err
			}

			return generateFile(g, output)
		},
	}

	cmd.Flags().StringSliceVarP(&qualifiers, "qualifier", "q", nil, "Qualifier of each file, in order")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, stdout if empty")
	cmd.Flags().StringVar(&cfg.ClassName, "class", cfg.ClassName, "Generated class name")
	cmd.Flags().StringVar(&cfg.Method, "method", cfg.Method, "Generated method name")
	cmd.Flags().StringVar(&cfg.Message, "message", cfg.Message, "Exception message for unknown ids")

	return cmd
}

// generateFile writes to a temporary file next to path and moves it over path
// once generation succeeded, so a failed run leaves path untouched.
func generateFile(g *generator.Generator, path string) error {
	f, err := ioutil.TempFile(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "create output for %v", path)
	}
	tmp := f.Name()
	// No-op once renamed.
	defer os.Remove(tmp)

	n, err := g.Generate(f)
	if err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "write %v", tmp)
	}

	if err := os.Chmod(tmp, 0644); err != nil {
		return errors.WithStack(err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return errors.WithStack(err)
	}

	log.Infof("Wrote %v cases to %v", n, path)

	return nil
}
