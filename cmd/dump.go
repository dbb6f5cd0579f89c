package cmd

import (
	"bytes"
	"fmt"
	"io/ioutil"

	"github.com/alecthomas/repr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/raphaelvigee/idtoname/lexer"
	"github.com/raphaelvigee/idtoname/scanner"
)

func newDumpCmd() *cobra.Command {
	var tokens bool

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump the declarations found in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := ioutil.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "read %v", args[0])
			}

			w := cmd.OutOrStdout()

			if tokens {
				toks, err := lexer.Tokenize(bytes.NewReader(b))
				if err != nil {
					return err
				}

				for _, t := range toks {
					fmt.Fprintln(w, t.StringAlign())
				}
				fmt.Fprintln(w)
			}

			var decls []scanner.Decl
			err = scanner.Scan(bytes.NewReader(b), func(d scanner.Decl) error {
				decls = append(decls, d)
				return nil
			})
			if err != nil {
				return err
			}

			repr.New(w).Println(decls)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&tokens, "tokens", "t", false, "Print lexer tokens")

	return cmd
}
