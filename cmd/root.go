package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var level string

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "idtoname",
		SilenceErrors: true,
		SilenceUsage:  true,
		Short:         "Generate an id to name lookup class from Java constants",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			l, err := log.ParseLevel(level)
			if err != nil {
				l = log.InfoLevel
			}

			log.SetLevel(l)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&level, "log", "info", "Log level")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newDumpCmd())

	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
