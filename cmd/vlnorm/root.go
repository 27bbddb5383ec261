package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phonlab/vlnorm"
)

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		dataDir string
	)

	cmd := &cobra.Command{
		Use:           "vlnorm",
		Short:         "Normalize vowel formant data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			vlnorm.SetDataDir(dataDir)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory relative input paths are resolved against")

	cmd.AddCommand(newListCmd(), newNormalizeCmd())

	return cmd
}
