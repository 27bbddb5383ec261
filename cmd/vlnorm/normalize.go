package main

import (
	"errors"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/phonlab/vlnorm"
	"github.com/phonlab/vlnorm/norm"
)

var errBadSeparator = errors.New("separator must be a single character")

func newNormalizeCmd() *cobra.Command {
	var (
		method     string
		fileOut    string
		sep        string
		rename     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "normalize <file>",
		Short: "Normalize a delimited file of formant data",
		Long: `Normalize a delimited file of formant data.

Method keywords (column aliases, rename patterns, point vowel labels and
the like) are read from a YAML options file:

    fleece: iy
    trap: ae
    rename: "{}_n"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(configPath)
			if err != nil {
				return err
			}
			if rename != "" {
				opts["rename"] = rename
			}

			separator, size := utf8.DecodeRuneInString(sep)
			if sep == "" || size != len(sep) {
				return errBadSeparator
			}

			log.Debug("normalizing", "file", args[0], "method", method)
			out, err := vlnorm.NormalizeFile(args[0], fileOut, norm.ByName(method), separator, opts)
			if err != nil {
				return err
			}

			if fileOut == "" {
				return out.WriteCSV(cmd.OutOrStdout(), separator)
			}
			log.Info("normalized", "rows", out.Len(), "out", fileOut)

			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "default", "normalization method name")
	cmd.Flags().StringVarP(&fileOut, "out", "o", "", "output file (stdout when empty)")
	cmd.Flags().StringVar(&sep, "sep", ",", "field separator")
	cmd.Flags().StringVar(&rename, "rename", "", "rename pattern for normalized columns, e.g. {}_n")
	cmd.Flags().StringVarP(&configPath, "options", "f", "", "YAML file of method keywords")

	return cmd
}

func loadOptions(path string) (norm.Options, error) {
	opts := norm.Options{}
	if path == "" {
		return opts, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(raw, &opts); err != nil {
		return nil, err
	}

	return opts, nil
}
