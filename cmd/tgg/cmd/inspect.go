package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/tgg/pkg/tgg"
)

func newInspectCmd() *cobra.Command {
	inspectCmd := &cobra.Command{
		Use:   "inspect <file.tgg>",
		Short: "Decode a .tgg file and print its contents",
		Long: `Decode a .tgg file, verifying its checksums and payload, and print the
metadata and puzzle.

Examples:
  tgg inspect cat.tgg
  tgg inspect cat.tgg --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if err := checkFormat(format); err != nil {
				return err
			}

			doc, err := tgg.LoadFile(args[0])
			if err != nil {
				return err
			}

			return outputDocument(cmd.OutOrStdout(), doc, format)
		},
	}

	inspectCmd.Flags().StringP("format", "f", formatTable, "Output format: table or json")
	return inspectCmd
}
