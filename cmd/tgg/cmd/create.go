package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/tgg/pkg/source"
	"github.com/ssargent/tgg/pkg/tgg"
)

func newCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create <out.tgg>",
		Short: "Create a .tgg file",
		Long: `Create a .tgg crossword file from a YAML puzzle source, or write the
built-in three by three demo puzzle.

A bare file name is placed in the configured output directory. Existing
files are never overwritten.

Examples:
  tgg create cat.tgg --demo
  tgg create ./puzzles/monday.tgg --from monday.yaml --author "Ada"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}

			from, _ := cmd.Flags().GetString("from")
			demo, _ := cmd.Flags().GetBool("demo")
			author, _ := cmd.Flags().GetString("author")
			if author == "" {
				author = a.cfg.Author
			}

			var doc *tgg.Document
			switch {
			case demo:
				doc, err = tgg.DemoCrossword(author)
			default:
				var src *source.Source
				src, err = source.Load(from)
				if err != nil {
					return err
				}
				if cmd.Flags().Changed("author") {
					src.Author = author
				}
				doc, err = src.Build(author)
			}
			if err != nil {
				return fmt.Errorf("failed to build puzzle: %w", err)
			}

			out := resolveOutputPath(args[0], a.cfg.OutputDir)
			if err := tgg.SaveFile(out, doc); err != nil {
				return err
			}

			a.logger.Debug("wrote puzzle", "path", out, "bytes", doc.Size())
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%d bytes)\n", out, doc.Size())
			return nil
		},
	}

	createCmd.Flags().String("from", "", "YAML puzzle source to build from")
	createCmd.Flags().Bool("demo", false, "Write the built-in demo crossword")
	createCmd.Flags().String("author", "", "Author name (default: config author)")
	createCmd.MarkFlagsMutuallyExclusive("from", "demo")
	createCmd.MarkFlagsOneRequired("from", "demo")

	return createCmd
}

// resolveOutputPath places a bare file name inside outputDir
func resolveOutputPath(path, outputDir string) string {
	if outputDir == "" || filepath.IsAbs(path) || strings.ContainsRune(path, filepath.Separator) || strings.ContainsRune(path, '/') {
		return path
	}
	return filepath.Join(outputDir, path)
}
