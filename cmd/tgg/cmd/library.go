package cmd

import (
	"fmt"
	"io"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/ssargent/tgg/pkg/storage"
	"github.com/ssargent/tgg/pkg/tgg"
)

func newLibraryCmd() *cobra.Command {
	libraryCmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the local puzzle library",
		Long: `Import, list, export and delete puzzles in the local library.

The library lives in the configured library_dir. Every entry is a complete
.tgg file identified by a KSUID.`,
	}

	libraryCmd.PersistentFlags().String("library-dir", "", "Library directory (default: config library_dir)")

	libraryCmd.AddCommand(
		newLibraryImportCmd(),
		newLibraryListCmd(),
		newLibraryExportCmd(),
		newLibraryDeleteCmd(),
	)
	return libraryCmd
}

// withLibrary opens the library for the duration of fn
func withLibrary(cmd *cobra.Command, fn func(a *app, lib *storage.Library) error) error {
	a, err := appFrom(cmd)
	if err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString("library-dir")
	if dir == "" {
		dir = a.cfg.LibraryDir
	}

	lib, err := storage.Open(dir)
	if err != nil {
		return err
	}
	defer func() {
		if err := lib.Close(); err != nil {
			a.logger.Warn("failed to close library", "dir", dir, "error", err)
		}
	}()

	a.logger.Debug("opened library", "dir", dir)
	return fn(a, lib)
}

func newLibraryImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.tgg>...",
		Short: "Add .tgg files to the library",
		Long: `Add .tgg files to the library. Each file is decoded first and rejected
if it is not valid. Use - to read a single file from standard input.

Examples:
  tgg library import cat.tgg monday.tgg
  curl -s https://example.com/p.tgg | tgg library import -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLibrary(cmd, func(a *app, lib *storage.Library) error {
				for _, path := range args {
					id, doc, err := importOne(cmd, lib, path)
					if err != nil {
						return err
					}
					a.logger.Info("imported puzzle", "id", id.String(), "path", path)
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, doc.Title())
				}
				return nil
			})
		},
	}
}

func importOne(cmd *cobra.Command, lib *storage.Library, path string) (ksuid.KSUID, *tgg.Document, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return ksuid.Nil, nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		id, doc, err := lib.PutRaw(data)
		if err != nil {
			return ksuid.Nil, nil, fmt.Errorf("standard input: %w", err)
		}
		return id, doc, nil
	}

	doc, err := tgg.LoadFile(path)
	if err != nil {
		return ksuid.Nil, nil, err
	}
	id, err := lib.Put(doc)
	if err != nil {
		return ksuid.Nil, nil, err
	}
	return id, doc, nil
}

func newLibraryListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List puzzles in the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if err := checkFormat(format); err != nil {
				return err
			}

			return withLibrary(cmd, func(a *app, lib *storage.Library) error {
				summaries, err := lib.List()
				if err != nil {
					return err
				}
				return outputSummaries(cmd.OutOrStdout(), summaries, format)
			})
		},
	}

	listCmd.Flags().StringP("format", "f", formatTable, "Output format: table or json")
	return listCmd
}

func newLibraryExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <id> <out.tgg>",
		Short: "Write a library puzzle to a .tgg file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ksuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid puzzle id %q: %w", args[0], err)
			}

			return withLibrary(cmd, func(a *app, lib *storage.Library) error {
				doc, err := lib.Get(id)
				if err != nil {
					return err
				}

				out := resolveOutputPath(args[1], a.cfg.OutputDir)
				if err := tgg.SaveFile(out, doc); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", id, out)
				return nil
			})
		},
	}
}

func newLibraryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a puzzle from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ksuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid puzzle id %q: %w", args[0], err)
			}

			return withLibrary(cmd, func(a *app, lib *storage.Library) error {
				if err := lib.Delete(id); err != nil {
					return err
				}
				a.logger.Info("deleted puzzle", "id", id.String())
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
				return nil
			})
		},
	}
}
