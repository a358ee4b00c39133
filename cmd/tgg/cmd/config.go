package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/tgg/pkg/config"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the tgg configuration file",
	}

	configCmd.AddCommand(newConfigInitCmd(), newConfigShowCmd())
	return configCmd
}

func newConfigInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with a generated API key",
		Long: `Write a new configuration file with default settings and a freshly
generated API key. An existing file is kept unless --force is given.

Examples:
  tgg config init
  tgg config init --config ./tgg.yaml --library-dir ./library --print-key`,
		Args: cobra.NoArgs,
		// The config file may not exist yet, so skip loading it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			libraryDir, _ := cmd.Flags().GetString("library-dir")
			force, _ := cmd.Flags().GetBool("force")
			printKey, _ := cmd.Flags().GetBool("print-key")

			if configPath == "" {
				configPath = config.GetDefaultConfigPath()
			}

			if config.ConfigExists(configPath) && !force {
				return fmt.Errorf("config already exists at %s, use --force to replace it", configPath)
			}

			cfg, err := config.BootstrapConfig(configPath, libraryDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configuration written to %s\n", configPath)
			fmt.Fprintf(out, "Library directory: %s\n", cfg.LibraryDir)
			if printKey {
				fmt.Fprintf(out, "API key: %s\n", cfg.Server.APIKey)
			}
			return nil
		},
	}

	initCmd.Flags().String("library-dir", "", "Library directory to record in the config")
	initCmd.Flags().Bool("force", false, "Replace an existing config file")
	initCmd.Flags().Bool("print-key", false, "Print the generated API key")
	return initCmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", a.configPath)
			shown := *a.cfg
			if shown.Server.APIKey != autoAPIKey {
				shown.Server.APIKey = "<redacted>"
			}
			return outputYAML(cmd.OutOrStdout(), &shown)
		},
	}
}
