/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ssargent/tgg/pkg/config"
)

// app carries what PersistentPreRunE resolved to the subcommands
type app struct {
	cfg        *config.Config
	configPath string
	logger     *slog.Logger
}

type appKey struct{}

// NewRootCmd builds the tgg command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tgg",
		Short: "TGG - Talon Games puzzle files",
		Long: `tgg creates, inspects and stores .tgg puzzle files.

A .tgg file is a small checksummed container holding one puzzle game,
currently crosswords. Files can be kept in a local puzzle library and
served over HTTP.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			logLevel, _ := cmd.Flags().GetString("log-level")

			cfg, path, err := resolveConfig(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			a := &app{
				cfg:        cfg,
				configPath: path,
				logger:     newLogger(cmd.ErrOrStderr(), cfg.Logging.SlogLevel()),
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, a))
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ~/.config/tgg/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newCreateCmd(),
		newInspectCmd(),
		newLibraryCmd(),
		newServeCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// resolveConfig loads the config at path. With no path the default location
// is tried and built-in defaults are used when nothing is there; an explicit
// path must exist.
func resolveConfig(path string) (*config.Config, string, error) {
	explicit := path != ""
	if !explicit {
		path = config.GetDefaultConfigPath()
	}

	if !config.ConfigExists(path) {
		if explicit {
			return nil, path, fmt.Errorf("config file %s: %w", path, os.ErrNotExist)
		}
		return config.DefaultConfig(), path, nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func appFrom(cmd *cobra.Command) (*app, error) {
	if cmd.Context() != nil {
		if a, ok := cmd.Context().Value(appKey{}).(*app); ok {
			return a, nil
		}
	}
	return nil, errors.New("configuration not loaded")
}
