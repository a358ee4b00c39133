/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/tgg/pkg/api"
	"github.com/ssargent/tgg/pkg/config"
	"github.com/ssargent/tgg/pkg/storage"
)

// autoAPIKey asks serve to generate a key for this run only
const autoAPIKey = "auto"

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the puzzle library over HTTP",
		Long: `Start the puzzle library REST API.

Routes under /api/v1 require the X-API-Key header. When the configured key
is "auto" a random key is generated for this run and printed once.
Prometheus metrics are served on /metrics.

Examples:
  tgg serve
  tgg serve --port 9400 --bind 0.0.0.0 --api-key mysecretkey`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}

			serverCfg, err := serverConfig(cmd, a.cfg)
			if err != nil {
				return err
			}
			if a.cfg.Server.APIKey == autoAPIKey && !cmd.Flags().Changed("api-key") {
				fmt.Fprintf(cmd.OutOrStdout(), "Generated API key for this run: %s\n", serverCfg.APIKey)
			}

			lib, err := storage.Open(a.cfg.LibraryDir)
			if err != nil {
				return err
			}
			defer lib.Close()

			return api.StartServer(cmd.Context(), lib, serverCfg, a.logger)
		},
	}

	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (default: config server.port)")
	serveCmd.Flags().String("bind", "", "Address to bind to (default: config server.bind)")
	serveCmd.Flags().String("api-key", "", "API key for clients (default: config server.api_key)")

	return serveCmd
}

// serverConfig merges command line overrides into the configured server settings
func serverConfig(cmd *cobra.Command, cfg *config.Config) (api.ServerConfig, error) {
	sc := api.ServerConfig{
		Port:           cfg.Server.Port,
		Bind:           cfg.Server.Bind,
		APIKey:         cfg.Server.APIKey,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
	}

	if cmd.Flags().Changed("port") {
		sc.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("bind") {
		sc.Bind, _ = cmd.Flags().GetString("bind")
	}
	if cmd.Flags().Changed("api-key") {
		sc.APIKey, _ = cmd.Flags().GetString("api-key")
	}

	if sc.APIKey == autoAPIKey {
		key, err := config.GenerateSecureKey(32)
		if err != nil {
			return sc, err
		}
		sc.APIKey = key
	}
	if sc.APIKey == "" {
		return sc, fmt.Errorf("an API key is required")
	}
	if sc.Port < 0 || sc.Port > 65535 {
		return sc, fmt.Errorf("invalid port %d", sc.Port)
	}

	return sc, nil
}
