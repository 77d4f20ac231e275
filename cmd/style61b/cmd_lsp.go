package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/style61b/java/codebase"
)

func newLSPCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, "")
			if err != nil {
				return usageError("%w", err)
			}
			engine, opts, err := codebase.EngineFromConfig(cfg)
			if err != nil {
				return usageError("%w", err)
			}
			server := codebase.NewLSPServer(version, engine, cfg.SeverityOrDefault(), opts...)
			return server.RunStdio()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "configuration file (.yaml, .toml or checkstyle .xml)")

	return cmd
}
