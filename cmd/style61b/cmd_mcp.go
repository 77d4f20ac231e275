package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/style61b/mcpserver"
)

func newMCPCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the Model Context Protocol server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, "")
			if err != nil {
				return usageError("%w", err)
			}
			return mcpserver.New(version, cfg).Serve(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "default configuration for tool calls")

	return cmd
}
