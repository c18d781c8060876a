package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/textflux/textflux-site/internal/content"
	mcpserver "github.com/textflux/textflux-site/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the install command, features, props, shortcuts and changelog as tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := content.Default()

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "textflux-site MCP server started on stdio (props=%d, features=%d)\n", len(reg.Props), len(reg.Features))

		srv := mcpserver.NewServer(reg)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
