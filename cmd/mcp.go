package cmd

import (
	"github.com/spf13/cobra"
	"github.com/strideworks/stridemap/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp [csv-path]",
	Short: "Start the Stridemap MCP server",
	Long: `Launch an MCP server that allows AI agents to query activity data
via standard tools. The CSV path or --from-store sets the default data
source; individual tool calls may override it.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Suppress the normal header logs when running in MCP mode
		// to avoid polluting stdio which is used for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, store)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
