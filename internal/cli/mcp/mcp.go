package mcp

import (
	"github.com/spf13/cobra"
)

var McpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose the Appwrite project to MCP clients",
}
