package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/appwrite/starter-for-vue/internal/cli"
	"github.com/appwrite/starter-for-vue/internal/config"
	"github.com/appwrite/starter-for-vue/internal/mcp/appwriteserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run an MCP server exposing read-only Appwrite tools (stdio transport)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		h := cli.APIHandles()
		if h == nil {
			return errors.New("appwrite handles are not initialized")
		}

		server := appwriteserver.NewServer(appwriteserver.Services{
			Client:      h.Client,
			Account:     h.Account,
			Databases:   h.Databases,
			ProjectName: config.GetProjectName(),
		})

		cmd.PrintErrln("Starting Appwrite MCP server on stdio...")
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
			return fmt.Errorf("mcp server exited: %w", err)
		}
		return nil
	},
}

func init() {
	McpCmd.AddCommand(serveCmd)
}
