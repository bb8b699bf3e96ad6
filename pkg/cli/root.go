package cli

import (
	"github.com/spf13/cobra"

	"github.com/appwrite/starter-for-vue/internal/cli"
	"github.com/appwrite/starter-for-vue/internal/cli/mcp"
	"github.com/appwrite/starter-for-vue/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "appwritectl",
	Short: "Talk to an Appwrite project from the command line",
	Long: `appwritectl reads VITE_APPWRITE_ENDPOINT, VITE_APPWRITE_PROJECT_ID and
VITE_APPWRITE_PROJECT_NAME from the environment or a .env file and uses them
to reach the Appwrite project.`,
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: cli.LoadAPIHandles,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every API request")

	rootCmd.AddCommand(cli.AccountCmd)
	rootCmd.AddCommand(cli.ConfigCmd)
	rootCmd.AddCommand(cli.DocumentsCmd)
	rootCmd.AddCommand(mcp.McpCmd)
	rootCmd.AddCommand(cli.PingCmd)
	rootCmd.AddCommand(cli.StatusCmd)
	rootCmd.AddCommand(cli.VersionCmd)
}

// Root returns the appwritectl command tree.
func Root() *cobra.Command {
	return rootCmd
}
