package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appwrite/starter-for-vue/internal/version"
	"github.com/appwrite/starter-for-vue/pkg/printer"
)

type VersionOutput struct {
	ClientVersion        string `json:"client_version"`
	GitCommit            string `json:"git_commit"`
	BuildDate            string `json:"build_date"`
	ServerVersion        string `json:"server_version,omitempty"`
	MinServerVersion     string `json:"min_server_version"`
	UpdateRecommendation string `json:"update_recommendation,omitempty"`
}

var jsonOutput bool

var VersionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Show version information",
	Long:              `Displays the version of appwritectl and, when configured, of the Appwrite server.`,
	PersistentPreRunE: tryLoadAPIHandles,
	Run: func(cmd *cobra.Command, args []string) {
		output := VersionOutput{
			ClientVersion:    version.Version,
			GitCommit:        version.GitCommit,
			BuildDate:        version.BuildDate,
			MinServerVersion: version.MinServerVersion,
		}

		var serverErr error
		if apiHandles != nil {
			serverVersion, err := apiHandles.Client.HealthVersion(commandContext(cmd))
			if err == nil {
				output.ServerVersion = serverVersion.Version
				if !version.SupportsServer(serverVersion.Version) {
					output.UpdateRecommendation = fmt.Sprintf(
						"Server version %s is older than the minimum supported %s. Consider updating the server.",
						serverVersion.Version, version.MinServerVersion)
				}
			}
			serverErr = err
		}

		if jsonOutput {
			if err := printer.PrintJSON(output); err != nil {
				fmt.Printf("Error marshaling JSON: %v\n", err)
			}
			return
		}

		fmt.Printf("appwritectl version %s\n", output.ClientVersion)
		fmt.Printf("Git commit: %s\n", output.GitCommit)
		fmt.Printf("Build date: %s\n", output.BuildDate)

		if output.ServerVersion != "" {
			fmt.Printf("Server version: %s\n", output.ServerVersion)

			if output.UpdateRecommendation != "" {
				fmt.Println()
				printer.PrintWarning(output.UpdateRecommendation)
			}
		} else if serverErr != nil {
			fmt.Printf("Error getting server version: %v\n", serverErr)
		}
	},
}

func init() {
	VersionCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version information in JSON format")
}
