package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	internalclient "github.com/appwrite/starter-for-vue/internal/client"
	"github.com/appwrite/starter-for-vue/internal/config"
	"github.com/appwrite/starter-for-vue/internal/version"
	"github.com/appwrite/starter-for-vue/pkg/client"
	"github.com/appwrite/starter-for-vue/pkg/printer"
)

var statusOutputFormat string

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the status of the Appwrite project",
	Long:  `Displays the configured endpoint and project, whether the API is reachable, the server version and who the client is signed in as.`,
	// Override PersistentPreRunE so a missing configuration is reported, not fatal.
	PersistentPreRunE: skipAPIHandles,
	RunE:              runStatus,
}

func init() {
	StatusCmd.Flags().StringVarP(&statusOutputFormat, "output", "o", "table", "Output format (table, json)")
}

type statusInfo struct {
	Endpoint    string `json:"endpoint"`
	Project     string `json:"project"`
	ProjectName string `json:"project_name,omitempty"`
	API         string `json:"api"`
	Version     string `json:"version,omitempty"`
	Supported   bool   `json:"supported"`
	Account     string `json:"account"`
	Error       string `json:"error,omitempty"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	info := statusInfo{API: "unreachable", Account: "unknown"}

	cfg, err := loadStatusConfig()
	info.Endpoint = cfg.Endpoint
	info.Project = cfg.ProjectID
	info.ProjectName = cfg.ProjectName

	switch {
	case err != nil:
		info.API = "not configured"
		info.Error = err.Error()
	case info.Endpoint == "" || info.Project == "":
		info.API = "not configured"
	default:
		checkServer(commandContext(cmd), cfg, &info)
	}

	if statusOutputFormat == "json" {
		return printer.PrintJSON(info)
	}

	fmt.Printf("appwritectl:     %s\n", version.Version)
	fmt.Printf("Endpoint:        %s\n", orUnset(info.Endpoint))
	fmt.Printf("Project:         %s\n", orUnset(info.Project))
	if info.ProjectName != "" {
		fmt.Printf("Project name:    %s\n", info.ProjectName)
	}
	fmt.Printf("API:             %s\n", info.API)
	if info.Error != "" {
		fmt.Printf("Error:           %s\n", info.Error)
	}
	if info.Version != "" {
		fmt.Printf("Server version:  %s\n", info.Version)
		if !info.Supported {
			fmt.Printf("                 (older than the minimum supported %s)\n", version.MinServerVersion)
		}
	}
	if info.API == "ok" {
		fmt.Printf("Account:         %s\n", info.Account)
	}

	return nil
}

// loadStatusConfig reads dotenv files and the environment without
// validating, so status can describe an incomplete configuration. On error
// the returned config still carries the raw accessor values.
func loadStatusConfig() (*config.Config, error) {
	err := config.LoadDotenv(config.DotenvFiles...)
	if err == nil {
		var cfg *config.Config
		if cfg, err = config.NewConfig(); err == nil {
			return cfg, nil
		}
	}
	return &config.Config{
		Endpoint:    config.GetEndpoint(),
		ProjectID:   config.GetProjectID(),
		ProjectName: config.GetProjectName(),
	}, err
}

func checkServer(ctx context.Context, cfg *config.Config, info *statusInfo) {
	// No retries here: status reports what it sees right now.
	h := client.NewFromConfig(cfg, client.WithLogger(logger), client.WithRetryMax(0))

	if _, err := h.Client.Ping(ctx); err != nil {
		info.Error = err.Error()
		return
	}
	info.API = "ok"

	if ver, err := h.Client.HealthVersion(ctx); err == nil {
		info.Version = ver.Version
		info.Supported = version.SupportsServer(ver.Version)
	}

	user, err := h.Account.Get(ctx)
	switch {
	case err == nil:
		info.Account = user.Email
		if info.Account == "" {
			info.Account = user.ID
		}
	case internalclient.IsUnauthorized(err):
		info.Account = "guest"
	}
}
