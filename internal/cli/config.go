package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/appwrite/starter-for-vue/internal/config"
)

var configOutputFormat string

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the Appwrite configuration",
	Long:  `Displays the endpoint, project id and project name read from the environment and .env files, and whether they are valid.`,
	// Override PersistentPreRunE so an invalid configuration can still be shown.
	PersistentPreRunE: skipAPIHandles,
	RunE:              runConfig,
}

func init() {
	ConfigCmd.Flags().StringVarP(&configOutputFormat, "output", "o", "table", "Output format (table, json)")
}

type configInfo struct {
	Endpoint    string `json:"endpoint"`
	ProjectID   string `json:"project_id"`
	ProjectName string `json:"project_name"`
	Valid       bool   `json:"valid"`
	Error       string `json:"error,omitempty"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotenv(config.DotenvFiles...); err != nil {
		return err
	}

	info := configInfo{
		Endpoint:    config.GetEndpoint(),
		ProjectID:   config.GetProjectID(),
		ProjectName: config.GetProjectName(),
		Valid:       true,
	}

	cfg, err := config.NewConfig()
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		info.Valid = false
		info.Error = err.Error()
	}

	if configOutputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Printf("Endpoint:        %s\n", orUnset(info.Endpoint))
	fmt.Printf("Project ID:      %s\n", orUnset(info.ProjectID))
	fmt.Printf("Project name:    %s\n", orUnset(info.ProjectName))
	if info.Valid {
		fmt.Println("Configuration:   valid")
	} else {
		fmt.Printf("Configuration:   invalid (%s)\n", info.Error)
	}
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
