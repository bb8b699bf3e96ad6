package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/appwrite/starter-for-vue/internal/config"
	"github.com/appwrite/starter-for-vue/internal/logging"
	"github.com/appwrite/starter-for-vue/pkg/client"
)

var (
	apiHandles *client.Handles
	logger     = zap.NewNop()
)

// SetAPIHandles sets the handles used by commands. Tests use it to point the
// CLI at a fake server.
func SetAPIHandles(h *client.Handles) {
	apiHandles = h
}

// APIHandles returns the handles set by SetAPIHandles or LoadAPIHandles.
func APIHandles() *client.Handles {
	return apiHandles
}

// SetLogger sets the logger passed to clients built by the CLI.
func SetLogger(l *zap.Logger) {
	logger = l
}

// EnableVerboseLogging switches request logging on, honouring the LOG_*
// sampling settings.
func EnableVerboseLogging() error {
	cfg, err := logging.LoadEventLoggingConfig()
	if err != nil {
		return err
	}
	logging.Configure(cfg)
	SetLogger(logging.NewLogger("appwritectl"))
	return nil
}

// setupLogging turns on request logging when the inherited --verbose flag is
// set.
func setupLogging(cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}
	if v, err := cmd.Flags().GetBool("verbose"); err != nil || !v {
		return nil
	}
	return EnableVerboseLogging()
}

// skipAPIHandles is the pre-run hook of commands that build their own client
// or none at all.
func skipAPIHandles(cmd *cobra.Command, args []string) error {
	return setupLogging(cmd)
}

// LoadAPIHandles builds handles from the environment unless already set.
// Commands that talk to the API run it as their pre-run hook.
func LoadAPIHandles(cmd *cobra.Command, args []string) error {
	if err := setupLogging(cmd); err != nil {
		return err
	}
	if apiHandles != nil {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("appwrite is not configured: %w", err)
	}
	apiHandles = client.NewFromConfig(cfg, client.WithLogger(logger))
	return nil
}

// tryLoadAPIHandles is LoadAPIHandles for commands that still work without a
// valid configuration.
func tryLoadAPIHandles(cmd *cobra.Command, args []string) error {
	_ = LoadAPIHandles(cmd, args)
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
