package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/appwrite/starter-for-vue/pkg/printer"
)

const waitAttempts = 30

var (
	pingWait     bool
	pingAttempts int
	pingInterval time.Duration
)

var PingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Send a ping to the Appwrite project",
	Long:  `Checks that the configured endpoint is reachable and the project exists. With --wait or --attempts, keeps retrying until the server answers.`,
	RunE:  runPing,
}

func init() {
	PingCmd.Flags().BoolVar(&pingWait, "wait", false, fmt.Sprintf("Wait for the server to come up (up to %d attempts unless --attempts is set)", waitAttempts))
	PingCmd.Flags().IntVar(&pingAttempts, "attempts", 1, "Number of attempts before giving up")
	PingCmd.Flags().DurationVar(&pingInterval, "interval", 2*time.Second, "Wait between attempts")
}

func runPing(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	c := apiHandles.Client

	attempts := pingAttempts
	if pingWait && !cmd.Flags().Changed("attempts") {
		attempts = waitAttempts
	}
	if attempts > 1 {
		if err := c.WaitReady(ctx, attempts, pingInterval); err != nil {
			return err
		}
	}

	start := time.Now()
	resp, err := c.Ping(ctx)
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	printer.PrintSuccess(fmt.Sprintf("%s (%s) answered %q in %s", c.Endpoint(), c.Project(), resp, time.Since(start).Round(time.Millisecond)))
	return nil
}
