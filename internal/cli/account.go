package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/appwrite/starter-for-vue/pkg/printer"
)

var accountOutputFormat string

var AccountCmd = &cobra.Command{
	Use:   "account",
	Short: "Inspect the signed-in Appwrite account",
	Long:  `Reads the account that the configured session or JWT belongs to.`,
}

var accountGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current account",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := apiHandles.Account.Get(commandContext(cmd))
		if err != nil {
			return fmt.Errorf("get account: %w", err)
		}

		if accountOutputFormat == "json" {
			return printer.PrintJSON(user)
		}

		fmt.Printf("ID:        %s\n", user.ID)
		fmt.Printf("Name:      %s\n", orUnset(user.Name))
		fmt.Printf("Email:     %s\n", orUnset(user.Email))
		fmt.Printf("Verified:  %t\n", user.EmailVerification)
		fmt.Printf("Created:   %s\n", user.CreatedAt)
		return nil
	},
}

var accountSessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List the sessions of the current account",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := apiHandles.Account.ListSessions(commandContext(cmd))
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		if accountOutputFormat == "json" {
			return printer.PrintJSON(list)
		}

		if len(list.Sessions) == 0 {
			printer.PrintInfo("No sessions found")
			return nil
		}

		rows := make([][]string, 0, len(list.Sessions))
		for _, s := range list.Sessions {
			rows = append(rows, []string{s.ID, s.Provider, s.ClientName, strconv.FormatBool(s.Current), s.Expire})
		}
		return printer.PrintTable([]string{"ID", "Provider", "Client", "Current", "Expires"}, rows)
	},
}

func init() {
	AccountCmd.PersistentFlags().StringVarP(&accountOutputFormat, "output", "o", "table", "Output format (table, json)")
	AccountCmd.AddCommand(accountGetCmd, accountSessionsCmd)
}

