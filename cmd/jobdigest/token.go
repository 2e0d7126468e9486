package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jobdigest/internal/secrets"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the GitHub token in the OS keychain",
}

var tokenSetCmd = &cobra.Command{
	Use:   "set <token>",
	Short: "Store the GitHub token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := secrets.SetGitHubToken(args[0]); err != nil {
			return err
		}
		fmt.Println("token stored")
		return nil
	},
}

var tokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored GitHub token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := secrets.DeleteGitHubToken(); err != nil {
			return err
		}
		fmt.Println("token removed")
		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenSetCmd, tokenClearCmd)
	rootCmd.AddCommand(tokenCmd)
}
