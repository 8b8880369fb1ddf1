package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <sandbox-id>",
	Short: "Permanently delete a sandbox",
	Long: `Permanently delete a sandbox.

This action is irreversible. Connection credentials are revoked
immediately.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	if err := client.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete sandbox: %w", err)
	}

	logSuccess("Deleted sandbox %s", args[0])
	return nil
}
