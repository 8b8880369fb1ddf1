package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all sandboxes (best-effort)",
	Long: `Delete all sandboxes owned by the API key.

Deletion failures for individual sandboxes are skipped so that one
stuck sandbox does not prevent the rest from being removed.`,
	Args: cobra.NoArgs,
	RunE: runPrune,
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}

func runPrune(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	deleted, err := client.DeleteAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to prune sandboxes: %w", err)
	}

	if len(deleted) == 0 {
		logInfo("Nothing to delete")
		return nil
	}

	for _, id := range deleted {
		logSuccess("Deleted sandbox %s", id)
	}
	logInfo("Deleted %d sandboxes", len(deleted))
	return nil
}
