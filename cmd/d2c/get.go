package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <sandbox-id>",
	Short: "Show one sandbox",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	sandbox, err := client.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get sandbox: %w", err)
	}

	fmt.Printf("id:      %s\n", sandbox.ID)
	fmt.Printf("type:    %s\n", sandbox.Type)
	fmt.Printf("status:  %s\n", sandbox.Status)
	fmt.Printf("created: %s (%s ago)\n", sandbox.CreatedAt.Format(time.RFC3339), formatAge(sandbox.CreatedAt))
	if sandbox.URL != "" {
		fmt.Printf("url:     %s\n", sandbox.URL)
	}

	return nil
}
