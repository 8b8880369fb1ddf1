package main

import (
	"fmt"
	"time"

	dev2cloud "github.com/dev2cloud/client-go"
	"github.com/spf13/cobra"
)

var (
	createType    string
	createTimeout time.Duration
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a sandbox and wait for it to be ready",
	Args:  cobra.NoArgs,
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createType, "type", "t", "postgres", "sandbox type (postgres, redis)")
	createCmd.Flags().DurationVar(&createTimeout, "timeout", 180*time.Second, "maximum time to wait for provisioning")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	logInfo("Provisioning %s sandbox...", createType)

	sandbox, err := client.Create(cmd.Context(),
		dev2cloud.WithType(dev2cloud.SandboxType(createType)),
		dev2cloud.WithCreateTimeout(createTimeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create sandbox: %w", err)
	}

	logSuccess("Sandbox %s is %s", sandbox.ID, sandbox.Status)

	if creds := sandbox.Credentials; creds != nil {
		fmt.Printf("  user:     %s\n", creds.User)
		fmt.Printf("  password: %s\n", creds.Password)
		fmt.Printf("  host:     %s\n", creds.Host)
		fmt.Printf("  port:     %d\n", creds.Port)
		if creds.Database != "" {
			fmt.Printf("  database: %s\n", creds.Database)
		}
	}
	if sandbox.URL != "" {
		fmt.Printf("  url:      %s\n", sandbox.URL)
	}

	return nil
}
