package main

import (
	"fmt"
	"os"
	"time"

	dev2cloud "github.com/dev2cloud/client-go"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "d2c",
	Short: "Dev2Cloud sandbox management CLI",
	Long: `d2c manages ephemeral database sandboxes on Dev2Cloud.

Sandboxes are remotely provisioned Postgres or Redis instances with
connection credentials issued once they are running.

Authentication uses the D2C_API_KEY environment variable (a .env file
in the working directory is loaded if present). D2C_URL overrides the
API endpoint.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// newClient builds an SDK client from the environment.
func newClient() (*dev2cloud.Client, error) {
	// Load .env if present; a missing file is fine.
	_ = godotenv.Load()

	apiKey := os.Getenv("D2C_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("D2C_API_KEY is not set")
	}

	opts := []dev2cloud.Option{}
	if baseURL := os.Getenv("D2C_URL"); baseURL != "" {
		opts = append(opts, dev2cloud.WithBaseURL(baseURL))
	}
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		opts = append(opts, dev2cloud.WithLogger(logger))
	}

	return dev2cloud.New(apiKey, opts...)
}

// formatAge renders a creation timestamp as a compact age, e.g. "3m" or "2h".
func formatAge(createdAt time.Time) string {
	age := time.Since(createdAt)
	switch {
	case age < time.Minute:
		return fmt.Sprintf("%ds", int(age.Seconds()))
	case age < time.Hour:
		return fmt.Sprintf("%dm", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd", int(age.Hours()/24))
	}
}

// Helper functions for consistent output

func logInfo(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, "ℹ "+format+"\n", args...)
}

func logSuccess(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, "✓ "+format+"\n", args...)
}

func logWarning(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "⚠ "+format+"\n", args...)
}
