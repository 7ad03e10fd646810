// Package cli implements the payline command line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "payline",
	Short: "Process client payment transaction streams",
	Long: `Payline ingests a chronologically ordered CSV stream of client payment
transactions (deposits, withdrawals, disputes, resolves, chargebacks) and
reports the final state of every client account.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config.toml (default ~/.payline/config.toml)")
}

// Execute runs the CLI. A fatal stream error surfaces here as a non-zero
// exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
