package cli

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/payline-systems/payline/internal/api"
	"github.com/payline-systems/payline/internal/daemon"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Int("shards", 0, "Parallel shard workers (overrides config)")
	serveCmd.Flags().String("host", "", "Bind host (overrides config)")
	serveCmd.Flags().Int("port", 0, "Bind port (overrides config)")
}

var serveCmd = &cobra.Command{
	Use:   "serve INPUT_CSV",
	Short: "Process a transaction stream, then serve account snapshots over HTTP",
	Long: `Process a CSV transaction stream and expose the resulting account
snapshots on a read-only HTTP API:

  GET /health
  GET /api/accounts
  GET /api/accounts/{client}
  GET /metrics            (when metrics are enabled)`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := daemon.Load(configPath)
	if err != nil {
		return err
	}

	shards := cfg.Process.Shards
	if n, _ := cmd.Flags().GetInt("shards"); n > 0 {
		shards = n
	}
	host := cfg.API.Host
	if h, _ := cmd.Flags().GetString("host"); h != "" {
		host = h
	}
	port := cfg.API.Port
	if p, _ := cmd.Flags().GetInt("port"); p > 0 {
		port = p
	}

	proc, err := processFile(args[0], shards)
	if err != nil {
		return err
	}

	server := api.NewServer(proc)
	if cfg.Metrics.Enabled {
		server.EnableMetrics()
	}

	addr := fmt.Sprintf("%s:%d", host, port)
	log.Printf("[serve] accounts=%d listening on http://%s", len(proc.Summaries()), addr)
	return http.ListenAndServe(addr, server.Handler())
}
