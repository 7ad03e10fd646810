package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/payline-systems/payline/internal/app/engine"
	"github.com/payline-systems/payline/internal/daemon"
	"github.com/payline-systems/payline/internal/infra/sqlite"
	"github.com/payline-systems/payline/internal/stream"
)

func init() {
	rootCmd.AddCommand(processCmd)
	processCmd.Flags().Int("shards", 0, "Parallel shard workers (overrides config; 1 = sequential)")
	processCmd.Flags().String("export", "", "SQLite path to export the report to (overrides config)")
}

var processCmd = &cobra.Command{
	Use:   "process INPUT_CSV",
	Short: "Process a transaction stream and print the account report",
	Long: `Process a CSV transaction stream and write the final account report to
standard output. The stream aborts on the first fatal error (locked
account misuse, incompatible transaction reuse, resolve/chargeback of a
non-disputed transaction, arithmetic overflow, malformed input); rejected
withdrawals and disputes against unknown transactions are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func runProcess(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := daemon.Load(configPath)
	if err != nil {
		return err
	}

	shards := cfg.Process.Shards
	if n, _ := cmd.Flags().GetInt("shards"); n > 0 {
		shards = n
	}
	exportPath := cfg.Export.Database
	if p, _ := cmd.Flags().GetString("export"); p != "" {
		exportPath = p
	}

	proc, err := processFile(args[0], shards)
	if err != nil {
		return err
	}
	summaries := proc.Summaries()

	if err := stream.WriteSummaries(os.Stdout, summaries); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if exportPath != "" {
		db, err := sqlite.Open(exportPath)
		if err != nil {
			return err
		}
		defer db.Close()
		runID, err := db.ExportReport(args[0], summaries)
		if err != nil {
			return fmt.Errorf("export report: %w", err)
		}
		log.Printf("[cli] report exported run=%s accounts=%d db=%s", runID, len(summaries), exportPath)
	}
	return nil
}

// processFile streams the input through a processor and returns it with
// all work flushed. On a fatal error the partial processor state is
// abandoned with the stream, as the error policy requires.
func processFile(path string, shards int) (engine.Processor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var proc engine.Processor
	if shards > 1 {
		proc = engine.NewShardedProcessor(shards)
	} else {
		proc = engine.NewRegistry()
	}

	drainErr := stream.Drain(f, proc)
	closeErr := proc.Close()
	if drainErr != nil {
		return nil, drainErr
	}
	if closeErr != nil {
		return nil, closeErr
	}
	return proc, nil
}
