// History command: list journaled operations.
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/smops/internal/history"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded matrix operations, newest first",
	Long: `History lists the operations recorded in the journal: what was
computed, from which files, and where the result went.

Example:
  smops history
  smops history --limit 5 --json`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "maximum number of records to list (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := history.Open(dataDir)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	records, err := store.List(flagHistoryLimit)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if flagJSON {
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal history: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if len(records) == 0 {
		fmt.Println("No operations recorded.")
		return nil
	}
	for _, r := range records {
		fmt.Printf("%s  %-3s  %s  %s -> %s  (%dx%d, %d non-zero)\n",
			r.CreatedAt.Local().Format(time.DateTime), r.Op,
			r.LeftPath, r.RightPath, r.ResultPath,
			r.ResultRows, r.ResultCols, r.ResultNNZ)
	}
	return nil
}
