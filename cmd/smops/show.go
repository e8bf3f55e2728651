// Show command: pretty-print a matrix file as a dense grid.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/smops/internal/paths"
	"github.com/mesh-intelligence/smops/pkg/sparse"
)

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Print a sparse matrix file as a dense grid",
	Long: `Show loads a matrix file and prints every cell, including zeros, one
row per line. With --json it prints the dimensions and the non-zero
entries instead.

Example:
  smops show easy_sample_03_1.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	inputDir, err := resolveInputDir()
	if err != nil {
		return fmt.Errorf("resolve input dir: %w", err)
	}

	m, err := sparse.Load(paths.ResolveOperand(inputDir, args[0]))
	if err != nil {
		return err
	}

	if flagJSON {
		out, err := json.MarshalIndent(struct {
			Rows    int            `json:"rows"`
			Cols    int            `json:"cols"`
			Entries []sparse.Entry `json:"entries"`
		}{m.Rows(), m.Cols(), m.Entries()}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal matrix: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(m.String())
	return nil
}
