// Shared machinery for the add, sub, and mul commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/smops/internal/history"
	"github.com/mesh-intelligence/smops/internal/paths"
	"github.com/mesh-intelligence/smops/pkg/sparse"
)

// flagOut overrides the constructed result file name.
var flagOut string

// opFunc is one of the sparse arithmetic operations.
type opFunc func(a, b *sparse.Matrix) (*sparse.Matrix, error)

// opResult is the summary printed after a successful operation.
type opResult struct {
	Op         string `json:"op"`
	LeftPath   string `json:"left_path"`
	RightPath  string `json:"right_path"`
	ResultPath string `json:"result_path"`
	Rows       int    `json:"rows"`
	Cols       int    `json:"cols"`
	NNZ        int    `json:"nnz"`
}

// executeOp loads both operand files, applies fn, and saves the result.
func executeOp(fn opFunc, leftPath, rightPath, resultPath string) (*sparse.Matrix, error) {
	a, err := sparse.Load(leftPath)
	if err != nil {
		return nil, err
	}
	b, err := sparse.Load(rightPath)
	if err != nil {
		return nil, err
	}
	result, err := fn(a, b)
	if err != nil {
		return nil, err
	}
	if err := sparse.Save(result, resultPath); err != nil {
		return nil, err
	}
	return result, nil
}

// runOp resolves the operand and result paths, executes the operation, and
// reports it. The history journal is written only after the result file is
// on disk, and a journal failure degrades to a warning.
func runOp(op string, fn opFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		inputDir, err := resolveInputDir()
		if err != nil {
			return fmt.Errorf("resolve input dir: %w", err)
		}
		leftPath := paths.ResolveOperand(inputDir, args[0])
		rightPath := paths.ResolveOperand(inputDir, args[1])

		resultPath := flagOut
		if resultPath == "" {
			outputDir, err := resolveOutputDir()
			if err != nil {
				return fmt.Errorf("resolve output dir: %w", err)
			}
			resultPath = paths.ResolveOperand(outputDir, paths.ResultFilename(args[0], args[1]))
		}

		result, err := executeOp(fn, leftPath, rightPath, resultPath)
		if err != nil {
			return err
		}

		if historyEnabled() {
			recordOp(history.Record{
				Op:         op,
				LeftPath:   leftPath,
				RightPath:  rightPath,
				ResultPath: resultPath,
				ResultRows: result.Rows(),
				ResultCols: result.Cols(),
				ResultNNZ:  result.Len(),
			})
		}

		summary := opResult{
			Op:         op,
			LeftPath:   leftPath,
			RightPath:  rightPath,
			ResultPath: resultPath,
			Rows:       result.Rows(),
			Cols:       result.Cols(),
			NNZ:        result.Len(),
		}
		if flagJSON {
			out, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal result: %w", err)
			}
			fmt.Println(string(out))
		} else {
			fmt.Printf("Operation successful. Result saved to %s\n", resultPath)
		}
		return nil
	}
}

// recordOp appends one record to the journal. Failures must not fail the
// operation: the result file is already written, so only warn.
func recordOp(r history.Record) {
	dataDir, err := resolveDataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history not recorded: %v\n", err)
		return
	}
	store, err := history.Open(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history not recorded: %v\n", err)
		return
	}
	defer store.Close()

	if _, err := store.Record(r); err != nil {
		fmt.Fprintf(os.Stderr, "warning: history not recorded: %v\n", err)
	}
}
