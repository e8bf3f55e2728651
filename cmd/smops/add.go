// Add command: element-wise sum of two matrices.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/smops/pkg/sparse"
)

var addCmd = &cobra.Command{
	Use:   "add FILE1 FILE2",
	Short: "Add two sparse matrices",
	Long: `Add loads both matrix files, computes their element-wise sum, and
saves the result. Both matrices must have the same dimensions.

Relative file arguments resolve against the input directory. The result is
written to result_<file1>_<file2>.txt in the output directory unless --out
is given.

Example:
  smops add easy_sample_03_1.txt easy_sample_03_2.txt
  smops add a.txt b.txt --out sum.txt --json`,
	Args: cobra.ExactArgs(2),
	RunE: runOp("add", sparse.Add),
}

func init() {
	addCmd.Flags().StringVar(&flagOut, "out", "", "result file path (default: constructed from operand names)")
}
