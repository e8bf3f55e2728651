// Sub command: element-wise difference of two matrices.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/smops/pkg/sparse"
)

var subCmd = &cobra.Command{
	Use:   "sub FILE1 FILE2",
	Short: "Subtract the second sparse matrix from the first",
	Long: `Sub loads both matrix files, computes FILE1 - FILE2 element-wise, and
saves the result. Both matrices must have the same dimensions.

Example:
  smops sub easy_sample_03_1.txt easy_sample_03_2.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runOp("sub", sparse.Sub),
}

func init() {
	subCmd.Flags().StringVar(&flagOut, "out", "", "result file path (default: constructed from operand names)")
}
