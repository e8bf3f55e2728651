// Mul command: matrix product of two matrices.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/smops/pkg/sparse"
)

var mulCmd = &cobra.Command{
	Use:   "mul FILE1 FILE2",
	Short: "Multiply two sparse matrices",
	Long: `Mul loads both matrix files, computes the matrix product FILE1 x FILE2,
and saves the result. The column count of FILE1 must equal the row count
of FILE2; the result is rows(FILE1) x cols(FILE2).

Example:
  smops mul easy_sample_03_1.txt easy_sample_03_2.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runOp("mul", sparse.Mul),
}

func init() {
	mulCmd.Flags().StringVar(&flagOut, "out", "", "result file path (default: constructed from operand names)")
}
