// Package main provides the smops CLI: load two sparse matrices from text
// files, add, subtract, or multiply them, and write the result back in the
// same format.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mesh-intelligence/smops/pkg/sparse"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode classifies an error: bad input files, bad indices, and shape
// mismatches are user errors; everything else is a system error.
func exitCode(err error) int {
	switch {
	case errors.Is(err, sparse.ErrBadFormat),
		errors.Is(err, sparse.ErrDimensionMismatch),
		errors.Is(err, sparse.ErrIndexOutOfRange),
		errors.Is(err, fs.ErrNotExist):
		return exitUserError
	default:
		return exitSysError
	}
}
