// Version command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the CLI version string, also exposed via --version.
const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("smops v%s\n", version)
	},
}
