// Root command for the smops CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/smops/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagInputDir  string
	flagOutputDir string
	flagJSON      bool
	flagNoHistory bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configInputDir       string
	configOutputDir      string
	configDataDir        string
	configHistoryEnabled bool
)

var rootCmd = &cobra.Command{
	Use:     "smops",
	Short:   "Smops operates on sparse matrices stored as text files",
	Version: version,
	Long: `Smops loads integer sparse matrices from the plain-text format
(rows=/cols= header followed by "(row, col, value)" entries), performs
addition, subtraction, or multiplication, and saves the result in the
same format.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configInputDir = cfg.GetString(cfgKeyInputDir)
		configOutputDir = cfg.GetString(cfgKeyOutputDir)
		configDataDir = cfg.GetString(cfgKeyHistoryDataDir)
		configHistoryEnabled = cfg.GetBool(cfgKeyHistoryEnabled)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "history data directory (default: platform data dir)")
	rootCmd.PersistentFlags().StringVar(&flagInputDir, "input-dir", "", "directory matrix file arguments resolve against (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&flagOutputDir, "output-dir", "", "directory result files are written to (default: current directory)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "do not record this operation in the history journal")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(mulCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > SMOPS_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the history data directory: --data-dir flag >
// config.yaml history.data_dir > SMOPS_DATA_DIR env > platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveInputDir returns the directory operand arguments resolve against.
func resolveInputDir() (string, error) {
	return paths.ResolveWorkDir(flagInputDir, configInputDir, paths.EnvInputDir)
}

// resolveOutputDir returns the directory result files are written to.
func resolveOutputDir() (string, error) {
	return paths.ResolveWorkDir(flagOutputDir, configOutputDir, paths.EnvOutputDir)
}

// historyEnabled reports whether this invocation should journal operations.
func historyEnabled() bool {
	return configHistoryEnabled && !flagNoHistory
}
