// Package paths resolves configuration, data, and matrix directory locations,
// and constructs result file names for matrix operations.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "SMOPS_CONFIG_DIR"
	EnvDataDir   = "SMOPS_DATA_DIR"
	EnvInputDir  = "SMOPS_INPUT_DIR"
	EnvOutputDir = "SMOPS_OUTPUT_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/smops (fallback ~/.config/smops)
// macOS:   ~/Library/Application Support/smops
// Windows: %APPDATA%/smops
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "smops"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "smops"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "smops"), nil
	}
}

// DefaultDataDir returns the platform-specific default data directory, used
// for the operation history database.
//
// Linux:   $XDG_DATA_HOME/smops (fallback ~/.local/share/smops)
// macOS:   ~/Library/Application Support/smops
// Windows: %APPDATA%/smops
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "smops"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "smops"), nil
	default:
		// macOS and Windows: same as config dir.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "smops"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > SMOPS_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the history data directory following the precedence
// chain: flag > config.yaml value > SMOPS_DATA_DIR env > DefaultDataDir().
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultDataDir()
}

// ResolveWorkDir returns a matrix directory (input or output) following the
// precedence chain: flag > config.yaml value > envVar > current directory.
func ResolveWorkDir(flag, configYAMLValue, envVar string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(envVar); env != "" {
		return filepath.Abs(env)
	}
	return os.Getwd()
}

// ResolveOperand turns a matrix file argument into a full path. Relative
// arguments are joined to dir; absolute arguments are used as-is.
func ResolveOperand(dir, arg string) string {
	if filepath.IsAbs(arg) {
		return arg
	}
	return filepath.Join(dir, arg)
}

// ResultFilename builds the output file name for an operation on two operand
// files: "result_<a-stem>_<b-stem>.txt", where a stem is the base name up to
// the first dot.
func ResultFilename(a, b string) string {
	return fmt.Sprintf("result_%s_%s.txt", stem(a), stem(b))
}

func stem(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i >= 0 {
		return base[:i]
	}
	return base
}
