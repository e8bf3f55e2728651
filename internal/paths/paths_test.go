package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/smops", got)
	})

	t.Run("falls back to ~/.config when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "smops"), got)
	})
}

func TestDefaultDataDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_DATA_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
		got, err := DefaultDataDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-data/smops", got)
	})

	t.Run("falls back to ~/.local/share when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultDataDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "share", "smops"), got)
	})
}

func TestResolveConfigDir(t *testing.T) {
	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/env-config")
		got, err := ResolveConfigDir("/tmp/flag-config")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-config", got)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/env-config")
		got, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-config", got)
	})
}

func TestResolveDataDir(t *testing.T) {
	t.Run("flag wins over config value", func(t *testing.T) {
		got, err := ResolveDataDir("/tmp/flag-data", "/tmp/cfg-data")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-data", got)
	})

	t.Run("config value wins over env", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/tmp/env-data")
		got, err := ResolveDataDir("", "/tmp/cfg-data")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/cfg-data", got)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/tmp/env-data")
		got, err := ResolveDataDir("", "")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-data", got)
	})
}

func TestResolveWorkDir(t *testing.T) {
	t.Run("falls back to cwd", func(t *testing.T) {
		t.Setenv(EnvInputDir, "")
		cwd, err := os.Getwd()
		require.NoError(t, err)

		got, err := ResolveWorkDir("", "", EnvInputDir)
		require.NoError(t, err)
		assert.Equal(t, cwd, got)
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv(EnvOutputDir, "/tmp/out")
		got, err := ResolveWorkDir("", "", EnvOutputDir)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/out", got)
	})
}

func TestResolveOperand(t *testing.T) {
	assert.Equal(t, "/data/a.txt", ResolveOperand("/data", "a.txt"))
	assert.Equal(t, "/abs/a.txt", ResolveOperand("/data", "/abs/a.txt"))
}

func TestResultFilename(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"easy_sample_03_1.txt", "easy_sample_03_2.txt", "result_easy_sample_03_1_easy_sample_03_2.txt"},
		{"/inputs/a.txt", "b.txt", "result_a_b.txt"},
		{"noext", "other.matrix.txt", "result_noext_other.txt"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResultFilename(tt.a, tt.b))
	}
}
