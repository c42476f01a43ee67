package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvData, EnvOutputDir, EnvAddr, EnvTheme, EnvLogLevel} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	s := FromEnv()
	assert.Equal(t, Settings{
		OutputDir: DefaultOutputDir,
		Addr:      DefaultAddr,
		Theme:     DefaultTheme,
		LogLevel:  DefaultLogLevel,
	}, s)
	assert.Error(t, s.Validate(), "missing data path must fail validation")
}

func TestLoadReadsEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CVDASH_DATA=cv.json\nCVDASH_THEME=nord\nCVDASH_LOG_LEVEL=debug\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cv.json", s.DataPath)
	assert.Equal(t, "nord", s.Theme)
	assert.Equal(t, DefaultAddr, s.Addr)
	require.NoError(t, s.Validate())
}

func TestEnvironmentWinsOverEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvData, "from-env.json")
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CVDASH_DATA=from-file.json\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.json", s.DataPath)
}

func TestLoadIgnoresMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)

	s := Settings{DataPath: "cv.json", LogLevel: "loud"}
	assert.Error(t, s.Validate())
}
