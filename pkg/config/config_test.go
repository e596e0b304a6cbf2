package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nucleus/cnm-core/pkg/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	require.Equal(t, "localhost:8080", cfg.ListenAddr)
	require.Equal(t, 100, cfg.ReportInterval)
	require.True(t, cfg.LogProgress)
}

func TestLoadReadsEnvOverrides(t *testing.T) {
	t.Setenv("CNM_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("CNM_REPORT_INTERVAL", "250")
	t.Setenv("CNM_LOG_PROGRESS", "false")

	cfg := config.Load()
	require.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	require.Equal(t, 250, cfg.ReportInterval)
	require.False(t, cfg.LogProgress)
}

func TestLoadIgnoresInvalidIntEnv(t *testing.T) {
	t.Setenv("CNM_REPORT_INTERVAL", "not-an-int")
	cfg := config.Load()
	require.Equal(t, 100, cfg.ReportInterval)
}

func TestLoadWithOverrideFileAppliesPartialOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listenAddr: 127.0.0.1:7000\nasyncJobWorkers: 8\n"), 0o644))

	cfg, err := config.LoadWithOverrideFile(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:7000", cfg.ListenAddr)
	require.Equal(t, 8, cfg.AsyncJobWorkers)
	require.Equal(t, 100, cfg.ReportInterval) // untouched by the override file
}

func TestLoadWithOverrideFileEmptyPathIsNoop(t *testing.T) {
	cfg, err := config.LoadWithOverrideFile("")
	require.NoError(t, err)
	require.Equal(t, config.Load().ListenAddr, cfg.ListenAddr)
}

func TestLoadWithOverrideFileMissingFileErrors(t *testing.T) {
	_, err := config.LoadWithOverrideFile("/nonexistent/path.yaml")
	require.Error(t, err)
}
