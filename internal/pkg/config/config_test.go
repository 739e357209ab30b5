//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)

	return path
}

func TestInitializeConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `
port: "9090"
database:
  type: sqlite
  dsn: local.db
logger:
  log_level: debug
  log_type: console
`)

	cfg, err := InitializeConfig(path)
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, SqliteDbType, cfg.Database.Type)
	require.Equal(t, "local.db", cfg.Database.DSN)
	require.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
}

func TestInitializeConfig_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
logger:
  log_level: info
  log_type: console
`)

	cfg, err := InitializeConfig(path)
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, SqliteDbType, cfg.Database.Type)
	require.Equal(t, "local.db", cfg.Database.DSN)
}

func TestInitializeConfig_InvalidSettings(t *testing.T) {
	path := writeConfigFile(t, `
database:
  type: mysql
  dsn: whatever
logger:
  log_level: info
  log_type: console
`)

	_, err := InitializeConfig(path)
	require.Error(t, err)
}

func TestInitializeConfig_MissingFile(t *testing.T) {
	_, err := InitializeConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}
