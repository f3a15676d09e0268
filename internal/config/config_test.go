package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every AUTHAPI_ env var that Load() reads.
var allConfigKeys = []string{
	"AUTHAPI_SERVER_HOST",
	"AUTHAPI_SERVER_PORT",
	"AUTHAPI_SERVER_SHUTDOWN_TIMEOUT",
	"AUTHAPI_ROUTING_STRICT",
	"AUTHAPI_STORAGE_DRIVER",
	"AUTHAPI_STORAGE_PATH",
	"AUTHAPI_STORAGE_SQLITE_PATH",
	"AUTHAPI_LOG_LEVEL",
	"AUTHAPI_LOG_FILE",
}

// isolateConfigEnv unsets all AUTHAPI_ env vars for the duration of a test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o600))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.Routing.Strict)
	assert.Equal(t, DriverJSON, cfg.Storage.Driver)
	assert.Equal(t, DefaultDataPath(), cfg.Storage.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}

func TestLoad_FromFile(t *testing.T) {
	isolateConfigEnv(t)
	dir := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 9090
  shutdown_timeout: 3s
routing:
  strict: true
storage:
  driver: SQLite
  sqlite_path: /tmp/users.db
log:
  level: debug
  file: /tmp/authapi.log
`)

	cfg, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.Routing.Strict)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/users.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/authapi.log", cfg.Log.File)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolateConfigEnv(t)
	dir := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("AUTHAPI_SERVER_PORT", "7070")
	t.Setenv("AUTHAPI_STORAGE_PATH", "/data/userData.json")

	cfg, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "/data/userData.json", cfg.Storage.Path)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"port_out_of_range", "server:\n  port: 70000\n", "invalid server.port"},
		{"unknown_driver", "storage:\n  driver: redis\n", "unknown storage.driver"},
		{"zero_shutdown_timeout", "server:\n  shutdown_timeout: 0s\n", "invalid server.shutdown_timeout"},
		{"malformed_yaml", "server: [\n", "read config"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isolateConfigEnv(t)
			_, err := Load(writeConfig(t, tc.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
