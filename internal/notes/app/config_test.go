package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"CONFIG_FILE", "ENV", "LOG_LEVEL", "LOG_FORMAT", "PORT", "SHUTDOWN_GRACE_PERIOD",
	"HOUSEKEEPING_INTERVAL", "STORE_DRIVER", "DATABASE_FILE", "MONGO_URI", "MONGO_DATABASE",
	"JWT_SECRET", "JWT_ISSUER", "ACCESS_TOKEN_TTL", "AUTH_REQUIRED", "TRUST_PROXY",
	"LOGIN_LIMIT_REQUESTS", "LOGIN_LIMIT_WINDOW", "EVENT_LOG_FILE",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.Equal(t, 3500, cfg.Port)
	require.Equal(t, DriverSQLite, cfg.StoreDriver)
	require.Equal(t, "logs/errLog.log", cfg.EventLogFile)
	require.Equal(t, 5, cfg.LoginLimitRequests)
	require.Equal(t, time.Minute, cfg.LoginLimitWindow)
	require.False(t, cfg.TrustProxy)
}

func TestLoadConfigPrecedence(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "notes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 4000
store_driver: mongo
mongo_database: fromfile
login_limit_window: 30s
auth_required: true
trust_proxy: true
`), 0o600))

	t.Setenv("MONGO_DATABASE", "fromenv")
	t.Setenv("LOGIN_LIMIT_REQUESTS", "3")
	t.Setenv("ACCESS_TOKEN_TTL", "90")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 4000, cfg.Port)
	require.Equal(t, DriverMongo, cfg.StoreDriver)
	require.Equal(t, "fromenv", cfg.MongoDatabase)
	require.Equal(t, 30*time.Second, cfg.LoginLimitWindow)
	require.Equal(t, 3, cfg.LoginLimitRequests)
	require.Equal(t, 90*time.Second, cfg.AccessTokenTTL)
	require.True(t, cfg.AuthRequired)
	require.True(t, cfg.TrustProxy)

	t.Setenv("TRUST_PROXY", "false")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	require.False(t, cfg.TrustProxy)
}

func TestLoadConfigFromConfigFileEnv(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "notes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 4100\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, 4100, cfg.Port)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown driver": {"STORE_DRIVER": "postgres"},
		"short secret":   {"JWT_SECRET": "short"},
		"bad port":       {"PORT": "70000"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig("")
			require.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		clearConfigEnv(t)
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
