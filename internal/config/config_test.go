package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, BackendSQLite, cfg.Storage.Backend)
	require.Equal(t, time.Second, cfg.Auth.LoginDelay)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  backend: redis
  namespace: "staging:"
redis:
  addr: cache:6379
auth:
  login_delay: 250ms
mock:
  seed: 9
`), 0o644))

	t.Setenv("SHIELDDASH_CONFIG_PATH", path)
	t.Setenv("SHIELDDASH_REDIS_DB", "2")
	t.Setenv("SHIELDDASH_SIGNUP_DELAY", "0s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, BackendRedis, cfg.Storage.Backend)
	require.Equal(t, "staging:", cfg.Storage.Namespace)
	require.Equal(t, "cache:6379", cfg.Redis.Addr)
	require.Equal(t, 2, cfg.Redis.DB)
	require.Equal(t, 250*time.Millisecond, cfg.Auth.LoginDelay)
	require.Zero(t, cfg.Auth.SignupDelay)
	require.Equal(t, uint64(9), cfg.Mock.Seed)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"backend", "SHIELDDASH_STORAGE_BACKEND", "postgres"},
		{"redis db", "SHIELDDASH_REDIS_DB", "two"},
		{"login delay", "SHIELDDASH_LOGIN_DELAY", "soon"},
		{"negative delay", "SHIELDDASH_SIGNUP_DELAY", "-1s"},
		{"seed", "SHIELDDASH_MOCK_SEED", "-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("SHIELDDASH_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := Load()
	require.Error(t, err)
}
