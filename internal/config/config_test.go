package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
		viper.Reset()
	})
	require.NoError(t, os.Chdir(tmpDir))
	viper.Reset()
	return tmpDir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg := Load()
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "debug", cfg.Server.Mode)
	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.Equal(t, 24, cfg.JWT.ExpireHours)
	require.True(t, cfg.Redis.Enabled)
	require.Equal(t, "sara", cfg.Redis.Prefix)
	require.True(t, cfg.Queue.Enabled)
	require.Equal(t, 10, cfg.Queue.Concurrency)
	require.Equal(t, 5, cfg.Security.LoginRateLimit.MaxAttempts)
	require.Contains(t, cfg.CORS.AllowedHeaders, "X-Station")
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := chdirTemp(t)

	yaml := `
server:
  port: "9090"
  mode: release
database:
  driver: postgres
  dsn: "host=db user=sara dbname=sara"
jwt:
  secret: a-long-enough-secret-key-for-release-mode
  expire_hours: 8
queue:
  enabled: false
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte(yaml), 0o644))

	cfg := Load()
	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, "release", cfg.Server.Mode)
	require.Equal(t, "postgres", cfg.Database.Driver)
	require.Equal(t, 8, cfg.JWT.ExpireHours)
	require.False(t, cfg.Queue.Enabled)
	// Unset keys keep their defaults.
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 300, cfg.Security.LoginRateLimit.WindowSeconds)
}
