package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout.Duration)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout.Duration)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:5173")
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "incentive.toml", `
[server]
port = 9090
shutdown_timeout = "10s"

[cors]
allowed_origins = ["https://sales.example.com"]

[log]
level = "debug"

[metrics]
enabled = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host, "unset keys keep defaults")
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout.Duration)
	assert.Equal(t, []string{"https://sales.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "incentive.yaml", `
server:
  host: 127.0.0.1
  port: 3000
  read_timeout: 5s
log:
  level: warn
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout.Duration)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "incentive.json", `{}`))
	assert.ErrorContains(t, err, "unsupported extension")

	_, err = Load(writeFile(t, "bad.toml", "[server]\nshutdown_timeout = \"soon\"\n"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("INCENTIVE_PORT", "7070")
	t.Setenv("INCENTIVE_LOG_LEVEL", "error")
	t.Setenv("INCENTIVE_METRICS_ENABLED", "false")
	t.Setenv("INCENTIVE_CORS_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(filepath.Join(t.TempDir(), ".env")))

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestApplyEnv_DotEnvFile(t *testing.T) {
	// godotenv never overrides variables that are already set
	require.NoError(t, os.Unsetenv("INCENTIVE_HOST"))
	t.Cleanup(func() { os.Unsetenv("INCENTIVE_HOST") })
	envFile := writeFile(t, ".env", "INCENTIVE_HOST=10.0.0.5\n")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(envFile))
	assert.Equal(t, "10.0.0.5", cfg.Server.Host)
}

func TestApplyEnv_BadPort(t *testing.T) {
	t.Setenv("INCENTIVE_PORT", "eighty")
	cfg := Default()
	assert.Error(t, cfg.ApplyEnv(""))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Log.Level = "chatty"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Server.IdleTimeout = Duration{}
	assert.Error(t, cfg.Validate())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
