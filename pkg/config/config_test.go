package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp keeps a stray .env in the package directory from leaking into tests.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv(configPathEnv, "")

	cfg := Load()

	assert.Equal(t, "5050", cfg.ServerPort)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, "*", cfg.AllowedOrigin)
	assert.False(t, cfg.TracingEnabled)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "content-api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
serverPort: "9000"
staticDir: /srv/static
tracingEnabled: true
assetMissLogInterval: 3
shutdownTimeout: 5s
`), 0o644))

	t.Setenv(configPathEnv, path)
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("SHUTDOWN_TIMEOUT", "30")

	cfg := Load()

	assert.Equal(t, "7000", cfg.ServerPort, "env wins over file")
	assert.Equal(t, "/srv/static", cfg.StaticDir)
	assert.True(t, cfg.TracingEnabled)
	assert.Equal(t, 3, cfg.AssetMissLogInterval)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CORS_ALLOWED_ORIGIN=https://app.example.com\n"), 0o644))
	t.Setenv(configPathEnv, "")
	// godotenv never overrides variables that are already set
	t.Setenv("CORS_ALLOWED_ORIGIN", "")
	require.NoError(t, os.Unsetenv("CORS_ALLOWED_ORIGIN"))

	cfg := Load()

	assert.Equal(t, "https://app.example.com", cfg.AllowedOrigin)
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv(configPathEnv, "/nonexistent/content-api.yaml")

	cfg := Load()

	assert.Equal(t, "5050", cfg.ServerPort)
}

func TestGetEnvHelpers_IgnoreInvalid(t *testing.T) {
	t.Setenv("X_INT", "abc")
	t.Setenv("X_BOOL", "maybe")
	t.Setenv("X_DUR", "soon")

	assert.Equal(t, 4, getIntEnv("X_INT", 4))
	assert.True(t, getBoolEnv("X_BOOL", true))
	assert.Equal(t, time.Minute, getDurationEnv("X_DUR", time.Minute))
}
