package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LOGIN_URL", "")
	t.Setenv("LOGIN_USERNAME", "")
	t.Setenv("LOGIN_PASSWORD", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()
	assert.Equal(t, "http://localhost:5004/api/auth/login", cfg.Login.URL)
	assert.Equal(t, "1224", cfg.Login.Username)
	assert.Equal(t, "5ji6gj94", cfg.Login.Password)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LOGIN_URL", "http://127.0.0.1:9000/api/auth/login")
	t.Setenv("LOGIN_USERNAME", "alice")
	t.Setenv("LOGIN_PASSWORD", "secret")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := Load()
	assert.Equal(t, "http://127.0.0.1:9000/api/auth/login", cfg.Login.URL)
	assert.Equal(t, "alice", cfg.Login.Username)
	assert.Equal(t, "secret", cfg.Login.Password)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvFile(t *testing.T) {
	// godotenv skips keys already present, even when empty.
	t.Setenv("LOGIN_USERNAME", "")
	require.NoError(t, os.Unsetenv("LOGIN_USERNAME"))
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOGIN_USERNAME=from-file\n"), 0o600))

	assert.False(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	assert.True(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", Load().Login.Username)
}

func TestValidateCore(t *testing.T) {
	cfg := &Config{Login: LoginConfig{
		URL:      DefaultLoginURL,
		Username: DefaultUsername,
		Password: DefaultPassword,
	}}
	assert.NoError(t, cfg.ValidateCore())

	cfg.Login.Username = "  "
	cfg.Login.Password = ""
	assert.EqualError(t, cfg.ValidateCore(), "missing required configuration: LOGIN_USERNAME, LOGIN_PASSWORD")
}
