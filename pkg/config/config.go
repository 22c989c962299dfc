// ==============================================================================
// CONFIG PACKAGE - pkg/config/config.go
// ==============================================================================
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultLoginURL = "http://localhost:5004/api/auth/login"
	DefaultUsername = "1224"
	DefaultPassword = "5ji6gj94"
)

type Config struct {
	Login LoginConfig
	Log   LogConfig
}

type LoginConfig struct {
	URL      string
	Username string
	Password string
}

type LogConfig struct {
	Level string
}

// Load returns the fixed login target. Environment values only override
// the defaults when set, so an empty environment yields the literals above.
func Load() *Config {
	return &Config{
		Login: LoginConfig{
			URL:      getEnv("LOGIN_URL", DefaultLoginURL),
			Username: getEnv("LOGIN_USERNAME", DefaultUsername),
			Password: getEnv("LOGIN_PASSWORD", DefaultPassword),
		},
		Log: LogConfig{
			Level: strings.ToLower(getEnv("LOG_LEVEL", "warn")),
		},
	}
}

// LoadEnvFile reads the first .env found in paths into the process
// environment. Variables already set are left untouched.
func LoadEnvFile(paths ...string) bool {
	if len(paths) == 0 {
		paths = []string{".env", "../../.env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err == nil {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
