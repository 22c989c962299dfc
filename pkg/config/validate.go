// Package config loads and validates the login probe configuration.
package config

import (
	"fmt"
	"strings"
)

// ValidateCore ensures the login target and credentials are present.
func (c *Config) ValidateCore() error {
	var missing []string

	if strings.TrimSpace(c.Login.URL) == "" {
		missing = append(missing, "LOGIN_URL")
	}
	if strings.TrimSpace(c.Login.Username) == "" {
		missing = append(missing, "LOGIN_USERNAME")
	}
	if strings.TrimSpace(c.Login.Password) == "" {
		missing = append(missing, "LOGIN_PASSWORD")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return nil
}
