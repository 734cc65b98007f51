package config

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// MinSessionSecretLength is the shortest accepted session secret.
const MinSessionSecretLength = 32

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Session.Secret) < MinSessionSecretLength {
		return fmt.Errorf("session.secret must be at least %d characters (got %d)", MinSessionSecretLength, len(c.Session.Secret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in %d..%d (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Auth.LoginRatePerMinute <= 0 {
		return fmt.Errorf("auth.login_rate_per_minute must be > 0 (got %d)", c.Auth.LoginRatePerMinute)
	}

	if c.Audit.RetentionDays <= 0 {
		return fmt.Errorf("audit.retention_days must be > 0 (got %d)", c.Audit.RetentionDays)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

// SecureCookies reports whether session cookies carry the Secure flag.
func (c *Config) SecureCookies() bool {
	return !c.Server.Debug
}

func itoa(i int) string { return strconv.Itoa(i) }
