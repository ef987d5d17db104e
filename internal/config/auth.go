package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig holds password hashing and session token settings.
type AuthConfig struct {
	BcryptCost int
	Pepper     string // optional global secret appended before hashing

	JWTSecret       string
	ExpirationHours int
}

// NewAuthConfig reads BCRYPT_COST (default 12), PASSWORD_PEPPER,
// JWT_SECRET and JWT_EXPIRATION_HOURS (default 24) from the environment.
// JWT_SECRET is only required when requireSecret is set, so offline
// commands can hash passwords without a signing key.
func NewAuthConfig(requireSecret bool) (*AuthConfig, error) {
	cost, err := intFromEnv("BCRYPT_COST", 12)
	if err != nil {
		return nil, err
	}
	hours, err := intFromEnv("JWT_EXPIRATION_HOURS", 24)
	if err != nil {
		return nil, err
	}

	cfg := &AuthConfig{
		BcryptCost:      cost,
		Pepper:          os.Getenv("PASSWORD_PEPPER"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		ExpirationHours: hours,
	}

	if requireSecret && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cost and expiration ranges.
func (c *AuthConfig) Validate() error {
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be %d-14)", c.BcryptCost, bcrypt.MinCost)
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}

// TokenTTL returns how long issued session tokens stay valid.
func (c *AuthConfig) TokenTTL() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}

// HashPassword hashes a password using bcrypt (with optional pepper).
func (c *AuthConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw+c.Pepper), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether pw matches the stored hash.
func (c *AuthConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(pw+c.Pepper)) == nil
}

func intFromEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return n, nil
}
