package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the limit for one endpoint or path prefix.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig reads RATE_LIMIT_ENABLED, RATE_LIMIT_DEFAULT_LIMIT,
// RATE_LIMIT_DEFAULT_WINDOW, RATE_LIMIT_CLEANUP_INTERVAL, RATE_LIMIT_WHITELIST
// and RATE_LIMIT_BLACKLIST.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{
			Enabled: false,
		}
	}

	defaultLimit := getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000)
	defaultWindow := getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute)
	cleanupInterval := getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute)

	whitelist := parseIPList(getEnvString("RATE_LIMIT_WHITELIST", ""))
	blacklist := parseIPList(getEnvString("RATE_LIMIT_BLACKLIST", ""))

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    defaultLimit,
		DefaultWindow:   defaultWindow,
		CleanupInterval: cleanupInterval,
		Whitelist:       whitelist,
		Blacklist:       blacklist,
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint tiers for the board API.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: credential checks
		{Path: "/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		{Path: "/auth/signup", Method: "POST", Limit: 10, Window: time.Hour, Burst: 3},

		// Tier 2: stateless scoring and filtering
		{Path: "/tokenize", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/score", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/recommend", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/filter/", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},

		// Tier 3: writes
		{Path: "/jobs", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/jobs/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/jobs/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/me/profile", Method: "PUT", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/applications/", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/admin/", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/admin/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},

		// Reads use the default limit; /health is never limited.
	}
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a map.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	if list == "" {
		return result
	}

	ips := strings.Split(list, ",")
	for _, ip := range ips {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}

	return result
}

