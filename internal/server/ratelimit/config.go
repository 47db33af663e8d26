package ratelimit

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Route pattern ("/jobs/{id}/talent-matches") or a "/"-terminated prefix
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// EnvPrefix is the prefix of the rate limit environment variables, e.g. RATE_LIMIT_DEFAULT_LIMIT.
const EnvPrefix = "RATE_LIMIT"

// LoadConfig loads rate limiting configuration from RATE_LIMIT_* environment variables.
func LoadConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("enabled", defaults.Enabled)
	v.SetDefault("default_limit", defaults.DefaultLimit)
	v.SetDefault("default_window", defaults.DefaultWindow)
	v.SetDefault("cleanup_interval", defaults.CleanupInterval)
	v.SetDefault("bucket_ttl", defaults.BucketTTL)
	v.SetDefault("whitelist", "")
	v.SetDefault("blacklist", "")

	if !v.GetBool("enabled") {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    positiveInt(v.GetInt("default_limit"), defaults.DefaultLimit),
		DefaultWindow:   positiveDuration(v.GetDuration("default_window"), defaults.DefaultWindow),
		CleanupInterval: v.GetDuration("cleanup_interval"),
		BucketTTL:       positiveDuration(v.GetDuration("bucket_ttl"), defaults.BucketTTL),
		Whitelist:       parseIPList(v.GetString("whitelist")),
		Blacklist:       parseIPList(v.GetString("blacklist")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Ranking scores every stored candidate
		{Path: "/talents/{id}/job-matches", Method: "GET", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/jobs/{id}/talent-matches", Method: "GET", Limit: 120, Window: time.Minute, Burst: 20},

		{Path: "/match", Method: "POST", Limit: 600, Window: time.Minute, Burst: 60},
	}
}

func positiveInt(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}

func positiveDuration(value, fallback time.Duration) time.Duration {
	if value > 0 {
		return value
	}
	return fallback
}

// parseIPList parses a comma-separated list of IP addresses into a map.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
