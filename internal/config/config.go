// Package config provides configuration loading and validation for the CLI and HTTP server.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Defaults applied when neither the config file nor the environment sets a value.
const (
	DefaultPort               = 8080
	DefaultRankLimit          = 10
	MaxRankLimit              = 100
	DefaultJWTExpirationHours = 24

	// EnvPrefix prefixes every environment variable read by Load (O1MATCH_PORT, ...).
	EnvPrefix = "O1MATCH"
	// FileName is the config file looked up in the working directory when no path is given.
	FileName = "o1match"
)

// Config represents the configuration shared by the CLI commands and the server.
// Values come from the config file, then O1MATCH_* environment variables, then bound flags.
type Config struct {
	// Stores
	DatabaseURL string `mapstructure:"database_url" json:"database_url,omitempty"` // PostgreSQL connection URL
	SQLitePath  string `mapstructure:"sqlite_path" json:"sqlite_path,omitempty"`   // Embedded catalog file

	// Server
	Port        int  `mapstructure:"port" json:"port,omitempty"`
	AuthEnabled bool `mapstructure:"auth_enabled" json:"auth_enabled,omitempty"` // Require bearer tokens on match routes

	// Matching
	RankLimit int `mapstructure:"rank_limit" json:"rank_limit,omitempty"` // Default number of ranked matches

	// Behavior
	Verbose bool `mapstructure:"verbose" json:"verbose,omitempty"` // Print boxed match breakdowns

	// Auth
	JWTSecret          string `mapstructure:"jwt_secret" json:"-"`
	JWTExpirationHours int    `mapstructure:"jwt_expiration_hours" json:"jwt_expiration_hours,omitempty"`
}

// Defaults returns the built-in configuration values.
func Defaults() Config {
	return Config{
		Port:               DefaultPort,
		RankLimit:          DefaultRankLimit,
		JWTExpirationHours: DefaultJWTExpirationHours,
	}
}

// Load reads configuration into a Config using v, which may already have flags bound.
// An empty path looks for o1match.{yaml,json} in the working directory and tolerates its absence;
// an explicit path must exist.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	defaults := Defaults()
	v.SetDefault("database_url", "")
	v.SetDefault("sqlite_path", "")
	v.SetDefault("port", defaults.Port)
	v.SetDefault("auth_enabled", false)
	v.SetDefault("rank_limit", defaults.RankLimit)
	v.SetDefault("verbose", false)
	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_expiration_hours", defaults.JWTExpirationHours)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// Unprefixed names shared with the surrounding application.
	_ = v.BindEnv("database_url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("jwt_secret", EnvPrefix+"_JWT_SECRET", "JWT_SECRET")
	_ = v.BindEnv("jwt_expiration_hours", EnvPrefix+"_JWT_EXPIRATION_HOURS", "JWT_EXPIRATION_HOURS")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(FileName)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// A missing store is not an error here; commands that need one fail when opening it.
func (c *Config) Validate() error {
	if c.DatabaseURL != "" && c.SQLitePath != "" {
		return fmt.Errorf("config error: 'database_url' and 'sqlite_path' are mutually exclusive")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got %d", c.Port)
	}
	if c.RankLimit < 0 {
		return fmt.Errorf("config error: 'rank_limit' must be non-negative")
	}
	if c.RankLimit > MaxRankLimit {
		return fmt.Errorf("config error: 'rank_limit' must be at most %d", MaxRankLimit)
	}
	if c.JWTExpirationHours < 0 {
		return fmt.Errorf("config error: 'jwt_expiration_hours' must be non-negative")
	}

	if c.AuthEnabled && c.JWTSecret == "" {
		return fmt.Errorf("config error: 'auth_enabled' requires JWT_SECRET")
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.SQLitePath == "" && result.DatabaseURL == "" {
		result.SQLitePath = defaults.SQLitePath
	}
	if result.JWTSecret == "" {
		result.JWTSecret = defaults.JWTSecret
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RankLimit == 0 {
		result.RankLimit = defaults.RankLimit
	}
	if result.JWTExpirationHours == 0 {
		result.JWTExpirationHours = defaults.JWTExpirationHours
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge

	return result
}
