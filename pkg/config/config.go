package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	apperrors "github.com/labelreader/label-api/pkg/errors"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system.
// This should be called once at application startup.
func Init() error {
	once.Do(func() {
		setDefaults()

		viper.SetEnvPrefix("LABELREADER")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// Missing config file is fine, defaults and env vars apply
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct.
// Init() must be called before using this.
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return apperrors.Newf(apperrors.ErrCodeConfigInvalid, "invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		fmt.Println("Warning: No database path configured")
	}

	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	if viper.GetBool("auth.enabled") {
		secret := viper.GetString("auth.jwt_secret")
		if secret == "" || secret == "changeme" || secret == "CHANGEME" {
			if isProduction {
				return apperrors.New(apperrors.ErrCodeConfigInvalid, "JWT secret cannot use placeholder values in production")
			}
			fmt.Println("Warning: JWT secret is using a placeholder value - this is insecure!")
		}
	}

	// Auto-correct out-of-range analytics bounds
	if viper.GetInt("analytics.default_window_days") <= 0 {
		viper.Set("analytics.default_window_days", 30)
	}
	if viper.GetInt("analytics.max_window_days") <= 0 {
		viper.Set("analytics.max_window_days", 365)
	}
	if viper.GetInt("pagination.default_size") <= 0 {
		viper.Set("pagination.default_size", 20)
	}
	if viper.GetInt("pagination.max_size") <= 0 {
		viper.Set("pagination.max_size", 100)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Analytics.DefaultWindowDays <= 0 {
		c.Analytics.DefaultWindowDays = 30
	}
	if c.Pagination.DefaultSize <= 0 {
		c.Pagination.DefaultSize = 20
	}
	if c.Ratings.MaxRetries <= 0 {
		c.Ratings.MaxRetries = 3
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/labelreader.db")
	viper.SetDefault("database.verbose", false)

	// Storage defaults
	viper.SetDefault("storage.path", "./data/uploads")
	viper.SetDefault("storage.max_file_size", 52428800) // 50 MB
	viper.SetDefault("storage.orphan_max_age", 24*time.Hour)
	viper.SetDefault("storage.janitor_interval", time.Hour)

	// Auth defaults
	viper.SetDefault("auth.enabled", true)
	viper.SetDefault("auth.jwt_secret", "changeme")

	// Analytics defaults
	viper.SetDefault("analytics.default_window_days", 30)
	viper.SetDefault("analytics.max_window_days", 365)
	viper.SetDefault("analytics.top_submissions", 5)
	viper.SetDefault("analytics.top_ranked", 10)

	// Pagination defaults
	viper.SetDefault("pagination.default_size", 20)
	viper.SetDefault("pagination.max_size", 100)

	// Rating aggregation defaults
	viper.SetDefault("ratings.max_retries", 3)
	viper.SetDefault("ratings.retry_delay", 25*time.Millisecond)

	// Cache defaults
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.ttl", time.Minute)
	viper.SetDefault("cache.max_size_mb", 32)
}
