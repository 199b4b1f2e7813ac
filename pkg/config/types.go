package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Storage     StorageConfig    `mapstructure:"storage"`
	Auth        AuthConfig       `mapstructure:"auth"`
	Analytics   AnalyticsConfig  `mapstructure:"analytics"`
	Pagination  PaginationConfig `mapstructure:"pagination"`
	Ratings     RatingsConfig    `mapstructure:"ratings"`
	Cache       CacheConfig      `mapstructure:"cache"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// StorageConfig contains audio blob storage settings
type StorageConfig struct {
	Path            string        `mapstructure:"path"`
	MaxFileSize     int64         `mapstructure:"max_file_size"`
	OrphanMaxAge    time.Duration `mapstructure:"orphan_max_age"`
	JanitorInterval time.Duration `mapstructure:"janitor_interval"`
}

// AuthConfig contains identity verification settings
type AuthConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

// AnalyticsConfig bounds the analytics queries
type AnalyticsConfig struct {
	DefaultWindowDays int `mapstructure:"default_window_days"`
	MaxWindowDays     int `mapstructure:"max_window_days"`
	TopSubmissions    int `mapstructure:"top_submissions"`
	TopRanked         int `mapstructure:"top_ranked"`
}

// PaginationConfig contains listing defaults
type PaginationConfig struct {
	DefaultSize int `mapstructure:"default_size"`
	MaxSize     int `mapstructure:"max_size"`
}

// RatingsConfig tunes the rating aggregation transaction
type RatingsConfig struct {
	MaxRetries int           `mapstructure:"max_retries"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

// CacheConfig tunes the public dashboard response cache
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	TTL       time.Duration `mapstructure:"ttl"`
	MaxSizeMB int64         `mapstructure:"max_size_mb"`
}
