package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Storage backend selectors
const (
	StorageBackendPostgres = "postgres"
	StorageBackendSnapshot = "snapshot"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Storage backend selection: postgres (read-write) or snapshot (read-only file)
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`
	SnapshotPath   string `mapstructure:"SNAPSHOT_PATH"`

	// Calendar configuration
	Timezone     string `mapstructure:"TIMEZONE"`
	Locale       string `mapstructure:"LOCALE"`
	WeekStartsOn string `mapstructure:"WEEK_STARTS_ON"`

	// Import configuration
	MaxUploadMB        int64 `mapstructure:"MAX_UPLOAD_MB"`
	CleanupDefaultDays int   `mapstructure:"CLEANUP_DEFAULT_DAYS"`

	// Auth configuration
	AuthEnabled bool   `mapstructure:"AUTH_ENABLED"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7009")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "turnos")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// Storage defaults
	viper.SetDefault("STORAGE_BACKEND", StorageBackendPostgres)
	viper.SetDefault("SNAPSHOT_PATH", "")

	// Calendar defaults
	viper.SetDefault("TIMEZONE", "America/Argentina/Buenos_Aires")
	viper.SetDefault("LOCALE", "es-AR")
	viper.SetDefault("WEEK_STARTS_ON", "monday")

	// Import defaults
	viper.SetDefault("MAX_UPLOAD_MB", 5)
	viper.SetDefault("CLEANUP_DEFAULT_DAYS", 365)

	// Auth defaults
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("JWT_SECRET", "")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	switch config.StorageBackend {
	case StorageBackendPostgres:
		if config.DatabaseName == "" {
			return fmt.Errorf("database name is required")
		}
	case StorageBackendSnapshot:
		if config.SnapshotPath == "" {
			return fmt.Errorf("SNAPSHOT_PATH is required for the snapshot backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", config.StorageBackend)
	}

	if config.AuthEnabled && config.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set when AUTH_ENABLED is true")
	}

	if config.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}

	return nil
}

// MaxUploadBytes returns the upload ceiling in bytes
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB * 1024 * 1024
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
