package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

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

	// JWT configuration
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	JWTTTLMinutes int    `mapstructure:"JWT_TTL_MINUTES"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// File storage
	StorageBackend   string `mapstructure:"STORAGE_BACKEND"`
	StorageLocalRoot string `mapstructure:"STORAGE_LOCAL_ROOT"`
	MaxUploadMB      int    `mapstructure:"MAX_UPLOAD_MB"`

	// MinIO configuration
	MinioEndpoint  string `mapstructure:"MINIO_ENDPOINT"`
	MinioAccessKey string `mapstructure:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `mapstructure:"MINIO_SECRET_KEY"`
	MinioBucket    string `mapstructure:"MINIO_BUCKET"`
	MinioUseSSL    bool   `mapstructure:"MINIO_USE_SSL"`

	// Redis (onboarding wizard sessions); empty address keeps sessions in memory
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisDB            int    `mapstructure:"REDIS_DB"`
	OnboardingTTLHours int    `mapstructure:"ONBOARDING_TTL_HOURS"`

	// Kafka domain events; empty brokers disables publishing
	KafkaBrokers []string `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic   string   `mapstructure:"KAFKA_TOPIC"`

	// Sentry
	SentryDSN string `mapstructure:"SENTRY_DSN"`

	// Scheduled sweeps
	ReminderDaysBefore   int `mapstructure:"REMINDER_DAYS_BEFORE"`
	SweepIntervalMinutes int `mapstructure:"SWEEP_INTERVAL_MINUTES"`
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
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "workflow_portal")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_TTL_MINUTES", 60)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Storage defaults
	viper.SetDefault("STORAGE_BACKEND", "local")
	viper.SetDefault("STORAGE_LOCAL_ROOT", "./media")
	viper.SetDefault("MAX_UPLOAD_MB", 20)
	viper.SetDefault("MINIO_ENDPOINT", "localhost:9000")
	viper.SetDefault("MINIO_ACCESS_KEY", "")
	viper.SetDefault("MINIO_SECRET_KEY", "")
	viper.SetDefault("MINIO_BUCKET", "work-items")
	viper.SetDefault("MINIO_USE_SSL", false)

	// Session defaults
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("ONBOARDING_TTL_HOURS", 24)

	// Event defaults
	viper.SetDefault("KAFKA_BROKERS", []string{})
	viper.SetDefault("KAFKA_TOPIC", "workflow-portal.events")

	viper.SetDefault("SENTRY_DSN", "")

	// Sweep defaults
	viper.SetDefault("REMINDER_DAYS_BEFORE", 3)
	viper.SetDefault("SWEEP_INTERVAL_MINUTES", 60)
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
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.StorageBackend {
	case "local":
		if config.StorageLocalRoot == "" {
			return fmt.Errorf("STORAGE_LOCAL_ROOT is required for local storage")
		}
	case "minio":
		if config.MinioEndpoint == "" || config.MinioBucket == "" {
			return fmt.Errorf("MINIO_ENDPOINT and MINIO_BUCKET are required for minio storage")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", config.StorageBackend)
	}

	if config.SweepIntervalMinutes <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL_MINUTES must be positive")
	}
	if config.ReminderDaysBefore < 0 {
		return fmt.Errorf("REMINDER_DAYS_BEFORE cannot be negative")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SweepInterval is the period between scheduled sweep runs
func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalMinutes) * time.Minute
}

// JWTTTL is the lifetime of issued access tokens
func (c *Config) JWTTTL() time.Duration {
	if c.JWTTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}

// OnboardingTTL is how long an unfinished onboarding wizard is kept
func (c *Config) OnboardingTTL() time.Duration {
	if c.OnboardingTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.OnboardingTTLHours) * time.Hour
}

// MaxUploadBytes is the per-request multipart limit
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}
