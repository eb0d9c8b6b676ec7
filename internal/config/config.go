package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultAdminSecret = "change-me-admin-secret"

// Config holds the whole application configuration.
// Populated from environment variables (optionally via a .env file loaded in cmd/*).
type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Admin      AdminConfig
	Storage    StorageConfig
	Queue      QueueConfig
	Pagination PaginationConfig
	Cache      CacheConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	BaseURL     string
	LogLevel    string
}

// DatabaseConfig selects the content store.
// Driver "memory" keeps everything in process and is meant for local demos.
type DatabaseConfig struct {
	Driver string // postgres, memory
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
	Enabled  bool
}

type AdminConfig struct {
	TokenSecret string
	TokenTTL    time.Duration
}

// =====================================================
// STORAGE CONFIGURATION
// =====================================================

type StorageConfig struct {
	Driver    string // minio, s3
	PublicURL string // prefix used to build public image URLs
	MaxUpload int64  // bytes
	MinIO     MinIOConfig
	S3        S3Config
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type S3Config struct {
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
}

type QueueConfig struct {
	Enabled     bool
	Concurrency int
	// cron spec for the blog cache refresh job
	BlogRefreshSpec string
	// worker liveness endpoint
	HealthAddr string
}

type PaginationConfig struct {
	AdminPerPage int
	BlogPerPage  int
}

type CacheConfig struct {
	BlogTTL     time.Duration
	SettingsTTL time.Duration
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Law Firm API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			BaseURL:     getEnv("APP_BASE_URL", "http://localhost:8080"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			Driver: getEnv("DB_DRIVER", "postgres"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Enabled:  getEnvBool("REDIS_ENABLED", true),
		},
		Admin: AdminConfig{
			TokenSecret: getEnv("ADMIN_TOKEN_SECRET", defaultAdminSecret),
			TokenTTL:    getEnvDuration("ADMIN_TOKEN_TTL", 12*time.Hour),
		},
		Storage: StorageConfig{
			Driver:    strings.ToLower(getEnv("STORAGE_DRIVER", "minio")),
			PublicURL: getEnv("STORAGE_PUBLIC_URL", "http://localhost:9000/lawfirm"),
			MaxUpload: int64(getEnvInt("STORAGE_MAX_UPLOAD_BYTES", 2*1024*1024)),
			MinIO: MinIOConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
				AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
				SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
				Bucket:    getEnv("MINIO_BUCKET", "lawfirm"),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			},
			S3: S3Config{
				Region:    getEnv("S3_REGION", "ap-southeast-1"),
				AccessKey: getEnv("S3_ACCESS_KEY", ""),
				SecretKey: getEnv("S3_SECRET_KEY", ""),
				Bucket:    getEnv("S3_BUCKET", ""),
			},
		},
		Queue: QueueConfig{
			Enabled:         getEnvBool("QUEUE_ENABLED", true),
			Concurrency:     getEnvInt("QUEUE_CONCURRENCY", 5),
			BlogRefreshSpec: getEnv("QUEUE_BLOG_REFRESH_SPEC", "*/5 * * * *"),
			HealthAddr:      getEnv("WORKER_HEALTH_ADDR", ":9999"),
		},
		Pagination: PaginationConfig{
			AdminPerPage: getEnvInt("ADMIN_PER_PAGE", 15),
			BlogPerPage:  getEnvInt("BLOG_PER_PAGE", 12),
		},
		Cache: CacheConfig{
			BlogTTL:     getEnvDuration("CACHE_BLOG_TTL", 5*time.Minute),
			SettingsTTL: getEnvDuration("CACHE_SETTINGS_TTL", 30*time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the config for values that would break at runtime
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "memory":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	switch c.Storage.Driver {
	case "minio":
	case "s3":
		if c.Storage.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET must be set when STORAGE_DRIVER=s3")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if c.Pagination.AdminPerPage < 1 || c.Pagination.BlogPerPage < 1 {
		return fmt.Errorf("pagination sizes must be positive")
	}

	if c.App.Environment == "production" {
		if c.Admin.TokenSecret == defaultAdminSecret {
			return fmt.Errorf("ADMIN_TOKEN_SECRET must be set in production")
		}
		if os.Getenv("DB_PASSWORD") == "" && c.Database.Driver == "postgres" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
