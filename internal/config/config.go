package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"alcyxob/workout-tracker/internal/cache"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Photos   PhotosConfig   `mapstructure:"photos"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	Mode            string        `mapstructure:"mode"` // gin mode: debug, release or test
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string        `mapstructure:"endpoint"`
	Region          string        `mapstructure:"region"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey string        `mapstructure:"secret_access_key"`
	BucketName      string        `mapstructure:"bucket_name"`
	UseSSL          bool          `mapstructure:"use_ssl"`
	PresignExpiry   time.Duration `mapstructure:"presign_expiry"`
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// AuthConfig lists the accounts that register with the admin role.
type AuthConfig struct {
	AdminEmails []string `mapstructure:"admin_emails"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	File   string `mapstructure:"file"` // empty disables file logging
	JSON   bool   `mapstructure:"json"`
	Stdout bool   `mapstructure:"stdout"`
}

// ScheduleConfig bounds schedule queries and sizes the schedule cache.
type ScheduleConfig struct {
	MaxRangeDays int           `mapstructure:"max_range_days"`
	CacheSizeMB  int           `mapstructure:"cache_size_mb"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
}

type PhotosConfig struct {
	MaxDimension   int   `mapstructure:"max_dimension"`
	JPEGQuality    int   `mapstructure:"jpeg_quality"`
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes"`
}

// CatalogConfig points at a TOML file replacing the built-in template catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// LoadConfig reads configuration from file or environment variables.
// A .env file in path, when present, is loaded into the environment first.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(filepath.Join(path, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// --- Environment Variable Handling ---
	// server.address -> SERVER_ADDRESS, jwt.expiration -> JWT_EXPIRATION
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	// --- Read Config File ---
	// A missing file is fine, env vars and defaults still apply.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	// --- Unmarshal Config ---
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Every key gets a default so that AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "workout_tracker")

	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "workout-tracker")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("s3.presign_expiry", "15m")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", "1h")

	v.SetDefault("auth.admin_emails", []string{})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.json", false)
	v.SetDefault("log.stdout", true)

	v.SetDefault("schedule.max_range_days", 366)
	v.SetDefault("schedule.cache_size_mb", 64)
	v.SetDefault("schedule.cache_ttl", "10m")

	v.SetDefault("photos.max_dimension", 1600)
	v.SetDefault("photos.jpeg_quality", 85)
	v.SetDefault("photos.max_upload_bytes", 10<<20)

	v.SetDefault("catalog.path", "")
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs error
	if c.Server.Address == "" {
		errs = multierr.Append(errs, errors.New("server.address is required"))
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = multierr.Append(errs, fmt.Errorf("server.mode %q must be debug, release or test", c.Server.Mode))
	}
	if c.Database.URI == "" || c.Database.Name == "" {
		errs = multierr.Append(errs, errors.New("database.uri and database.name are required"))
	}
	if c.S3.BucketName == "" {
		errs = multierr.Append(errs, errors.New("s3.bucket_name is required"))
	}
	if c.JWT.Secret == "" {
		errs = multierr.Append(errs, errors.New("jwt.secret is required"))
	}
	if c.JWT.Expiration <= 0 {
		errs = multierr.Append(errs, errors.New("jwt.expiration must be positive"))
	}
	if c.Schedule.MaxRangeDays < 1 {
		errs = multierr.Append(errs, errors.New("schedule.max_range_days must be at least 1"))
	}
	if c.Schedule.CacheSizeMB < 1 {
		errs = multierr.Append(errs, errors.New("schedule.cache_size_mb must be at least 1"))
	} else if c.Schedule.MaxRangeDays >= 1 {
		// A schedule of max_range_days must fit in one cache entry.
		if need := cache.MinSizeMB(cache.ScheduleEntryBytes(c.Schedule.MaxRangeDays)); c.Schedule.CacheSizeMB < need {
			errs = multierr.Append(errs, fmt.Errorf("schedule.cache_size_mb %d cannot hold a %d day schedule, need at least %d",
				c.Schedule.CacheSizeMB, c.Schedule.MaxRangeDays, need))
		}
	}
	if c.Photos.MaxDimension < 1 {
		errs = multierr.Append(errs, errors.New("photos.max_dimension must be at least 1"))
	}
	if c.Photos.JPEGQuality < 1 || c.Photos.JPEGQuality > 100 {
		errs = multierr.Append(errs, errors.New("photos.jpeg_quality must be within 1..100"))
	}
	if c.Photos.MaxUploadBytes < 1 {
		errs = multierr.Append(errs, errors.New("photos.max_upload_bytes must be positive"))
	}
	return errs
}
