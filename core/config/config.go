package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"vendorhub/core/logger"
)

type ServerConfig struct {
	Host string `mapstructure:"SERVER_HOST"`
	Port int    `mapstructure:"SERVER_PORT"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"DB_HOST"`
	Port     int    `mapstructure:"DB_PORT"`
	User     string `mapstructure:"DB_USER"`
	Password string `mapstructure:"DB_PASSWORD"`
	DBName   string `mapstructure:"DB_NAME"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"REDIS_ADDR"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

type CryptoConfig struct {
	// FeedURLKey is the base64-encoded 32-byte key used to encrypt stored
	// calendar feed URLs. Provided by the environment, never hard-coded.
	FeedURLKey string `mapstructure:"CRYPTO_FEED_URL_KEY"`
}

type StorageConfig struct {
	S3Bucket    string `mapstructure:"S3_BUCKET"`
	S3Region    string `mapstructure:"S3_REGION"`
	S3AccessKey string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey string `mapstructure:"S3_SECRET_KEY"`
}

type CalendarConfig struct {
	// SyncIntervalMinutes drives the periodic background refresh schedule.
	SyncIntervalMinutes int `mapstructure:"CALENDAR_SYNC_INTERVAL_MINUTES"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:",squash"`
	Database DatabaseConfig `mapstructure:",squash"`
	Redis    RedisConfig    `mapstructure:",squash"`
	Crypto   CryptoConfig   `mapstructure:",squash"`
	Storage  StorageConfig  `mapstructure:",squash"`
	Calendar CalendarConfig `mapstructure:",squash"`
}

var (
	instance *Config
	mu       sync.RWMutex
)

// Load reads .env (if present) and the environment into the global config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment only")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 7070)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "vendorhub")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CRYPTO_FEED_URL_KEY", "")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_ACCESS_KEY", "")
	v.SetDefault("S3_SECRET_KEY", "")
	v.SetDefault("CALENDAR_SYNC_INTERVAL_MINUTES", 30)

	// AutomaticEnv alone does not populate Unmarshal; bind each known key.
	for _, key := range []string{
		"SERVER_HOST", "SERVER_PORT",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"CRYPTO_FEED_URL_KEY",
		"S3_BUCKET", "S3_REGION", "S3_ACCESS_KEY", "S3_SECRET_KEY",
		"CALENDAR_SYNC_INTERVAL_MINUTES",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	mu.Lock()
	instance = &cfg
	mu.Unlock()
	return &cfg, nil
}

func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return instance
}

// GetSafe reports whether the config has been loaded.
func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, instance != nil
}
