package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	usecasecontract "github.com/tuiter/tuiter/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port                  string  `mapstructure:"PORT"`
	MongoURI              string  `mapstructure:"MONGODB_URI"`
	MongoDBName           string  `mapstructure:"MONGODB_DB_NAME"`
	RedisURL              string  `mapstructure:"REDIS_URL"`
	NATSURL               string  `mapstructure:"NATS_URL"`
	JWTSecret             string  `mapstructure:"JWT_SECRET"`
	AccessTokenMinutes    int     `mapstructure:"ACCESS_TOKEN_EXPIRY_MINUTES"`
	LogLevel              string  `mapstructure:"LOG_LEVEL"`
	LogFormat             string  `mapstructure:"LOG_FORMAT"`
	RateLimitPerSecond    float64 `mapstructure:"RATE_LIMIT_PER_SECOND"`
	ToggleLockEnabled     bool    `mapstructure:"TOGGLE_LOCK_ENABLED"`
	ReactionUniqueIndex   bool    `mapstructure:"REACTION_UNIQUE_INDEX"`
	TuitCacheTTLSeconds   int     `mapstructure:"TUIT_CACHE_TTL_SECONDS"`
	ShutdownTimeoutSecs   int     `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS"`
	RequestTimeoutSeconds int     `mapstructure:"REQUEST_TIMEOUT_SECONDS"`
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

const defaultJWTSecret = "change-me"

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DB_NAME", "tuiter")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("NATS_URL", "")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("ACCESS_TOKEN_EXPIRY_MINUTES", 60)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("RATE_LIMIT_PER_SECOND", 20)
	v.SetDefault("TOGGLE_LOCK_ENABLED", false)
	v.SetDefault("REACTION_UNIQUE_INDEX", false)
	v.SetDefault("TUIT_CACHE_TTL_SECONDS", 600)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	v.SetDefault("REQUEST_TIMEOUT_SECONDS", 10)
}

// Load reads an optional .env file, then the environment, on top of defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return loadFrom(viper.New())
}

func loadFrom(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.MongoDBName == "" {
		return nil, fmt.Errorf("MONGODB_DB_NAME is required")
	}
	if cfg.ToggleLockEnabled && cfg.RedisURL == "" {
		return nil, fmt.Errorf("TOGGLE_LOCK_ENABLED requires REDIS_URL")
	}
	return &cfg, nil
}

// InsecureJWTSecret reports whether the signing key is unset or left at its default.
func (c *Config) InsecureJWTSecret() bool {
	return c.JWTSecret == "" || c.JWTSecret == defaultJWTSecret
}

func (c *Config) GetAccessTokenExpiry() time.Duration {
	return time.Duration(c.AccessTokenMinutes) * time.Minute
}

func (c *Config) GetTuitCacheTTL() time.Duration {
	return time.Duration(c.TuitCacheTTLSeconds) * time.Second
}

func (c *Config) GetToggleLockEnabled() bool {
	return c.ToggleLockEnabled
}

func (c *Config) GetReactionUniqueIndex() bool {
	return c.ReactionUniqueIndex
}

func (c *Config) GetShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSecs) * time.Second
}

func (c *Config) GetRequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
