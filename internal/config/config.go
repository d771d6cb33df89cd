package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"cafeapi/internal/pkg/validator"
)

const (
	defaultAppEnv      = "dev"
	defaultPort        = 5000
	defaultDatabaseURL = "cafes.db"
	defaultDBLogLevel  = "warn"
)

type Config struct {
	AppEnv             string `mapstructure:"app_env" validate:"required"`
	Port               int    `mapstructure:"port" validate:"min=1,max=65535"`
	DatabaseURL        string `mapstructure:"database_url" validate:"required"`
	APIKey             string `mapstructure:"cafe_api_key"`
	APIKeyHash         string `mapstructure:"cafe_api_key_hash"`
	CORSAllowedOrigins string `mapstructure:"cors_allowed_origins"`
	DBLogLevel         string `mapstructure:"db_log_level" validate:"oneof=silent error warn info"`
	GinMode            string `mapstructure:"gin_mode" validate:"omitempty,oneof=debug release test"`
}

// Load reads .env (if present), the optional config file at path, and the
// process environment, in increasing order of precedence.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("app_env", defaultAppEnv)
	v.SetDefault("port", defaultPort)
	v.SetDefault("database_url", defaultDatabaseURL)
	v.SetDefault("cafe_api_key", "")
	v.SetDefault("cafe_api_key_hash", "")
	v.SetDefault("cors_allowed_origins", "")
	v.SetDefault("db_log_level", defaultDBLogLevel)
	v.SetDefault("gin_mode", "")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.APIKeyHash = strings.TrimSpace(cfg.APIKeyHash)
	cfg.DBLogLevel = strings.ToLower(strings.TrimSpace(cfg.DBLogLevel))

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	log.Printf("config loaded: env=%s port=%d database=%s api_key_hashed=%t", cfg.AppEnv, cfg.Port, cfg.DatabaseURL, cfg.APIKeyHash != "")

	return &cfg, nil
}

// IsProdLike reports whether the service runs in a production-like environment.
func (c *Config) IsProdLike() bool {
	return isProdLike(c.AppEnv)
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func validateConfig(cfg *Config) error {
	if err := validator.Error(cfg); err != nil {
		return err
	}

	if cfg.APIKey == "" && cfg.APIKeyHash == "" {
		return errors.New("CAFE_API_KEY or CAFE_API_KEY_HASH must be set")
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}
