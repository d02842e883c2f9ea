package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Middleware MiddlewareConfig

	// Marketplace product API
	API APIConfig

	// Listing surfaces
	Listing ListingConfig
	Redis   RedisConfig
}

type EnvironmentConfig struct {
	Name string `validate:"required,oneof=development staging production"`
}

type HTTPServerConfig struct {
	Port int    `validate:"required,min=1,max=65535"`
	Mode string `validate:"required,oneof=debug release test"`
}

type LoggerConfig struct {
	Level        string `validate:"required,oneof=debug info warn error"`
	Mode         string
	Encoding     string `validate:"required,oneof=console json"`
	ColorEnabled bool
}

type MiddlewareConfig struct {
	RateLimitPerMin  int `validate:"min=0"`
	CORSAllowOrigins []string
}

// APIConfig points at the backend serving GET /products and POST /auth/refresh.
type APIConfig struct {
	BaseURL         string        `validate:"required,url"`
	Timeout         time.Duration `validate:"min=0"`
	RateLimitPerSec float64       `validate:"min=0"`
	Burst           int           `validate:"min=0"`
	AccessToken     string
	RefreshToken    string
}

type ListingConfig struct {
	PageLimit     int           `validate:"min=1,max=100"`
	Variant       string        `validate:"oneof=explore seller recommended"`
	CacheEnabled  bool
	CacheBackend  string        `validate:"oneof=memory redis"`
	CacheCapacity int           `validate:"min=1"`
	CacheTTL      time.Duration `validate:"min=0"`
	SurfaceTTL    time.Duration `validate:"min=0"`
	MaxSurfaces   int           `validate:"min=1"`
}

// RedisConfig is only read when the listing cache backend is redis.
type RedisConfig struct {
	URL    string
	Prefix string
}

// Load loads configuration using Viper.
// The config.yaml file is searched in ./config, . and /etc/app/.
// A .env file in the working directory, if present, seeds the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Middleware.RateLimitPerMin = viper.GetInt("middleware.rate_limit_per_min")
	cfg.Middleware.CORSAllowOrigins = viper.GetStringSlice("middleware.cors_allow_origins")

	// Product API
	cfg.API.BaseURL = viper.GetString("api.base_url")
	cfg.API.Timeout = viper.GetDuration("api.timeout")
	cfg.API.RateLimitPerSec = viper.GetFloat64("api.rate_limit_per_sec")
	cfg.API.Burst = viper.GetInt("api.burst")
	cfg.API.AccessToken = expandEnvVar(viper.GetString("api.access_token"))
	cfg.API.RefreshToken = expandEnvVar(viper.GetString("api.refresh_token"))
	if apiURL := viper.GetString("api_url"); apiURL != "" {
		cfg.API.BaseURL = apiURL
	}

	// Listing
	cfg.Listing.PageLimit = viper.GetInt("listing.page_limit")
	cfg.Listing.Variant = viper.GetString("listing.variant")
	cfg.Listing.CacheEnabled = viper.GetBool("listing.cache_enabled")
	cfg.Listing.CacheBackend = viper.GetString("listing.cache_backend")
	cfg.Listing.CacheCapacity = viper.GetInt("listing.cache_capacity")
	cfg.Listing.CacheTTL = viper.GetDuration("listing.cache_ttl")
	cfg.Listing.SurfaceTTL = viper.GetDuration("listing.surface_ttl")
	cfg.Listing.MaxSurfaces = viper.GetInt("listing.max_surfaces")

	// Redis
	cfg.Redis.URL = expandEnvVar(viper.GetString("redis.url"))
	cfg.Redis.Prefix = viper.GetString("redis.prefix")
	if cfg.Listing.CacheEnabled && cfg.Listing.CacheBackend == "redis" && cfg.Redis.URL == "" {
		return nil, fmt.Errorf("invalid config: redis.url is required when listing.cache_backend is redis")
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints and reports the first offending fields.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("middleware.rate_limit_per_min", 120)

	viper.SetDefault("api.base_url", "http://localhost:5000/api")
	viper.SetDefault("api.timeout", "10s")
	viper.SetDefault("api.rate_limit_per_sec", 5)
	viper.SetDefault("api.burst", 10)

	viper.SetDefault("listing.page_limit", 20)
	viper.SetDefault("listing.variant", "explore")
	viper.SetDefault("listing.cache_enabled", true)
	viper.SetDefault("listing.cache_backend", "memory")
	viper.SetDefault("listing.cache_capacity", 5)
	viper.SetDefault("listing.cache_ttl", "0s")
	viper.SetDefault("listing.surface_ttl", "30m")
	viper.SetDefault("listing.max_surfaces", 1000)

	viper.SetDefault("redis.prefix", "listing:cache")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}.
// A placeholder that does not resolve expands to "" so it is never mistaken
// for a real value.
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}
