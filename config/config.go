package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	API       APIConfig
	Session   SessionConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// APIConfig points the portal at the hospital backend.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	Store      string // "memory" or "redis"
	CookieName string
	TTL        time.Duration
	Secure     bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
	// TrustedProxies are the peer IPs whose X-Forwarded-For is believed.
	TrustedProxies []string
}

type LogConfig struct {
	Level string
}

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("API_BASE_URL", "http://localhost:8080")
	v.SetDefault("API_TIMEOUT", "10s")
	v.SetDefault("SESSION_STORE", SessionStoreMemory)
	v.SetDefault("SESSION_COOKIE", "portal_session")
	v.SetDefault("SESSION_TTL", "168h")
	v.SetDefault("SESSION_SECURE", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("RATE_LIMIT_TRUSTED_PROXIES", "")
	v.SetDefault("LOG_LEVEL", "info")
}

func LoadConfig() (*Config, error) {
	return load(viper.New(), ".env")
}

func load(v *viper.Viper, file string) (*Config, error) {
	setDefaults(v)
	v.SetConfigFile(file)
	v.SetConfigType("env")
	v.AutomaticEnv()

	// The .env file is optional, the environment alone is enough.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	apiTimeout, err := time.ParseDuration(v.GetString("API_TIMEOUT"))
	if err != nil {
		apiTimeout = 10 * time.Second
	}

	sessionTTL, err := time.ParseDuration(v.GetString("SESSION_TTL"))
	if err != nil {
		sessionTTL = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		API: APIConfig{
			BaseURL: v.GetString("API_BASE_URL"),
			Timeout: apiTimeout,
		},
		Session: SessionConfig{
			Store:      v.GetString("SESSION_STORE"),
			CookieName: v.GetString("SESSION_COOKIE"),
			TTL:        sessionTTL,
			Secure:     v.GetBool("SESSION_SECURE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			RPS:            v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:          v.GetInt("RATE_LIMIT_BURST"),
			TrustedProxies: splitList(v.GetString("RATE_LIMIT_TRUSTED_PROXIES")),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	return config, nil
}

// splitList parses a comma separated env value, dropping empty items.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
