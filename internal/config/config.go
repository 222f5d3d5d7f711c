// Package config handles configuration loading for the habit tracker.
package config

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/viper"
)

// CookieConfig controls how authentication cookies are written.
type CookieConfig struct {
	Domain   string
	Path     string
	Secure   bool
	SameSite http.SameSite
}

// Config holds all configuration for the habit tracker service.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	Port           string
	Environment    string
	AllowedOrigins []string

	EnableCookieAuth bool
	Cookie           CookieConfig

	AuthRatePerSecond int
	AuthRateBurst     int
}

// Load reads configuration from environment variables and, when present,
// a config file named by HABIT_CONFIG_FILE. Database and JWT settings are
// required: the process refuses to start without a reachable store
// configuration.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("JWT_ACCESS_EXPIRY", "15m")
	v.SetDefault("JWT_REFRESH_EXPIRY", "168h")
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	v.SetDefault("ENABLE_COOKIE_AUTH", false)
	v.SetDefault("COOKIE_PATH", "/")
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("AUTH_RATE_PER_SECOND", 5)
	v.SetDefault("AUTH_RATE_BURST", 10)

	if file := v.GetString("HABIT_CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "JWT_SECRET"} {
		if v.GetString(key) == "" {
			return nil, fmt.Errorf("required configuration %s is not set", key)
		}
	}

	return &Config{
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSSLMode:  v.GetString("DB_SSL_MODE"),

		RedisHost:     v.GetString("REDIS_HOST"),
		RedisPort:     v.GetString("REDIS_PORT"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),

		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTAccessExpiry:  parseDuration(v.GetString("JWT_ACCESS_EXPIRY"), 15*time.Minute),
		JWTRefreshExpiry: parseDuration(v.GetString("JWT_REFRESH_EXPIRY"), 168*time.Hour),

		Port:           v.GetString("PORT"),
		Environment:    v.GetString("ENVIRONMENT"),
		AllowedOrigins: v.GetStringSlice("ALLOWED_ORIGINS"),

		EnableCookieAuth: v.GetBool("ENABLE_COOKIE_AUTH"),
		Cookie: CookieConfig{
			Domain:   v.GetString("COOKIE_DOMAIN"),
			Path:     v.GetString("COOKIE_PATH"),
			Secure:   v.GetBool("COOKIE_SECURE"),
			SameSite: http.SameSiteLaxMode,
		},

		AuthRatePerSecond: v.GetInt("AUTH_RATE_PER_SECOND"),
		AuthRateBurst:     v.GetInt("AUTH_RATE_BURST"),
	}, nil
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
