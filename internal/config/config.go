package config

import (
	"fmt"
	"os"
)

// Config carries all runtime settings, populated from the environment.
type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MediaDir string
	TenantID string

	// Base64 raw-url encoded ed25519 seed; generated at boot in dev when empty.
	LicenseSigningKey string
	LicenseToken      string

	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// Load reads configuration from environment variables with development
// defaults matching docker-compose.
func Load() Config {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", ""),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "postgres"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           0,
		MediaDir:          getEnv("MEDIA_DIR", "./media"),
		TenantID:          getEnv("TENANT_ID", "default"),
		LicenseSigningKey: os.Getenv("LICENSE_SIGNING_KEY"),
		LicenseToken:      os.Getenv("LICENSE_TOKEN"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminName:         getEnv("ADMIN_NAME", "Administrator"),
	}
	return cfg
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
