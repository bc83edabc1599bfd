package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
// Both the API tier and the web tier read from the same surface; each binary
// uses the fields relevant to it.
type Config struct {
	APIPort string
	WebPort string

	// APIBaseURL is where the web tier reaches the API tier.
	APIBaseURL string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr string
	RedisDB   int
	RedisPass string

	// APIKey is the static shared secret gating write endpoints.
	APIKey string
	// SessionSecret signs session cookies issued by the web tier.
	SessionSecret string

	LogLevel  string
	LogPretty bool
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		APIPort:       getEnv("API_PORT", "4000"),
		WebPort:       getEnv("WEB_PORT", "3000"),
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:4000"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBUser:        getEnv("DB_USER", "root"),
		DBPassword:    os.Getenv("DB_PW"),
		DBName:        getEnv("DB_NAME", "dealshare"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		APIKey:        getEnv("API_KEY", "change-me"),
		SessionSecret: getEnv("SESSION_SECRET", "change-me-too"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogPretty:     getEnvBool("LOG_PRETTY", false),
	}
}

// MySQLDSN assembles the DSN for the gorm mysql driver.
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
