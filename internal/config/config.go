package config

import (
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DatabaseURL          string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int
	RedisURL             string
	RedisPassword        string
	ResultRetention      time.Duration
}

var AppConfig *Config

// LoadConfig reads the environment. Empty DATABASE_URL or REDIS_URL leaves that store disabled
// and the game runs purely in memory.
func LoadConfig() *Config {
	// Database Config
	dbURL := GetEnv("DATABASE_URL", GetEnv("DATABASE_URI", ""))
	if dbURL != "" && !strings.Contains(dbURL, "sslmode=") {
		// lib/pq insists on TLS unless told otherwise; local postgres rarely has it
		if u, err := url.Parse(dbURL); err == nil && (u.Hostname() == "localhost" || u.Hostname() == "127.0.0.1") {
			q := u.Query()
			q.Set("sslmode", "disable")
			u.RawQuery = q.Encode()
			dbURL = u.String()
		}
	}
	dbMaxOpenConns := GetEnvAsInt("DB_MAX_OPEN_CONNS", 5)
	dbMaxIdleConns := GetEnvAsInt("DB_MAX_IDLE_CONNS", 5)
	dbConnMaxLifetimeMin := GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5)

	// Redis
	redisURL := GetEnv("REDIS_URL", "")
	redisPassword := GetEnv("REDIS_PASSWORD", "")

	retentionDays := GetEnvAsInt("RESULT_RETENTION_DAYS", 30)

	AppConfig = &Config{
		DatabaseURL:          dbURL,
		DBMaxOpenConns:       dbMaxOpenConns,
		DBMaxIdleConns:       dbMaxIdleConns,
		DBConnMaxLifetimeMin: dbConnMaxLifetimeMin,
		RedisURL:             redisURL,
		RedisPassword:        redisPassword,
		ResultRetention:      time.Duration(retentionDays) * 24 * time.Hour,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
