package config

import (
	"os"
	"strconv"
	"time"

	"tantsuball/internal/database"
	"tantsuball/internal/messaging"
	"tantsuball/internal/session"
)

// Storage drivers for the user/booking repositories
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config содержит конфигурацию приложения
type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration

	// Artificial latency injected into repository calls to mimic the
	// mocked network the demo front end simulated
	MockLatency time.Duration

	// StorageDriver selects the user/booking repository backing:
	// "memory" (default) or "postgres"
	StorageDriver string

	Database database.Config
	Session  session.Config
	NATS     messaging.Config
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8082"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SEC", 30)) * time.Second,

		MockLatency:   time.Duration(getEnvInt("MOCK_LATENCY_MS", 150)) * time.Millisecond,
		StorageDriver: getEnv("STORAGE_DRIVER", StorageMemory),

		Database: database.Config{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnvInt("DB_PORT", 5432),
			User:               getEnv("DB_USER", "tantsuball"),
			Password:           getEnv("DB_PASSWORD", "tantsuball123"),
			DBName:             getEnv("DB_NAME", "tantsuball"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeMin: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 5),
			ConnMaxIdleTimeMin: getEnvInt("DB_CONN_MAX_IDLE_TIME_MIN", 1),
		},

		Session: session.Config{
			Backend:        getEnv("SESSION_BACKEND", session.BackendFile),
			FilePath:       getEnv("SESSION_FILE", "sessions.json"),
			ValkeyAddr:     getEnv("VALKEY_ADDR", "localhost:6379"),
			ValkeyPassword: getEnv("VALKEY_PASSWORD", ""),
			ValkeyHashKey:  getEnv("VALKEY_SESSIONS_HASH_KEY", "sessions"),
		},

		NATS: messaging.Config{
			URL:       getEnv("NATS_URL", ""),
			ClusterID: getEnv("NATS_CLUSTER_ID", "tantsuball"),
			ClientID:  getEnv("NATS_CLIENT_ID", "tantsuball-api"),
		},
	}
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает целочисленное значение переменной окружения
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
