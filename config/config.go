package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends for selection state.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendBrowser  = "browser"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	HTTPPort string
	LogLevel string

	StorageBackend    string
	StorageMaxRetries int

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	ChromeBin     string
	BrowserOrigin string

	CataloguePath string
	CSVExportPath string

	FluentBitEnabled bool
	FluentBitHost    string
	FluentBitPort    int
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}
	return fromEnv()
}

func fromEnv() *Config {
	return &Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		StorageBackend:    strings.ToLower(getEnv("STORAGE_BACKEND", BackendMemory)),
		StorageMaxRetries: getEnvInt("STORAGE_MAX_RETRIES", 3),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "properties"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "properties123"),
		PostgresDB:       getEnv("POSTGRES_DB", "property_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		ChromeBin:     getEnv("CHROME_BIN", ""),
		BrowserOrigin: getEnv("BROWSER_ORIGIN", "http://localhost:8080/"),

		CataloguePath: getEnv("CATALOGUE_PATH", ""),
		CSVExportPath: getEnv("CSV_EXPORT_PATH", ""),

		FluentBitEnabled: getEnvBool("FLUENTBIT_ENABLED", false),
		FluentBitHost:    getEnv("FLUENTBIT_HOST", "localhost"),
		FluentBitPort:    getEnvInt("FLUENTBIT_PORT", 24224),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
