package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Ledger  LedgerConfig
}

type ServerConfig struct {
	Port              string
	Host              string
	Environment       string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	RateLimitPerSecond int
	RateLimitBurst     int
}

type StorageConfig struct {
	DataDir    string
	LedgerFile string
	PrefsFile  string
	ExportDir  string
}

type LedgerConfig struct {
	WeekStart time.Weekday
}

func Load() *Config {
	// A local .env is a dev convenience; absence is fine.
	_ = godotenv.Load()

	dataDir := getEnv("LEDGER_DATA_DIR", "data")

	return &Config{
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "8080"),
			Host:               getEnv("SERVER_HOST", "localhost"),
			Environment:        getEnv("APP_ENV", "development"),
			ReadTimeout:        getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:       getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Storage: StorageConfig{
			DataDir:    dataDir,
			LedgerFile: getEnv("LEDGER_FILE", "ledger.json"),
			PrefsFile:  getEnv("LEDGER_PREFS_FILE", "budget.json"),
			ExportDir:  getEnv("LEDGER_EXPORT_DIR", filepath.Join(dataDir, "exports")),
		},
		Ledger: LedgerConfig{
			WeekStart: getWeekdayEnv("LEDGER_WEEK_START", time.Monday),
		},
	}
}

// LedgerPath returns the full path of the ledger file.
func (c *Config) LedgerPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.LedgerFile)
}

// PrefsPath returns the full path of the budget preferences file.
func (c *Config) PrefsPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.PrefsFile)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getWeekdayEnv(key string, defaultValue time.Weekday) time.Weekday {
	weekdays := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}

	if value := os.Getenv(key); value != "" {
		if weekday, ok := weekdays[strings.ToLower(value)]; ok {
			return weekday
		}
	}
	return defaultValue
}
