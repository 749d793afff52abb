package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"

	CountingDistinct = "distinct"
	CountingRecords  = "records"
)

type Config struct {
	ServerPort string
	// memory or sqlite; both keep all state inside the process
	StoreDriver      string
	SQLiteDSN        string
	SeedFile         string
	LogFormat        string
	LogColors        bool
	ProgressCounting string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		StoreDriver:      getEnv("STORE_DRIVER", StoreMemory),
		SQLiteDSN:        getEnv("SQLITE_DSN", "file:elearning?mode=memory&cache=shared"),
		SeedFile:         getEnv("SEED_FILE", ""),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		LogColors:        getEnvBool("LOG_COLORS", false),
		ProgressCounting: getEnv("PROGRESS_COUNTING", CountingDistinct),
	}, nil
}

// CountsDuplicateCompletions reports whether every completed progress record
// counts toward course progress, including repeats for the same module.
func (c *Config) CountsDuplicateCompletions() bool {
	return c.ProgressCounting == CountingRecords
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid boolean for %s: %v", key, err)
		return defaultValue
	}
	return parsed
}
