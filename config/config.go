package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	LogLevel      string
	MaxFileSize   int64
	TrackerDBPath string
}

func LoadConfig() *Config {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	trackerDBPath := os.Getenv("TRACKER_DB_PATH")
	if trackerDBPath == "" {
		trackerDBPath = "unknown_codes.db"
	}

	maxFileSize := int64(10 * 1024 * 1024) // 10 MB
	if v := os.Getenv("MAX_FILE_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			maxFileSize = n
		}
	}

	return &Config{
		ServerPort:    serverPort,
		LogLevel:      logLevel,
		MaxFileSize:   maxFileSize,
		TrackerDBPath: trackerDBPath,
	}
}
