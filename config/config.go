package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
)

const appDirName = "peeky"

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	SQLite SQLiteConfig
}

type ServerConfig struct {
	AppEnv   string
	GRPCPort string
	HTTPAddr string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
	// File enables a rotating log file next to the database when set.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

type SQLiteConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	BusyTimeoutMS   int
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "dev"),
			GRPCPort: getEnv("GRPC_PORT", ":8082"),
			HTTPAddr: getEnv("HTTP_ADDR", "127.0.0.1:8083"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
			File:              getEnv("LOG_FILE", ""),
			MaxSizeMB:         getEnvInt("LOG_FILE_MAX_SIZE_MB", 10),
			MaxBackups:        getEnvInt("LOG_FILE_MAX_BACKUPS", 3),
		},
		SQLite: SQLiteConfig{
			Path:            getEnv("SQLITE_PATH", ""),
			MaxOpenConns:    getEnvInt("SQLITE_MAX_OPEN_CONNS", 4),
			MaxIdleConns:    getEnvInt("SQLITE_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getEnvInt("SQLITE_CONN_MAX_LIFETIME", 300),
			BusyTimeoutMS:   getEnvInt("SQLITE_BUSY_TIMEOUT_MS", 5000),
		},
	}
}

// DatabasePath returns the configured SQLite path, or peeky.db under the
// user's XDG data directory. Parent directories are created as needed.
func (c SQLiteConfig) DatabasePath() (string, error) {
	if c.Path == "" {
		return xdg.DataFile(filepath.Join(appDirName, "peeky.db"))
	}
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return "", err
	}
	return c.Path, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
