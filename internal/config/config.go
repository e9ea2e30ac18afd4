package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	RedisHost     string
	RedisPort     string
	SessionSecret string
	GinMode       string
	ServerPort    string
	UploadBaseDir string
	TemplatesGlob string
	// AdminBypassLogin enables the bootstrap admin/admin credential pair.
	// Defaults to on outside release mode so a fresh database is reachable.
	AdminBypassLogin bool
}

func Load() *Config {
	// Optional .env for local development; a missing file is fine.
	_ = godotenv.Load()

	ginMode := getEnv("GIN_MODE", "debug")

	return &Config{
		DBDriver:         getEnv("DB_DRIVER", "postgres"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "jtsuser"),
		DBPassword:       getEnv("DB_PASSWORD", "jtspassword"),
		DBName:           getEnv("DB_NAME", "jts_site"),
		RedisHost:        getEnv("REDIS_HOST", "localhost"),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		SessionSecret:    getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:          ginMode,
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		UploadBaseDir:    getEnv("UPLOAD_BASE_DIR", "uploads"),
		TemplatesGlob:    getEnv("TEMPLATES_GLOB", ""),
		AdminBypassLogin: getBoolEnv("ADMIN_BYPASS_LOGIN", ginMode != "release"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getBoolEnv(key string, defaultValue bool) bool {
	switch os.Getenv(key) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
