package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	// Departments selectable when filing a case (short codes)
	DepartmentCodes []string
	// Platform roles granting the unit capability (case management,
	// statute administration)
	UnitRoles []string
	// Platform roles granting the admin capability (destructive deletion)
	AdminRoles []string
	// Directory browsing
	DirectoryPageSize int
	DirectoryTimeout  time.Duration
	// Extended variant: statute directory commands
	EnableStatutes bool
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		DBPath:            getEnv("DB_PATH", "db/cases.db"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		DepartmentCodes:   splitList(getEnv("DEPARTMENT_CODES", "CID,DTF")),
		UnitRoles:         splitList(getEnv("UNIT_ROLES", "detective")),
		AdminRoles:        splitList(getEnv("ADMIN_ROLES", "command")),
		DirectoryPageSize: getEnvInt("DIRECTORY_PAGE_SIZE", 5),
		DirectoryTimeout:  time.Duration(getEnvInt("DIRECTORY_TIMEOUT", 60)) * time.Second,
		EnableStatutes:    getEnvBool("ENABLE_STATUTES", true),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("[WARNING] Invalid value for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
