package config

import (
	"os"
	"strconv"
	"time"
)

type GlobalConfig struct {
	AccessTokenTTL int // in minutes
	ServerPort     string
	LogLevel       string
	GinMode        string
}

func LoadGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		AccessTokenTTL: GetEnvInt("ACCESS_TOKEN_TTL_MINUTES", 30),
		ServerPort:     GetEnvOrDefault("SERVER_PORT", "8000"),
		LogLevel:       GetEnvOrDefault("LOG_LEVEL", "info"),
		GinMode:        GetEnvOrDefault("GIN_MODE", ""),
	}
}

// AccessTokenDuration returns AccessTokenTTL as a time.Duration.
func (c GlobalConfig) AccessTokenDuration() time.Duration {
	return time.Duration(c.AccessTokenTTL) * time.Minute
}

// GetEnv retrieves the value of the environment variable named by the key.
// It panics when the variable is not set or empty.
func GetEnv(key string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	} else {
		panic("critical config missing: " + key)
	}
}

// GetEnvOrDefault retrieves the value or returns default if not set.
func GetEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt parses an integer variable, falling back to defaultValue when unset or invalid.
func GetEnvInt(key string, defaultValue int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// GetEnvBool parses a boolean variable, falling back to defaultValue when unset or invalid.
func GetEnvBool(key string, defaultValue bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
