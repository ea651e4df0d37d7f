package config

import (
	"os"
)

// DefaultPort is used when PORT is not set
const DefaultPort = "3000"

// Config holds all application configuration
type Config struct {
	Port string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", DefaultPort),
	}
}

// Addr returns the listen address for all interfaces
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
