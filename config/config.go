package config

import (
	"os"
)

type Config struct {
	DatabaseURL string
	Port        string
}

// LoadConfig reads configuration from environment variables. DATABASE_URL is
// the single connection string for the relational store; PORT falls back to
// 8080 so the server can run locally without any setup.
func LoadConfig() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        port,
	}
}
