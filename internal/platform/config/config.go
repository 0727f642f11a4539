// Package config reads application configuration from environment variables.
package config

import "os"

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string
	Port string
}

// CatalogConfig holds the optional market catalog override.
type CatalogConfig struct {
	// Path points at a yaml file overriding the built-in symbol table and
	// session windows. Empty means the built-in catalog is used.
	Path string
}

// Load reads configuration from environment variables, applying defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("HOST", "0.0.0.0"),
			Port: getEnv("PORT", "8000"),
		},
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_PATH", ""),
		},
	}
}

// Addr returns the listen address for the HTTP server.
func (s *ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
