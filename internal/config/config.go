package config

import "os"

// Config holds the process configuration. The datastore path is the single
// required value; everything else has a serviceable default.
type Config struct {
	DatabasePath string
	Addr         string
}

// Load reads configuration from the environment, falling back to defaults.
func Load() Config {
	return Config{
		DatabasePath: getenv("NORTHWIND_DB", "northwind.db"),
		Addr:         getenv("HTTP_ADDR", ":8000"),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
