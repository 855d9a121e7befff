package config

import "os"

// Get returns the environment variable's value, or fallback when unset
// or empty. Callers load .env first (godotenv) in their composition root.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
