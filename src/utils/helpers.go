package utils

import "os"

func IsProd() bool {
	return os.Getenv("API_ENV") == "production"
}

// GetenvDefault reads an environment variable with a fallback.
func GetenvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
