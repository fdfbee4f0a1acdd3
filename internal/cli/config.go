package cli

import "os"

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Username  string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("WORDGAME_SERVER", "http://localhost:8080"),
		Username:  os.Getenv("WORDGAME_USERNAME"),
	}
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
