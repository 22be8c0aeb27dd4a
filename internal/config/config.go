package config // package config loads application configuration from environment variables

import (
	"os" // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable; defaults keep the tool runnable with an
// empty environment since it manages a single restaurant on one machine.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on
}

// Load reads configuration values from environment variables and
// returns a Config.
func Load() Config {
	return Config{
		Env:  getenv("APP_ENV", "dev"),   // environment (dev/test/prod)
		Port: getenv("APP_PORT", "8080"), // port to bind the HTTP server
	}
}

// getenv retrieves an environment variable, falling back to a default
// when unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
