package configs

import (
	"os"
	"strconv"
	"time"
)

// Config carries the runtime settings read from the environment. Database
// settings live in configsdatabase, which builds its own DSN.
type Config struct {
	Port      string
	JWTSecret string
	JWTExpiry time.Duration

	// CommentsMembersOnly restricts reading an event's comments to the
	// organizer and invitees. Off by default: the historical behavior lets
	// any authenticated user read comments by event id, and posting is
	// already restricted. Pending product clarification.
	CommentsMembersOnly bool
}

// Load reads the configuration from environment variables, applying defaults
// where a variable is unset.
func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", "5000"),
		JWTSecret:           getEnv("JWT_SECRET", "development-secret"),
		JWTExpiry:           getEnvAsDuration("JWT_EXPIRATION", "24h"),
		CommentsMembersOnly: getEnvAsBool("COMMENTS_MEMBERS_ONLY", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	value := getEnv(key, defaultValue)
	d, err := time.ParseDuration(value)
	if err != nil {
		d, _ = time.ParseDuration(defaultValue)
	}
	return d
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
