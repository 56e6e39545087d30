package config

import (
	"os"
)

// App holds the runtime configuration loaded from environment variables.
type App struct {
	Env      string
	HTTPPort string
	MongoURI string
	MongoDB  string
}

// Load returns application config populated from environment variables
// with sensible defaults.
func Load() App {
	return App{
		Env:      getEnv("APP_ENV", "dev"),
		HTTPPort: getEnv("PORT", "5000"),
		MongoURI: getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "school_attendance"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
