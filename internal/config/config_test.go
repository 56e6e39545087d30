package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGO_DB", "")
	t.Setenv("APP_ENV", "")

	cfg := Load()

	assert.Equal(t, "5000", cfg.HTTPPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "school_attendance", cfg.MongoDB)
	assert.Equal(t, "dev", cfg.Env)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGO_DB", "ghss117")
	t.Setenv("APP_ENV", "production")

	cfg := Load()

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.MongoURI)
	assert.Equal(t, "ghss117", cfg.MongoDB)
	assert.Equal(t, "production", cfg.Env)
}
