package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_LOG_FILE", "env.log")
	t.Setenv("STORAGE_DB_DATABASE_URI", "env-settings.db")
	t.Setenv("STORAGE_POSTS_DRIVER", "sqlite3")
	t.Setenv("STORAGE_POSTS_DATABASE_URI", "env-posts.db")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "7s")
	t.Setenv("WEB_ADDRESS", "localhost:8088")
	t.Setenv("API_ADDRESS", "localhost:5009")
	t.Setenv("API_BASE_PATH", "/posts-api")
	t.Setenv("CONFIG", "env.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "env.log", cfg.App.LogFile)
	assert.Equal(t, "env-settings.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sqlite3", cfg.Storage.Posts.Driver)
	assert.Equal(t, "env-posts.db", cfg.Storage.Posts.DSN)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "localhost:8088", cfg.Web.HTTPAddress)
	assert.Equal(t, "localhost:5009", cfg.API.HTTPAddress)
	assert.Equal(t, "/posts-api", cfg.API.BasePath)
	assert.Equal(t, "env.json", cfg.JSONFilePath)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "forever")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}
