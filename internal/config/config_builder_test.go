package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStructuredConfig_Defaults(t *testing.T) {
	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "posts-client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverMemory, cfg.Storage.Posts.Driver)
	assert.Equal(t, "localhost:8081", cfg.Web.HTTPAddress)
	assert.Equal(t, "localhost:5002", cfg.API.HTTPAddress)
	assert.Equal(t, "/api", cfg.API.BasePath)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
}

func TestGetStructuredConfig_Priority(t *testing.T) {
	path := writeJSONConfig(t, `{
		"storage": {"db": {"dsn": "json.db"}, "posts": {"driver": "sqlite3", "dsn": "json-posts.db"}},
		"web": {"http_address": "localhost:7000"},
		"api": {"http_address": "localhost:7001"}
	}`)

	t.Setenv("STORAGE_DB_DATABASE_URI", "env.db")

	cfg, err := GetStructuredConfig([]string{
		"-d", "flag.db",
		"-a", "localhost:6000",
		"-c", path,
	})
	require.NoError(t, err)

	// env beats flags
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
	// flags beat json
	assert.Equal(t, "localhost:6000", cfg.Web.HTTPAddress)
	// json beats defaults
	assert.Equal(t, "localhost:7001", cfg.API.HTTPAddress)
	assert.Equal(t, DriverSQLite, cfg.Storage.Posts.Driver)
	assert.Equal(t, "json-posts.db", cfg.Storage.Posts.DSN)
	// defaults fill the rest
	assert.Equal(t, "/api", cfg.API.BasePath)
}

func TestGetStructuredConfig_Errors(t *testing.T) {
	t.Run("bad flag", func(t *testing.T) {
		_, err := GetStructuredConfig([]string{"-unknown"})
		assert.Error(t, err)
	})

	t.Run("missing json file", func(t *testing.T) {
		_, err := GetStructuredConfig([]string{"-c", "/definitely/not/here.json"})
		assert.Error(t, err)
	})

	t.Run("negative timeout", func(t *testing.T) {
		_, err := GetStructuredConfig([]string{"-request-timeout", "-1s"})
		assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
	})
}
