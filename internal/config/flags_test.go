package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8081}, expected: "localhost:8081"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 5002}, expected: "127.0.0.1:5002"},
		{name: "only port", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{name: "localhost", input: "localhost:8081", expected: NetAddress{Host: "localhost", Port: 8081}},
		{name: "ipv4", input: "0.0.0.0:5002", expected: NetAddress{Host: "0.0.0.0", Port: 5002}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "port not a number", input: "localhost:http", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "bad host", input: "example:8080", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, NetAddress{}, addr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	t.Run("all flags", func(t *testing.T) {
		cfg, err := parseFlags([]string{
			"-a", "localhost:9000",
			"-api-address", "127.0.0.1:5005",
			"-api-base-path", "/v1",
			"-d", "settings.db",
			"-posts-driver", "sqlite3",
			"-posts-dsn", "posts.db",
			"-request-timeout", "15s",
			"-log-file", "/tmp/client.log",
			"-config", "cfg.json",
		})
		require.NoError(t, err)

		assert.Equal(t, "localhost:9000", cfg.Web.HTTPAddress)
		assert.Equal(t, "127.0.0.1:5005", cfg.API.HTTPAddress)
		assert.Equal(t, "/v1", cfg.API.BasePath)
		assert.Equal(t, "settings.db", cfg.Storage.DB.DSN)
		assert.Equal(t, "sqlite3", cfg.Storage.Posts.Driver)
		assert.Equal(t, "posts.db", cfg.Storage.Posts.DSN)
		assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
		assert.Equal(t, "/tmp/client.log", cfg.App.LogFile)
		assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	})

	t.Run("no flags leaves zero values", func(t *testing.T) {
		cfg, err := parseFlags(nil)
		require.NoError(t, err)
		assert.Equal(t, StructuredConfig{}, *cfg)
	})

	t.Run("short config alias", func(t *testing.T) {
		cfg, err := parseFlags([]string{"-c", "short.json"})
		require.NoError(t, err)
		assert.Equal(t, "short.json", cfg.JSONFilePath)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := parseFlags([]string{"-nope"})
		assert.Error(t, err)
	})

	t.Run("bad address", func(t *testing.T) {
		_, err := parseFlags([]string{"-a", "nowhere"})
		assert.Error(t, err)
	})
}
