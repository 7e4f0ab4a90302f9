package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientConfig_validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr error
	}{
		{
			name: "valid",
			cfg:  ClientConfig{Storage: ClientStorage{DB: ClientDB{DSN: "posts-client.db"}}},
		},
		{
			name:    "empty dsn",
			cfg:     ClientConfig{},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory dsn",
			cfg:     ClientConfig{Storage: ClientStorage{DB: ClientDB{DSN: "file::memory:"}}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "negative timeout",
			cfg: ClientConfig{
				Storage: ClientStorage{DB: ClientDB{DSN: "posts-client.db"}},
				Adapter: ClientAdapter{RequestTimeout: -1},
			},
			wantErr: ErrInvalidAdapterConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWebConfig_validate(t *testing.T) {
	valid := ClientConfig{Storage: ClientStorage{DB: ClientDB{DSN: "posts-client.db"}}}

	assert.NoError(t, (&WebConfig{Client: valid, Server: Server{HTTPAddress: "localhost:8081"}}).validate())
	assert.ErrorIs(t, (&WebConfig{Client: valid}).validate(), ErrInvalidServerConfigs)
	assert.ErrorIs(t, (&WebConfig{Server: Server{HTTPAddress: "localhost:8081"}}).validate(), ErrInvalidStorageConfigs)
}

func TestAPIConfig_validate(t *testing.T) {
	addr := Server{HTTPAddress: "localhost:5002", BasePath: "/api"}

	tests := []struct {
		name    string
		cfg     APIConfig
		wantErr error
	}{
		{name: "memory", cfg: APIConfig{Server: addr, Posts: PostsDB{Driver: DriverMemory}}},
		{name: "sqlite with dsn", cfg: APIConfig{Server: addr, Posts: PostsDB{Driver: DriverSQLite, DSN: "posts.db"}}},
		{name: "pgx without dsn", cfg: APIConfig{Server: addr, Posts: PostsDB{Driver: DriverPostgres}}, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown driver", cfg: APIConfig{Server: addr, Posts: PostsDB{Driver: "mongo"}}, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", cfg: APIConfig{Posts: PostsDB{Driver: DriverMemory}}, wantErr: ErrInvalidServerConfigs},
		{
			name:    "relative base path",
			cfg:     APIConfig{Server: Server{HTTPAddress: "localhost:5002", BasePath: "api"}},
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
