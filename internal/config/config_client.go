package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client-side process settings.
type ClientApp struct {
	// LogFile is where the terminal client writes its logs.
	LogFile string
}

// ClientAdapter holds settings used by the posts API transport.
type ClientAdapter struct {
	// RequestTimeout is the timeout for outbound requests; zero means none.
	RequestTimeout time.Duration
}

// ClientDB contains the settings database connection for the client.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds the settings database.
	DB ClientDB
}

// ClientConfig is the client view of [StructuredConfig], used by the terminal
// client and, embedded in [WebConfig], by the browser front end.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// WebConfig is the configuration of the browser front end.
type WebConfig struct {
	// Client holds the controller dependencies shared with the terminal client.
	Client ClientConfig
	// Server holds the listener settings.
	Server Server
}

// APIConfig is the configuration of the development posts API.
type APIConfig struct {
	// Server holds the listener settings.
	Server Server
	// Posts holds the posts storage settings.
	Posts PostsDB
}

// GetClientConfig builds and validates the terminal client configuration from
// the process arguments and environment.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// GetWebConfig builds and validates the browser front end configuration.
func GetWebConfig() (*WebConfig, error) {
	cfg, err := GetStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	webCfg := &WebConfig{
		Client: *newClientConfig(cfg),
		Server: cfg.Web,
	}
	return webCfg, webCfg.validate()
}

// GetAPIConfig builds and validates the development posts API configuration.
func GetAPIConfig() (*APIConfig, error) {
	cfg, err := GetStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	apiCfg := &APIConfig{
		Server: cfg.API,
		Posts:  cfg.Storage.Posts,
	}
	return apiCfg, apiCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}
}
