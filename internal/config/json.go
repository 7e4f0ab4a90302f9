package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
//
// Example:
//
//	{
//	  "app": {"log_file": "/tmp/posts-client.log"},
//	  "adapter": {"request_timeout": "10s"},
//	  "storage": {
//	    "db": {"dsn": "posts-client.db"},
//	    "posts": {"driver": "sqlite3", "dsn": "posts.db"}
//	  },
//	  "web": {"http_address": "localhost:8081"},
//	  "api": {"http_address": "localhost:5002", "base_path": "/api"}
//	}
type StructuredJSONConfig struct {
	App struct {
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Posts struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"posts,omitempty"`
	} `json:"storage,omitempty"`

	Web jsonServer `json:"web,omitempty"`
	API jsonServer `json:"api,omitempty"`
}

type jsonServer struct {
	HTTPAddress    string   `json:"http_address"`
	BasePath       string   `json:"base_path"`
	RequestTimeout Duration `json:"request_timeout"`
}

func (s jsonServer) toServer() Server {
	return Server{
		HTTPAddress:    s.HTTPAddress,
		BasePath:       s.BasePath,
		RequestTimeout: time.Duration(s.RequestTimeout),
	}
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogFile: jsonCfg.App.LogFile,
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Posts: PostsDB{
				Driver: jsonCfg.Storage.Posts.Driver,
				DSN:    jsonCfg.Storage.Posts.DSN,
			},
		},
		Web: jsonCfg.Web.toServer(),
		API: jsonCfg.API.toServer(),
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
