// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
)

// validate checks the merged [StructuredConfig] before it is split into views.
// Only cross-view rules live here; each view validates its own fields.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	// the settings database must outlive the process
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *WebConfig) validate() error {
	if err := cfg.Client.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *APIConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.BasePath != "" && !strings.HasPrefix(cfg.Server.BasePath, "/") {
		return ErrInvalidServerConfigs
	}

	switch cfg.Posts.Driver {
	case "", DriverMemory:
		return nil
	case DriverSQLite, DriverPostgres:
		if cfg.Posts.DSN == "" {
			return ErrInvalidStorageConfigs
		}
		return nil
	default:
		return ErrInvalidStorageConfigs
	}
}
