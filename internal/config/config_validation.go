// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the merged [StructuredConfig] has no negative
// durations. Per-role requirements are checked by [ClientConfig.validate]
// and [ServerConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Workers.SyncInterval < 0 || cfg.Workers.MaxLifetime < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// validate does not require a session token: a client without one runs
// with the sync job stopped.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Files.PhotoDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.MaxLifetime <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.ReportUsage && cfg.Storage.Files.DeviceIDPath == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
