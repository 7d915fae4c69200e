// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// sync client and the development directory server. It is populated by
// merging values from environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the session token and
	// the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local record store and the photo
	// cache directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the development
	// directory server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the directory server the client talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the polling schedule of the sync job.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SessionToken is the opaque key issued by the directory login flow.
	// The sync job does not start without it.
	// Env: APP_SESSION_TOKEN
	SessionToken string `env:"SESSION_TOKEN"`

	// Version is the version string reported with usage statistics.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// ReportUsage enables fire-and-forget usage reporting.
	// Env: APP_REPORT_USAGE
	ReportUsage bool `env:"REPORT_USAGE"`

	// LogPath is the file the client appends its log entries to.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system settings for cached photos and the device
	// identity.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the local record store.
type DB struct {
	// DSN is the SQLite database file path (e.g. "founders.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds file-system settings.
type Files struct {
	// PhotoDir is the flat directory of cached photo files.
	// Env: STORAGE_FILES_PHOTO_DIR
	PhotoDir string `env:"PHOTO_DIR"`

	// DeviceIDPath is the file holding the persisted device identity.
	// Env: STORAGE_FILES_DEVICE_ID_PATH
	DeviceIDPath string `env:"DEVICE_ID_PATH"`
}

// Server holds network and timeout settings for the development server.
type Server struct {
	// HTTPAddress is the TCP address the server listens on, in "host:port"
	// format (e.g. "127.0.0.1:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound transport configuration of the client.
type Adapter struct {
	// HTTPAddress is the base URL of the directory server endpoints.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for the background sync job.
type Workers struct {
	// SyncInterval is the pause between two reconciliation passes.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// MaxLifetime bounds how long the sync job keeps polling after start.
	// Env: WORKERS_MAX_LIFETIME
	MaxLifetime time.Duration `env:"MAX_LIFETIME"`
}

// Defaults applied when no source provides a value.
const (
	DefaultServerURL      = "http://scriptures.byu.edu/founders/"
	DefaultRequestTimeout = 30 * time.Second
	DefaultSyncInterval   = 5 * time.Minute
	DefaultMaxLifetime    = 2 * time.Hour
	DefaultDSN            = "founders.db"
	DefaultPhotoDir       = "photos"
	DefaultDeviceIDPath   = "device_id"
	DefaultServerAddress  = "127.0.0.1:8080"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB:    DB{DSN: DefaultDSN},
			Files: Files{PhotoDir: DefaultPhotoDir, DeviceIDPath: DefaultDeviceIDPath},
		},
		Server: Server{HTTPAddress: DefaultServerAddress, RequestTimeout: DefaultRequestTimeout},
		Adapter: Adapter{
			HTTPAddress:    DefaultServerURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{SyncInterval: DefaultSyncInterval, MaxLifetime: DefaultMaxLifetime},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Built-in defaults
//  2. Environment variables (a .env file in the working directory is loaded
//     first when present)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
