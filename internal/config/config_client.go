package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// SessionToken is the key sent as "k" on every server request.
	SessionToken string
	// Version is reported with usage statistics.
	Version string
	// ReportUsage enables the usage reporter.
	ReportUsage bool
	// LogPath is the client log file.
	LogPath string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the directory server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientFiles contains file-system locations used by the client.
type ClientFiles struct {
	PhotoDir     string
	DeviceIDPath string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Files holds photo cache and device identity locations.
	Files ClientFiles
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync job runs a pass.
	SyncInterval time.Duration
	// MaxLifetime bounds how long the sync job keeps polling.
	MaxLifetime time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// ServerConfig is the configuration of the development directory server.
type ServerConfig struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	// SessionToken, when set, is the only key the server accepts. An empty
	// value accepts any non-empty key.
	SessionToken string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			SessionToken: cfg.App.SessionToken,
			Version:      cfg.App.Version,
			ReportUsage:  cfg.App.ReportUsage,
			LogPath:      cfg.App.LogPath,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			Files: ClientFiles{
				PhotoDir:     cfg.Storage.Files.PhotoDir,
				DeviceIDPath: cfg.Storage.Files.DeviceIDPath,
			},
		},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
			MaxLifetime:  cfg.Workers.MaxLifetime,
		},
	}
}

// GetServerConfig builds and validates the development server configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		SessionToken:   cfg.App.SessionToken,
	}

	return serverCfg, serverCfg.validate()
}
