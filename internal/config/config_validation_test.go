package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(defaultConfig())
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(c *ClientConfig) {}},
		{name: "token not required", mutate: func(c *ClientConfig) { c.App.SessionToken = "" }},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty photo dir", mutate: func(c *ClientConfig) { c.Storage.Files.PhotoDir = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty server url", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero interval", mutate: func(c *ClientConfig) { c.Workers.SyncInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "zero lifetime", mutate: func(c *ClientConfig) { c.Workers.MaxLifetime = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{
			name: "usage without device id",
			mutate: func(c *ClientConfig) {
				c.App.ReportUsage = true
				c.Storage.Files.DeviceIDPath = ""
			},
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServerConfigValidate(t *testing.T) {
	assert.NoError(t, (&ServerConfig{HTTPAddress: ":8080", RequestTimeout: time.Second}).validate())
	assert.ErrorIs(t, (&ServerConfig{RequestTimeout: time.Second}).validate(), ErrInvalidServerConfigs)
	assert.ErrorIs(t, (&ServerConfig{HTTPAddress: ":8080"}).validate(), ErrInvalidServerConfigs)
}

func TestGetClientConfig_FromFlags(t *testing.T) {
	cfg, err := GetClientConfig([]string{"-k", "secret", "-i", "1m", "-d", "flags.db"})
	if assert.NoError(t, err) {
		assert.Equal(t, "secret", cfg.App.SessionToken)
		assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
		assert.Equal(t, "flags.db", cfg.Storage.DB.DSN)
		assert.Equal(t, DefaultMaxLifetime, cfg.Workers.MaxLifetime)
	}
}

func TestGetServerConfig_Defaults(t *testing.T) {
	cfg, err := GetServerConfig(nil)
	if assert.NoError(t, err) {
		assert.Equal(t, DefaultServerAddress, cfg.HTTPAddress)
		assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	}
}
