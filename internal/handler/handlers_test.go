package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/founder-directory/internal/config"
	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/service"
	"github.com/MKhiriev/founder-directory/internal/store"
)

func newTestServices() *service.Services {
	return service.NewServices(store.NewStorages(), logger.Nop())
}

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := &config.ServerConfig{HTTPAddress: ":8080"}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.ServerConfig
	}{
		{name: "empty address", cfg: &config.ServerConfig{}},
		{name: "nil config", cfg: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(newTestServices(), tt.cfg, logger.Nop())

			require.ErrorIs(t, err, errNoHandlersAreCreated)
			assert.Nil(t, h)
		})
	}
}

// The session key from the config reaches the router.
func TestNewHandlers_SessionToken(t *testing.T) {
	cfg := &config.ServerConfig{HTTPAddress: ":8080", SessionToken: "secret"}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())
	require.NoError(t, err)
	router := h.HTTP.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/getupdatessince.php?k=other&v=0", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/getupdatessince.php?k=secret&v=0", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
