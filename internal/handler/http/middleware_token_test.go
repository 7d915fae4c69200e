package http

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/founder-directory/models"
)

func TestSessionToken(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		sent       string
		wantStatus int
	}{
		{name: "any key accepted", configured: "", sent: "anything", wantStatus: http.StatusOK},
		{name: "empty key rejected", configured: "", sent: "", wantStatus: http.StatusUnauthorized},
		{name: "matching key", configured: testKey, sent: testKey, wantStatus: http.StatusOK},
		{name: "mismatching key", configured: testKey, sent: "other", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, tt.configured)

			rec := serve(router, getRequest(getUpdatesSinceRoute, url.Values{paramToken: {tt.sent}}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, rejectedBody, rec.Body.String())
			}
		})
	}
}

func TestSessionToken_Multipart(t *testing.T) {
	router := newTestRouter(t, testKey)

	rec := serve(router, photoUpload(t, models.PhotoKey{Role: models.RoleFounder, ID: "1"}, []byte("x"), true))
	assert.Equal(t, http.StatusOK, rec.Code)
}
