package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/service"
	"github.com/MKhiriev/founder-directory/internal/store"
	"github.com/MKhiriev/founder-directory/models"
)

const testKey = "key-1"

func newTestRouter(t *testing.T, sessionToken string) http.Handler {
	t.Helper()
	services := service.NewServices(store.NewStorages(), logger.Nop())
	return NewHandler(services, sessionToken, logger.Nop()).Init()
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func getRequest(path string, params url.Values) *http.Request {
	return httptest.NewRequest(http.MethodGet, path+"?"+params.Encode(), nil)
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func founderForm(values map[string]string) url.Values {
	form := url.Values{paramToken: {testKey}}
	for i, name := range models.FounderFields {
		form.Set(models.PositionalKey(i), values[name])
	}
	return form
}

func photoUpload(t *testing.T, key models.PhotoKey, data []byte, withFile bool) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField(paramToken, testKey))
	require.NoError(t, mw.WriteField(paramID, key.ID))
	require.NoError(t, mw.WriteField(paramPhotoRole, string(key.Role)))
	if withFile {
		part, err := mw.CreateFormFile(paramPhotoFile, key.FileName()+".jpg")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, uploadPhotoRoute, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeRecord(t *testing.T, body []byte) map[string]string {
	t.Helper()
	var record map[string]string
	require.NoError(t, json.Unmarshal(body, &record))
	return record
}

func decodeRecords(t *testing.T, body []byte) []map[string]string {
	t.Helper()
	var records []map[string]string
	require.NoError(t, json.Unmarshal(body, &records))
	return records
}
