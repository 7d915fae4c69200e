package http

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/mock"
	"github.com/MKhiriev/founder-directory/internal/service"
	"github.com/MKhiriev/founder-directory/models"
)

func TestCreateFounder(t *testing.T) {
	router := newTestRouter(t, "")

	rec := serve(router, postForm(createFounderRoute, founderForm(map[string]string{
		models.GivenNames: "Ann",
		models.Cell:       "null",
	})))
	require.Equal(t, http.StatusOK, rec.Code)

	record := decodeRecord(t, rec.Body.Bytes())
	assert.Equal(t, "1", record[models.FieldID])
	assert.Equal(t, "1", record[models.FieldVersion])
	assert.Equal(t, "0", record[models.FieldDeleted])
	assert.Equal(t, "Ann", record[models.GivenNames])
	assert.Equal(t, "", record[models.Cell])
}

func TestUpdateFounder(t *testing.T) {
	router := newTestRouter(t, "")
	serve(router, postForm(createFounderRoute, founderForm(map[string]string{models.GivenNames: "Ann"})))

	form := founderForm(map[string]string{models.GivenNames: "Anna"})
	form.Set(paramID, "1")
	form.Set(paramVersion, "1")
	rec := serve(router, postForm(updateFounderRoute, form))
	require.Equal(t, http.StatusOK, rec.Code)

	record := decodeRecord(t, rec.Body.Bytes())
	assert.Equal(t, "2", record[models.FieldVersion])
	assert.Equal(t, "Anna", record[models.GivenNames])
}

func TestUpdateFounder_Rejected(t *testing.T) {
	tests := []struct {
		name string
		id   string
		v    string
	}{
		{name: "unknown id", id: "42", v: "1"},
		{name: "missing id", id: "", v: "1"},
		{name: "bad version", id: "1", v: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, "")
			serve(router, postForm(createFounderRoute, founderForm(nil)))

			form := founderForm(nil)
			form.Set(paramID, tt.id)
			form.Set(paramVersion, tt.v)
			rec := serve(router, postForm(updateFounderRoute, form))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, rejectedBody, rec.Body.String())
		})
	}
}

func TestDeleteFounder(t *testing.T) {
	router := newTestRouter(t, "")
	serve(router, postForm(createFounderRoute, founderForm(nil)))
	serve(router, postForm(createFounderRoute, founderForm(nil)))

	rec := serve(router, getRequest(deleteFounderRoute, url.Values{paramToken: {testKey}, paramID: {"1"}}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3", rec.Body.String())

	// deleting again, or deleting an unknown id, is refused
	rec = serve(router, getRequest(deleteFounderRoute, url.Values{paramToken: {testKey}, paramID: {"1"}}))
	assert.Equal(t, rejectedBody, rec.Body.String())
	rec = serve(router, getRequest(deleteFounderRoute, url.Values{paramToken: {testKey}, paramID: {"99"}}))
	assert.Equal(t, rejectedBody, rec.Body.String())
}

func TestGetUpdatesSince(t *testing.T) {
	router := newTestRouter(t, "")
	for range 3 {
		serve(router, postForm(createFounderRoute, founderForm(nil)))
	}
	serve(router, getRequest(deleteFounderRoute, url.Values{paramToken: {testKey}, paramID: {"2"}}))

	tests := []struct {
		name    string
		v, x    string
		wantIDs []string
	}{
		{name: "unbounded", v: "0", x: "0", wantIDs: []string{"1", "3", "2"}},
		{name: "upper bound", v: "0", x: "2", wantIDs: []string{"1"}},
		{name: "tail", v: "3", x: "", wantIDs: []string{"2"}},
		{name: "empty range", v: "4", x: "4", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := url.Values{paramToken: {testKey}, paramVersion: {tt.v}}
			if tt.x != "" {
				params.Set(paramUpperMax, tt.x)
			}
			rec := serve(router, getRequest(getUpdatesSinceRoute, params))
			require.Equal(t, http.StatusOK, rec.Code)

			records := decodeRecords(t, rec.Body.Bytes())
			ids := make([]string, 0, len(records))
			for _, r := range records {
				ids = append(ids, r[models.FieldID])
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestGetUpdatesSince_Tombstone(t *testing.T) {
	router := newTestRouter(t, "")
	serve(router, postForm(createFounderRoute, founderForm(map[string]string{models.GivenNames: "Ann"})))
	serve(router, getRequest(deleteFounderRoute, url.Values{paramToken: {testKey}, paramID: {"1"}}))

	rec := serve(router, getRequest(getUpdatesSinceRoute, url.Values{paramToken: {testKey}, paramVersion: {"1"}}))
	records := decodeRecords(t, rec.Body.Bytes())
	require.Len(t, records, 1)
	assert.Equal(t, models.DeletedSentinel, records[0][models.FieldDeleted])
	assert.Equal(t, "2", records[0][models.FieldVersion])
	assert.NotContains(t, records[0], models.GivenNames)
}

func TestGetUpdatesSince_InvalidVersion(t *testing.T) {
	router := newTestRouter(t, "")

	rec := serve(router, getRequest(getUpdatesSinceRoute, url.Values{paramToken: {testKey}, paramVersion: {"-1"}}))
	assert.Equal(t, rejectedBody, rec.Body.String())

	rec = serve(router, getRequest(getUpdatesSinceRoute, url.Values{paramToken: {testKey}, paramVersion: {"x"}}))
	assert.Equal(t, rejectedBody, rec.Body.String())
}

func TestDirectoryEndpoints_ServiceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mock.NewMockDirectoryService(ctrl)
	directory.EXPECT().Since(gomock.Any(), int64(0), int64(0)).Return(nil, errors.New("boom"))

	router := NewHandler(&service.Services{DirectoryService: directory}, "", logger.Nop()).Init()

	rec := serve(router, getRequest(getUpdatesSinceRoute, url.Values{paramToken: {testKey}}))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
