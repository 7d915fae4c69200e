// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/founder-directory/internal/config"
	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/models"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL + "/founders/", RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func textHandler(t *testing.T, method, path, body string, check func(r *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, method, r.Method)
		assert.Equal(t, "/founders/"+path, r.URL.Path)
		if check != nil {
			check(r)
		}
		_, _ = w.Write([]byte(body))
	}
}

func sampleFounder() models.Founder {
	f := models.Founder{ID: "12", Version: 4}
	f.SetField(models.GivenNames, "Ann")
	f.SetField(models.Surnames, "Lee")
	f.SetField(models.Email, models.NullMarker)
	f.SetField(models.SpouseImageURL, "s.jpg")
	return f
}

// ── DeleteFounder ───────────────────────────────────────────────────────────

func TestDeleteFounder_Success(t *testing.T) {
	srv := httptest.NewServer(textHandler(t, http.MethodGet, "deletefounder.php", " 9\n", func(r *http.Request) {
		assert.Equal(t, "tok", r.URL.Query().Get("k"))
		assert.Equal(t, "12", r.URL.Query().Get("i"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).DeleteFounder(context.Background(), "tok", "12")
	require.NoError(t, err)
	assert.Equal(t, int64(9), got)
}

func TestDeleteFounder_Rejected(t *testing.T) {
	srv := httptest.NewServer(textHandler(t, http.MethodGet, "deletefounder.php", "0", nil))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).DeleteFounder(context.Background(), "tok", "12")
	assert.ErrorIs(t, err, ErrRejected)
}

func TestDeleteFounder_Malformed(t *testing.T) {
	srv := httptest.NewServer(textHandler(t, http.MethodGet, "deletefounder.php", "<html>", nil))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).DeleteFounder(context.Background(), "tok", "12")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestDeleteFounder_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).DeleteFounder(context.Background(), "tok", "12")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── CreateFounder / UpdateFounder ───────────────────────────────────────────

func TestCreateFounder_SendsPositionalFields(t *testing.T) {
	srv := httptest.NewServer(textHandler(t, http.MethodPost, "addfounder.php",
		`{"id":"77","version":5,"given_names":"Ann","surnames":"Lee","email":null,"deleted":"0"}`,
		func(r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "tok", r.PostForm.Get("k"))
			assert.Equal(t, "Ann", r.PostForm.Get("f1"))
			assert.Equal(t, "Lee", r.PostForm.Get("f2"))
			assert.Equal(t, "", r.PostForm.Get("f6"), "null marker sent as empty")
			assert.Equal(t, "s.jpg", r.PostForm.Get("f41"))
			assert.Empty(t, r.PostForm.Get("i"), "placeholder id is not sent")
			assert.Len(t, r.PostForm, len(models.FounderFields)+1)
		}))
	defer srv.Close()

	local := sampleFounder()
	local.ID = "new-abc"

	got, err := newTestAdapter(t, srv.URL).CreateFounder(context.Background(), "tok", local)
	require.NoError(t, err)
	assert.Equal(t, "77", got.ID)
	assert.Equal(t, int64(5), got.Version)
	assert.Equal(t, "Ann", got.Field(models.GivenNames))
	assert.Equal(t, "", got.Field(models.Email))
}

func TestCreateFounder_MissingID(t *testing.T) {
	srv := httptest.NewServer(textHandler(t, http.MethodPost, "addfounder.php", `{"version":5}`, nil))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateFounder(context.Background(), "tok", sampleFounder())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestUpdateFounder_SendsIDAndVersion(t *testing.T) {
	srv := httptest.NewServer(textHandler(t, http.MethodPost, "updatefounder.php",
		`{"id":12,"version":"13","given_names":"Annie"}`,
		func(r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "12", r.PostForm.Get("i"))
			assert.Equal(t, "4", r.PostForm.Get("v"))
			assert.Equal(t, "tok", r.PostForm.Get("k"))
		}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).UpdateFounder(context.Background(), "tok", sampleFounder())
	require.NoError(t, err)
	assert.Equal(t, "12", got.ID)
	assert.Equal(t, int64(13), got.Version, "string version accepted")
	assert.Equal(t, "Annie", got.Field(models.GivenNames))
}

func TestUpdateFounder_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{name: "rejected", body: "0", want: ErrRejected},
		{name: "not json", body: "oops", want: ErrMalformedResponse},
		{name: "no version", body: `{"id":"12"}`, want: ErrMalformedResponse},
		{name: "bad version", body: `{"id":"12","version":"x"}`, want: ErrMalformedResponse},
		{name: "array", body: `[]`, want: ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(textHandler(t, http.MethodPost, "updatefounder.php", tt.body, nil))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).UpdateFounder(context.Background(), "tok", sampleFounder())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpdateFounder_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).UpdateFounder(context.Background(), "tok", sampleFounder())
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── GetUpdatesSince ─────────────────────────────────────────────────────────

func TestGetUpdatesSince_DecodesEntries(t *testing.T) {
	body := `[
		{"id":"3","version":"6","given_names":"Cy","deleted":"0"},
		{"id":"4","version":7,"deleted":"1"},
		{"version":8},
		"garbage",
		{"id":"5","version":"9","surnames":"null"}
	]`
	srv := httptest.NewServer(textHandler(t, http.MethodGet, "getupdatessince.php", body, func(r *http.Request) {
		assert.Equal(t, "tok", r.URL.Query().Get("k"))
		assert.Equal(t, "5", r.URL.Query().Get("v"))
		assert.Equal(t, "9", r.URL.Query().Get("x"))
	}))
	defer srv.Close()

	batch, err := newTestAdapter(t, srv.URL).GetUpdatesSince(context.Background(), "tok", 5, 9)
	require.NoError(t, err)

	require.Len(t, batch.Entries, 3)
	assert.Equal(t, 2, batch.Skipped)

	assert.Equal(t, "3", batch.Entries[0].Founder.ID)
	assert.Equal(t, int64(6), batch.Entries[0].Founder.Version)
	assert.False(t, batch.Entries[0].Deleted)
	assert.Equal(t, "Cy", batch.Entries[0].Founder.Field(models.GivenNames))

	assert.Equal(t, "4", batch.Entries[1].Founder.ID)
	assert.True(t, batch.Entries[1].Deleted)

	assert.Equal(t, "", batch.Entries[2].Founder.Field(models.Surnames))
}

func TestGetUpdatesSince_EmptyArray(t *testing.T) {
	srv := httptest.NewServer(textHandler(t, http.MethodGet, "getupdatessince.php", "[]", nil))
	defer srv.Close()

	batch, err := newTestAdapter(t, srv.URL).GetUpdatesSince(context.Background(), "tok", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, batch.Entries)
	assert.Zero(t, batch.Skipped)
}

func TestGetUpdatesSince_NotAnArray(t *testing.T) {
	for _, body := range []string{`{"id":"1"}`, `not json`, ``} {
		srv := httptest.NewServer(textHandler(t, http.MethodGet, "getupdatessince.php", body, nil))

		_, err := newTestAdapter(t, srv.URL).GetUpdatesSince(context.Background(), "tok", 0, 0)
		assert.ErrorIs(t, err, ErrMalformedResponse, "body %q", body)
		srv.Close()
	}
}

// ── Photos ──────────────────────────────────────────────────────────────────

func TestUploadPhoto_Multipart(t *testing.T) {
	srv := httptest.NewServer(textHandler(t, http.MethodPost, "uploadphoto.php", `{"result":"success"}`, func(r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "tok", r.FormValue("k"))
		assert.Equal(t, "77", r.FormValue("i"))
		assert.Equal(t, "spouse", r.FormValue("t"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg"), data)
		assert.Equal(t, "spouse77.jpg", header.Filename)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).UploadPhoto(context.Background(), "tok",
		models.PhotoKey{Role: models.RoleSpouse, ID: "77"}, []byte("jpeg"))
	require.NoError(t, err)
}

func TestUploadPhoto_Results(t *testing.T) {
	tests := []struct {
		body string
		want error
	}{
		{body: `{"result":"failure"}`, want: ErrRejected},
		{body: `{"result":"maybe"}`, want: ErrMalformedResponse},
		{body: `ok`, want: ErrMalformedResponse},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(textHandler(t, http.MethodPost, "uploadphoto.php", tt.body, nil))

		err := newTestAdapter(t, srv.URL).UploadPhoto(context.Background(), "tok",
			models.PhotoKey{Role: models.RoleFounder, ID: "1"}, []byte("x"))
		assert.ErrorIs(t, err, tt.want, "body %q", tt.body)
		srv.Close()
	}
}

func TestDownloadPhoto(t *testing.T) {
	srv := httptest.NewServer(textHandler(t, http.MethodGet, "getphoto.php", "jpeg-bytes", func(r *http.Request) {
		assert.Equal(t, "founder", r.URL.Query().Get("t"))
		assert.Equal(t, "3", r.URL.Query().Get("i"))
	}))
	defer srv.Close()

	data, err := newTestAdapter(t, srv.URL).DownloadPhoto(context.Background(), "tok",
		models.PhotoKey{Role: models.RoleFounder, ID: "3"})
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestDownloadPhoto_Empty(t *testing.T) {
	srv := httptest.NewServer(textHandler(t, http.MethodGet, "getphoto.php", "", nil))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).DownloadPhoto(context.Background(), "tok",
		models.PhotoKey{Role: models.RoleFounder, ID: "3"})
	assert.ErrorIs(t, err, ErrNoPhoto)
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "http://scriptures.byu.edu/founders/", want: "http://scriptures.byu.edu/founders"},
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "  https://a.example  ", want: "https://a.example"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
