package notify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/founder-directory/internal/logger"
)

type staticDevice struct {
	id  string
	err error
}

func (d staticDevice) ID() (string, error) { return d.id, d.err }

func TestUsageReporter_Report_SendsParams(t *testing.T) {
	var (
		mu    sync.Mutex
		path  string
		query url.Values
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		path = r.URL.Path
		query = r.URL.Query()
	}))
	defer srv.Close()

	r := NewUsageReporter(srv.URL, "1.2.0", staticDevice{id: "device-1"}, logger.Nop())
	r.Report(context.Background(), "founders", "founder/7")
	r.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "/r.php", path)
	assert.Equal(t, "device-1", query.Get("d"))
	assert.Equal(t, runtime.GOOS, query.Get("m"))
	assert.Equal(t, runtime.GOARCH, query.Get("o"))
	assert.Equal(t, "founder-directory", query.Get("p"))
	assert.Equal(t, runtime.Version(), query.Get("r"))
	assert.Equal(t, "founders", query.Get("g"))
	assert.Equal(t, "1.2.0", query.Get("v"))
	assert.Equal(t, "founder/7", query.Get("u"))
}

func TestUsageReporter_Report_ServerErrorIsSwallowed(t *testing.T) {
	calls := 0
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		mu.Unlock()
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewUsageReporter(srv.URL, "1.0", staticDevice{id: "d"}, logger.Nop())
	assert.NotPanics(t, func() {
		r.Report(context.Background(), "page", "")
		r.Wait()
	})

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
}

func TestUsageReporter_Report_CancelledContextStillSends(t *testing.T) {
	done := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		done <- struct{}{}
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewUsageReporter(srv.URL, "1.0", staticDevice{id: "d"}, logger.Nop())
	r.Report(ctx, "page", "")
	r.Wait()

	require.Len(t, done, 1)
}

func TestUsageReporter_Report_NoDeviceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without a device id")
	}))
	defer srv.Close()

	r := NewUsageReporter(srv.URL, "1.0", staticDevice{err: errors.New("read-only fs")}, logger.Nop())
	r.Report(context.Background(), "page", "")
	r.Wait()
}

func TestNopUsageReporter(t *testing.T) {
	r := NopUsageReporter()
	assert.NotPanics(t, func() {
		r.Report(context.Background(), "page", "")
		r.Wait()
	})
}
