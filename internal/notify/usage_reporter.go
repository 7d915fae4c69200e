package notify

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/utils"
)

const (
	reportUsagePath = "r.php"
	productName     = "founder-directory"

	reportTimeout = 10 * time.Second
)

// Usage report parameter names.
const (
	paramDevice       = "d"
	paramManufacturer = "m"
	paramModel        = "o"
	paramProduct      = "p"
	paramRelease      = "r"
	paramSDK          = "s"
	paramPage         = "g"
	paramVersion      = "v"
	paramURL          = "u"
)

// DeviceIdentifier yields the stable id of this installation.
type DeviceIdentifier interface {
	ID() (string, error)
}

type httpUsageReporter struct {
	client  *utils.HTTPClient
	device  DeviceIdentifier
	version string

	wg     sync.WaitGroup
	logger *logger.Logger
}

// NewUsageReporter returns a [UsageReporter] sending GET r.php requests
// against baseURL. Every request runs on its own goroutine.
func NewUsageReporter(baseURL, version string, device DeviceIdentifier, logger *logger.Logger) UsageReporter {
	return &httpUsageReporter{
		client:  utils.NewHTTPClient(baseURL, reportTimeout),
		device:  device,
		version: version,
		logger:  logger,
	}
}

func (r *httpUsageReporter) Report(ctx context.Context, page, pageURL string) {
	deviceID, err := r.device.ID()
	if err != nil {
		r.logger.Warn().Err(err).
			Str("func", "httpUsageReporter.Report").
			Msg("device identity unavailable, report dropped")
		return
	}

	params := map[string]string{
		paramDevice:       deviceID,
		paramManufacturer: runtime.GOOS,
		paramModel:        runtime.GOARCH,
		paramProduct:      productName,
		paramRelease:      runtime.Version(),
		paramSDK:          runtime.Compiler,
		paramPage:         page,
		paramVersion:      r.version,
		paramURL:          pageURL,
	}

	reportCtx := context.WithoutCancel(ctx)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		resp, err := r.client.R().
			SetContext(reportCtx).
			SetQueryParams(params).
			Get(reportUsagePath)
		if err != nil {
			r.logger.Warn().Err(err).
				Str("func", "httpUsageReporter.Report").
				Str("page", page).
				Msg("usage report failed")
			return
		}
		if resp.IsError() {
			r.logger.Warn().
				Str("func", "httpUsageReporter.Report").
				Str("page", page).
				Int("status", resp.StatusCode()).
				Msg("usage report rejected")
		}
	}()
}

func (r *httpUsageReporter) Wait() {
	r.wg.Wait()
}

type nopUsageReporter struct{}

// NopUsageReporter returns a [UsageReporter] that drops every report. It is
// used when usage reporting is disabled.
func NopUsageReporter() UsageReporter {
	return nopUsageReporter{}
}

func (nopUsageReporter) Report(context.Context, string, string) {}

func (nopUsageReporter) Wait() {}
