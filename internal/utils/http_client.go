package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://scriptures.byu.edu/founders/", 30*time.Second)
//	resp, err := client.R().SetQueryParam("k", token).Get("getupdatessince.php")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient whose relative request URLs resolve
// against baseURL and whose requests time out after timeout. A zero timeout
// leaves the resty default.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
