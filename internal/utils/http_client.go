package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "agreement-keeper-client"

// HTTPClient embeds *resty.Client so adapters get the full resty API.
type HTTPClient struct {
	*resty.Client
}

// ClientOption customises an HTTPClient.
type ClientOption func(*resty.Client)

// WithRetries retries GET and HEAD requests up to n times on transport
// errors and on 429, 502, 503 and 504, backing off from wait to maxWait.
// Other methods are never retried.
func WithRetries(n int, wait, maxWait time.Duration) ClientOption {
	return func(c *resty.Client) {
		c.SetRetryCount(n).
			SetRetryWaitTime(wait).
			SetRetryMaxWaitTime(maxWait).
			AddRetryCondition(retryableResponse)
	}
}

func retryableResponse(r *resty.Response, err error) bool {
	if r == nil || r.Request == nil {
		return false
	}
	switch r.Request.Method {
	case http.MethodGet, http.MethodHead:
	default:
		return false
	}
	if err != nil {
		return true
	}
	switch r.StatusCode() {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// NewHTTPClient returns a client with its own connection pool.
func NewHTTPClient(opts ...ClientOption) *HTTPClient {
	c := resty.New().SetHeader("User-Agent", userAgent)
	for _, opt := range opts {
		opt(c)
	}
	return &HTTPClient{Client: c}
}

// NewHTTPClientFor returns a client bound to baseURL. A positive timeout
// bounds each request.
func NewHTTPClientFor(baseURL string, timeout time.Duration, opts ...ClientOption) *HTTPClient {
	client := NewHTTPClient(opts...)
	client.SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return client
}
