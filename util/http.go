package util

import (
	"net/http"
	"time"
)

const defaultUserAgent = "vidfetch/1.0"

// uaTransport stamps the service User-Agent on requests that did
// not set their own.
type uaTransport struct {
	base http.RoundTripper
}

func (t uaTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", defaultUserAgent)
	}
	return t.base.RoundTrip(req)
}

var httpSession = &http.Client{
	Timeout:   20 * time.Second,
	Transport: uaTransport{base: http.DefaultTransport},
}

func GetHTTPSession() *http.Client {
	return httpSession
}
