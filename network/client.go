// Package network provides a pre-configured HTTP client for the application's outbound requests.
package network

import (
	"net/http"
	"time"

	"github.com/tonearm-cli/tonearm/constant"
)

// Client is the singleton HTTP client shared across the application.
// Every request is stamped with the application User-Agent.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: &transport{base: newTransport()},
}

// transport decorates the base RoundTripper with the application identity header.
type transport struct {
	base http.RoundTripper
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", constant.UserAgent)
	}
	return t.base.RoundTrip(req)
}

// newTransport initializes a tuned http.Transport with conservative pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
