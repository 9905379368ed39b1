// Package ownhttp contains the http client used for all requests
package ownhttp

import (
	"net/http"

	"golang.org/x/time/rate"
)

const userAgent = "coderelay (https://github.com/code-relay-cli/code-relay)"

// New returns a http.Client that sets our User-Agent header and
// throttles requests a bit. The GitHub API is unauthenticated here, so
// its rate limit is tight (60 requests per hour)
func New() *http.Client {
	// 1 request per second is way below anything this tool does in
	// normal operation, it just stops tight loops from burning the limit
	limiter := rate.NewLimiter(rate.Limit(1), 3)
	return &http.Client{
		Transport: NewAddHeaderTransport(NewThrottleTransport(nil, limiter)),
	}
}

// AddHeaderTransport sets the User-Agent header on every request
type AddHeaderTransport struct {
	T http.RoundTripper
}

func (t *AddHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", userAgent)
	}
	return t.T.RoundTrip(req)
}

func NewAddHeaderTransport(T http.RoundTripper) *AddHeaderTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	return &AddHeaderTransport{T}
}

// ThrottleTransport rate limits requests using the given limiter
type ThrottleTransport struct {
	T       http.RoundTripper
	limiter *rate.Limiter
}

func (t *ThrottleTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.T.RoundTrip(req)
}

func NewThrottleTransport(T http.RoundTripper, limiter *rate.Limiter) *ThrottleTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	return &ThrottleTransport{T, limiter}
}
