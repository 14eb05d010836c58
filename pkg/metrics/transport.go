package metrics

import (
	"net/http"
	"strconv"
	"time"
)

// Transport is an http.RoundTripper reporting GitHub request durations.
type Transport struct {
	Base    http.RoundTripper
	metrics Provider
}

// NewTransport wraps base. A nil base uses http.DefaultTransport.
func NewTransport(base http.RoundTripper, metrics Provider) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{Base: base, metrics: metrics}
}

// RoundTrip performs the request and observes its duration.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.Base.RoundTrip(req)
	elapsed := float64(time.Since(start)) / float64(time.Second)
	if resp == nil && err != nil {
		return resp, err
	}

	t.metrics.ObserveGithubRequestDuration(req.Method, req.URL.Path, strconv.Itoa(resp.StatusCode), elapsed)
	return resp, err
}
