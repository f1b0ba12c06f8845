// Package network provides the pre-configured HTTP transports content and resolver requests go through.
package network

import (
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/vidkit/vidkit/key"
)

// Client is the HTTP client shared across the application for efficient resource utilization.
// It has no overall timeout because content bodies are streamed for as long as the caller reads them.
var Client = &http.Client{
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}

// New returns a client configured from the network.* settings.
// With network.fingerprint enabled requests go through the Chrome-fingerprinted transport.
func New() *http.Client {
	transport := Client.Transport
	if viper.GetBool(key.NetworkFingerprint) {
		transport = Fingerprinted()
	}

	return &http.Client{
		Timeout:   time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second,
		Transport: transport,
	}
}
