// Package customHttpClient owns the pooled transport shared by every
// outbound provider call, so repeated synthesis requests reuse connections
// instead of paying the dial latency each time.
package customHttpClient

import (
	"net/http"
	"sync"

	"github.com/akolanti/DocQA/internal/config"
)

var (
	once   sync.Once
	client *http.Client
)

var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

// GetPooledClient returns the process-wide client handed to the OpenAI and
// Gemini SDKs. Per-call deadlines come from the caller's context, not from
// a client timeout, so one slow strategy never shortens another's budget.
func GetPooledClient() *http.Client {
	once.Do(func() {
		client = &http.Client{Transport: customTransport}
	})
	return client
}
