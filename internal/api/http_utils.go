package api

import (
	"net"
	"net/http"
	"time"
)

// DefaultHTTPClient is a shared HTTP client with connection pooling.
// Reusing a single client keeps connections alive between notifications
// instead of dialing for each request.
//
// No request timeout is set here; callers that need bounded latency
// pass a context deadline on the individual call.
var DefaultHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}
