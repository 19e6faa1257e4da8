package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the journal client in server access logs.
const UserAgent = "go-journal-keeper-client"

// HTTPClient embeds *resty.Client so callers use its request builder
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that sends [UserAgent] on
// every request. Requests are never retried: creating an entry is not
// idempotent.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetRetryCount(0)

	return &HTTPClient{Client: client}
}
