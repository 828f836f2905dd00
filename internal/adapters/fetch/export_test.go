package fetch

import "net/http"

// NewFetcherWithClient exports newFetcherWithClient for testing.
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return newFetcherWithClient(client)
}

// NewFetcherWithLimit returns a Fetcher that rejects bodies larger than limit bytes.
func NewFetcherWithLimit(client *http.Client, limit int64) *Fetcher {
	f := newFetcherWithClient(client)
	f.maxSize = limit
	return f
}
