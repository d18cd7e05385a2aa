package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/go-resty/resty/v2"
)

// maxAttempts is the total number of tries per request, including
// the first one.
const maxAttempts = 3

// retryableStatuses are the HTTP status codes treated as transient.
var retryableStatuses = []int{301, 302, 403, 404, 500, 503, 504}

// Fetcher retrieves post pages from the WordPress REST API. It keeps
// no state between calls beyond the shared HTTP client.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher creates a fetcher whose client retries transient
// failures up to maxAttempts total requests.
func NewFetcher() *Fetcher {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetRetryCount(maxAttempts - 1)
	client.SetRetryWaitTime(500 * time.Millisecond)
	client.AddRetryCondition(func(r *resty.Response, err error) bool {
		if err != nil {
			return true
		}
		return slices.Contains(retryableStatuses, r.StatusCode())
	})
	client.AddRetryHook(func(r *resty.Response, err error) {
		// r is nil when the request failed before it was sent
		// (e.g. an unparsable URL).
		if r == nil || err != nil {
			slog.Error("request failed, retrying", "err", err)
			return
		}
		slog.Warn("received retryable status, retrying", "url", r.Request.URL, "status", r.StatusCode())
	})

	return &Fetcher{client: client}
}

// FetchPosts performs a GET against url and decodes the JSON array
// of posts. A non-200 response after all retries is an error.
func (f *Fetcher) FetchPosts(ctx context.Context, url string) ([]wpPost, error) {
	res, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		slog.Error("failed to get a successful response", "url", url, "err", err)
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	if res.StatusCode() != 200 {
		slog.Error("failed to get a successful response", "url", url, "status", res.StatusCode())
		return nil, fmt.Errorf("fetching %s: http status %d", url, res.StatusCode())
	}

	var posts []wpPost
	if err := json.Unmarshal(res.Body(), &posts); err != nil {
		return nil, fmt.Errorf("decoding posts payload from %s: %w", url, err)
	}

	return posts, nil
}
