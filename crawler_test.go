package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// newPostsServer serves a WordPress-style posts endpoint returning
// perPage posts per page and records the requested offsets.
func newPostsServer(t *testing.T, perPage int) (*httptest.Server, func() []string) {
	t.Helper()

	var mu sync.Mutex
	var offsets []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		offset := r.URL.Query().Get("offset")
		mu.Lock()
		offsets = append(offsets, offset)
		mu.Unlock()

		var posts []map[string]any
		for i := 0; i < perPage; i++ {
			posts = append(posts, map[string]any{
				"title":   map[string]string{"rendered": fmt.Sprintf("post-%s-%d", offset, i)},
				"content": map[string]string{"rendered": "<p>body</p>"},
			})
		}
		json.NewEncoder(w).Encode(posts)
	}))

	return server, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return offsets
	}
}

func testSettings(baseURL string) *Settings {
	return &Settings{
		BaseURL:  baseURL,
		Category: 610,
		PerPage:  10,
		Pages:    5,
	}
}

func TestCrawlRequestsExpectedOffsets(t *testing.T) {
	server, offsets := newPostsServer(t, 2)
	defer server.Close()

	crawler := NewCrawler(NewFetcher(), testSettings(server.URL), nil)
	posts, err := crawler.Crawl(context.Background(), 5)
	require.NoError(t, err)

	require.Equal(t, []string{"0", "10", "20", "30", "40"}, offsets())
	require.Len(t, posts, 10)
	// crawl order: page order, then post order within each page
	require.Equal(t, "post-0-0", posts[0].Title)
	require.Equal(t, "post-0-1", posts[1].Title)
	require.Equal(t, "post-10-0", posts[2].Title)
	require.Equal(t, "post-40-1", posts[9].Title)
}

func TestCrawlNormalizesContent(t *testing.T) {
	server, _ := newPostsServer(t, 1)
	defer server.Close()

	crawler := NewCrawler(NewFetcher(), testSettings(server.URL), nil)
	posts, err := crawler.Crawl(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "body", posts[0].Content)
}

func TestCrawlAbortsOnPageFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("offset") != "0" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`[{"title": {"rendered": "only"}, "content": {"rendered": ""}}]`))
	}))
	defer server.Close()

	crawler := NewCrawler(NewFetcher(), testSettings(server.URL), nil)
	posts, err := crawler.Crawl(context.Background(), 3)
	require.Error(t, err)
	require.Nil(t, posts)
}

func TestCrawlRequestsCategoryAndOrder(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	crawler := NewCrawler(NewFetcher(), testSettings(server.URL), nil)
	_, err := crawler.Crawl(context.Background(), 1)
	require.NoError(t, err)

	require.Contains(t, gotQuery, "categories=610")
	require.Contains(t, gotQuery, "per_page=10")
	require.Contains(t, gotQuery, "order=desc")
	require.Contains(t, gotQuery, "_embed")
}

func TestCrawlZeroPages(t *testing.T) {
	server, offsets := newPostsServer(t, 1)
	defer server.Close()

	crawler := NewCrawler(NewFetcher(), testSettings(server.URL), nil)
	posts, err := crawler.Crawl(context.Background(), 0)
	require.NoError(t, err)
	require.Empty(t, posts)
	require.Empty(t, offsets())
}
