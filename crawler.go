package main

import (
	"context"
	"fmt"
	"log/slog"
)

// Crawler walks the paginated posts API and turns every post into a
// normalized Post record.
type Crawler struct {
	fetcher  *Fetcher
	settings *Settings
	writer   *MarkdownWriter // optional, nil disables markdown export
}

// NewCrawler creates a crawler. writer may be nil.
func NewCrawler(fetcher *Fetcher, settings *Settings, writer *MarkdownWriter) *Crawler {
	return &Crawler{
		fetcher:  fetcher,
		settings: settings,
		writer:   writer,
	}
}

// pageURL builds the API URL for one page of posts at the given offset.
func (c *Crawler) pageURL(offset int) string {
	return fmt.Sprintf(
		"%s/wp-json/wp/v2/posts?_embed&categories=%d&per_page=%d&offset=%d&order=desc",
		c.settings.BaseURL, c.settings.Category, c.settings.PerPage, offset,
	)
}

// Crawl fetches pages pages of posts in the API's descending order
// and returns the normalized records in crawl order. A failed page
// fetch aborts the whole run: partial results are discarded and an
// error is returned.
func (c *Crawler) Crawl(ctx context.Context, pages int) ([]Post, error) {
	var posts []Post

	for i := 0; i < pages; i++ {
		offset := i * c.settings.PerPage
		url := c.pageURL(offset)

		pagePosts, err := c.fetcher.FetchPosts(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("crawling page %d: %w", i, err)
		}
		slog.Info("fetched page", "offset", offset, "posts", len(pagePosts))

		for _, p := range pagePosts {
			posts = append(posts, Post{
				Title:   p.Title.Rendered,
				Content: Normalize(p.Content.Rendered),
			})

			if c.writer != nil {
				if err := c.writer.Save(p.Title.Rendered, p.Content.Rendered); err != nil {
					slog.Error("markdown export failed", "title", p.Title.Rendered, "err", err)
				}
			}
		}
	}

	return posts, nil
}
