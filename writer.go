package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// MarkdownWriter optionally exports each crawled post's raw HTML
// body as a markdown file named after the post title. The JSON store
// stays the source of truth; this is a convenience rendering.
type MarkdownWriter struct {
	dir       string
	converter *md.Converter
}

func NewMarkdownWriter(dir string) *MarkdownWriter {
	return &MarkdownWriter{
		dir:       dir,
		converter: md.NewConverter("", true, nil),
	}
}

// Save converts rawHTML to markdown and writes it to <dir>/<slug>.md.
// An already existing file is left alone.
func (w *MarkdownWriter) Save(title, rawHTML string) error {
	filename := filepath.Join(w.dir, slugFromTitle(title)+".md")
	if _, err := os.Stat(filename); err == nil {
		slog.Debug("skipping markdown export, file exists", "path", filename)
		return nil
	}

	markdown, err := w.converter.ConvertString(rawHTML)
	if err != nil {
		return fmt.Errorf("converting HTML to markdown: %w", err)
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("creating markdown directory: %w", err)
	}

	content := fmt.Sprintf("# %s\n\n%s\n", title, strings.TrimSpace(markdown))
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}

	slog.Debug("markdown file written", "path", filename)
	return nil
}

var (
	slugInvalidRe = regexp.MustCompile(`[^a-z0-9]+`)
	slugDashesRe  = regexp.MustCompile(`-+`)
)

// slugFromTitle creates a filesystem-safe slug from a post title.
func slugFromTitle(title string) string {
	slug := strings.ToLower(title)
	slug = slugInvalidRe.ReplaceAllString(slug, "-")
	slug = slugDashesRe.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	// Limit length to avoid filesystem issues
	if len(slug) > 50 {
		slug = strings.Trim(slug[:50], "-")
	}

	if slug == "" {
		return "post"
	}
	return slug
}
