package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
)

// Store persists the full post collection as one pretty-printed JSON
// file. The file is read in full at the start of a run and replaced
// in full at the end; there are no partial writes.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the previously persisted posts, or nil (and no error)
// when the file does not exist yet. A nil result means "no prior
// data" and is distinct from an empty collection.
func (s *Store) Load() ([]Post, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var posts []Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	if posts == nil {
		posts = []Post{}
	}

	return posts, nil
}

// Save overwrites the store file with the given posts, serialized
// with 4-space indentation.
func (s *Store) Save(posts []Post) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if posts == nil {
		posts = []Post{}
	}
	data, err := json.MarshalIndent(posts, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling posts: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}

	slog.Info("output file written", "path", s.path, "posts", len(posts))
	return nil
}

// Merge appends every crawled post not already present in existing,
// comparing by full structural equality. Existing posts keep their
// order, new posts are appended in crawl order. A nil existing
// collection means no prior data, in which case crawled is returned
// unchanged.
func Merge(existing, crawled []Post) []Post {
	if existing == nil {
		return crawled
	}

	merged := slices.Clone(existing)
	for _, p := range crawled {
		if slices.Contains(merged, p) {
			continue
		}
		slog.Info("new post found", "title", p.Title)
		merged = append(merged, p)
	}

	return merged
}
