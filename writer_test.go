package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarkdownWriterSave(t *testing.T) {
	dir := t.TempDir()
	w := NewMarkdownWriter(dir)

	require.NoError(t, w.Save("My Post!", "<p>Hello <b>World</b></p>"))

	data, err := os.ReadFile(filepath.Join(dir, "my-post.md"))
	require.NoError(t, err)
	require.Contains(t, string(data), "# My Post!")
	require.Contains(t, string(data), "Hello **World**")
}

func TestMarkdownWriterSkipsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "my-post.md")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0644))

	w := NewMarkdownWriter(dir)
	require.NoError(t, w.Save("My Post", "<p>replacement</p>"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "original", string(data))
}

func TestSlugFromTitle(t *testing.T) {
	testCases := []struct {
		title    string
		expected string
	}{
		{"My Post!", "my-post"},
		{"  CLAT PG 2024: Answer Key  ", "clat-pg-2024-answer-key"},
		{"!!!", "post"},
		{"", "post"},
		{"a--b---c", "a-b-c"},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.expected, slugFromTitle(tc.title), "title %q", tc.title)
	}
}

func TestSlugFromTitleLengthCap(t *testing.T) {
	long := "this is an extremely long post title that keeps going and going and going"
	slug := slugFromTitle(long)
	require.LessOrEqual(t, len(slug), 50)
	require.NotEmpty(t, slug)
}
