package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	pages       int
	outputPath  string
	markdownDir string
	debugMode   bool
)

var rootCmd = &cobra.Command{
	Use:   "post-archiver [settings-file]",
	Short: "Archive WordPress posts into a deduplicated JSON file",
	Long: `Crawls a paginated WordPress JSON API, flattens each post's HTML body
into plain text (including a markdown rendering of any embedded table),
deduplicates against previously stored results and overwrites the output
file with the merged set.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(debugMode)

		settingsFile := "settings.yaml"
		if len(args) > 0 {
			settingsFile = args[0]
		}

		settings, err := loadSettings(settingsFile)
		if err != nil {
			return err
		}
		if outputPath != "" {
			settings.OutputPath = outputPath
		}
		if markdownDir != "" {
			settings.MarkdownDirectory = markdownDir
		}

		pageCount := pages
		if pageCount <= 0 {
			pageCount = promptPageCount(os.Stdin, os.Stdout, settings.Pages)
		}

		return run(context.Background(), settings, pageCount)
	},
}

func init() {
	rootCmd.Flags().IntVar(&pages, "pages", 0, "number of pages to crawl (0 prompts interactively)")
	rootCmd.Flags().StringVar(&outputPath, "output", "", "path of the JSON output file")
	rootCmd.Flags().StringVar(&markdownDir, "markdown-dir", "", "directory for per-post markdown export")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "enable debug logging")
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)
}

// promptPageCount asks for the number of pages to crawl. Empty or
// non-integer input falls back to the configured default.
func promptPageCount(r io.Reader, w io.Writer, fallback int) int {
	fmt.Fprintf(w, "Enter number of pages to be crawled (default is %d) -> ", fallback)
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return fallback
	}
	return n
}

// run executes one archive pass: load prior data, crawl, merge, save.
// A failed crawl leaves the previously saved data untouched.
func run(ctx context.Context, settings *Settings, pageCount int) error {
	store := NewStore(settings.OutputPath)
	existing, err := store.Load()
	if err != nil {
		return err
	}

	var writer *MarkdownWriter
	if settings.MarkdownDirectory != "" {
		writer = NewMarkdownWriter(settings.MarkdownDirectory)
	}

	crawler := NewCrawler(NewFetcher(), settings, writer)
	crawled, err := crawler.Crawl(ctx, pageCount)
	if err != nil {
		slog.Error("crawl failed, keeping previous data", "err", err)
		return err
	}

	return store.Save(Merge(existing, crawled))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
