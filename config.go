package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings represents the YAML configuration structure
type Settings struct {
	BaseURL           string `yaml:"base_url"`
	Category          int    `yaml:"category"`
	PerPage           int    `yaml:"per_page"`
	Pages             int    `yaml:"pages"`
	OutputPath        string `yaml:"output_path"`
	MarkdownDirectory string `yaml:"markdown_directory"`
}

// defaultSettings returns the built-in configuration used when no
// settings file exists.
func defaultSettings() *Settings {
	return &Settings{
		BaseURL:    "https://clatalogue.com",
		Category:   610,
		PerPage:    10,
		Pages:      5,
		OutputPath: "output/data.json",
	}
}

// loadSettings loads settings from a YAML file with fallback to defaults
func loadSettings(settingsPath string) (*Settings, error) {
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		// Return default settings if file doesn't exist
		if os.IsNotExist(err) {
			return defaultSettings(), nil
		}
		return nil, fmt.Errorf("reading settings file %s: %w", settingsPath, err)
	}

	settings := defaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing settings YAML: %w", err)
	}

	// Unset numeric fields fall back to defaults so a partial file
	// stays usable.
	if settings.PerPage <= 0 {
		settings.PerPage = 10
	}
	if settings.Pages <= 0 {
		settings.Pages = 5
	}
	if settings.BaseURL == "" {
		settings.BaseURL = defaultSettings().BaseURL
	}
	if settings.OutputPath == "" {
		settings.OutputPath = defaultSettings().OutputPath
	}

	return settings, nil
}
