// Package sheet locates cheatsheet documents on disk. Each topic maps to a
// single markdown file, <dir>/<topic>.md, under one configuration directory.
package sheet

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const appDir = "cheet"

// Dir resolves the cheatsheet directory. A non-empty custom path wins, then
// $XDG_CONFIG_HOME/cheet, then ~/.config/cheet. If the home directory
// cannot be determined the current directory is used.
func Dir(custom string) string {
	if custom != "" {
		return custom
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", appDir)
}

// Find returns the path of the sheet for topic, or an error naming the
// expected path when no sheet exists there.
func Find(dir, topic string) (string, error) {
	path := filepath.Join(dir, topic+".md")
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("no cheatsheet found for %q\nexpected: %s\ntip: create a markdown file at that path to get started", topic, path)
	}
	return path, nil
}

// Load reads the sheet at path and returns its content.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read sheet: %w", err)
	}
	return string(data), nil
}

// List returns the sorted topic names of all sheets directly under dir.
func List(dir string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), "*.md")
	if err != nil {
		return nil, fmt.Errorf("list sheets: %w", err)
	}
	topics := make([]string, 0, len(matches))
	for _, m := range matches {
		topics = append(topics, strings.TrimSuffix(m, ".md"))
	}
	sort.Strings(topics)
	return topics, nil
}
