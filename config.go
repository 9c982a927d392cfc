package cppref

import (
	"path/filepath"
	"time"
)

// Default filesystem layout and network settings. These match the paths
// the tool has always used; a cppref.yaml file can override any of them.
const (
	DefaultContentsDir      = "contents"
	DefaultCacheDir         = "cppreference"
	DefaultPrintPath        = "cppreference_print.html"
	DefaultColoredPrintPath = "cppreference_print_colored.html"
	DefaultRequestTimeout   = 30 * time.Second

	// DefaultRequestsPerSecond paces outbound requests at one every
	// 500ms as a courtesy to the documentation site.
	DefaultRequestsPerSecond = 2.0
)

// DefaultUserAgent is sent with every page request. cppreference.com
// serves complete pages to browser user agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Config holds runtime settings shared by all commands.
type Config struct {
	// ContentsDir is the root of the Markdown corpus.
	ContentsDir string
	// CacheDir holds one sanitized <name>.html file per symbol.
	CacheDir string
	// PrintPath receives the flattened print document.
	PrintPath string
	// ColoredPrintPath receives the colored print document.
	ColoredPrintPath string
	// JournalPath is the fetch journal database. Empty means
	// <CacheDir>/cppref.db.
	JournalPath string

	UserAgent         string
	RequestTimeout    time.Duration
	RequestsPerSecond float64
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		ContentsDir:       DefaultContentsDir,
		CacheDir:          DefaultCacheDir,
		PrintPath:         DefaultPrintPath,
		ColoredPrintPath:  DefaultColoredPrintPath,
		UserAgent:         DefaultUserAgent,
		RequestTimeout:    DefaultRequestTimeout,
		RequestsPerSecond: DefaultRequestsPerSecond,
	}
}

// JournalFile returns the effective fetch journal path.
func (c Config) JournalFile() string {
	if c.JournalPath != "" {
		return c.JournalPath
	}
	return filepath.Join(c.CacheDir, "cppref.db")
}
