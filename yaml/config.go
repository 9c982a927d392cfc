// Package yaml loads the optional cppref.yaml configuration file.
package yaml

import (
	"os"
	"time"

	"github.com/awalczyk/cppref"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML document. Absent fields leave the built-in
// defaults untouched.
type fileConfig struct {
	ContentsDir       string  `yaml:"contents_dir"`
	CacheDir          string  `yaml:"cache_dir"`
	PrintPath         string  `yaml:"print_path"`
	ColoredPrintPath  string  `yaml:"colored_print_path"`
	JournalPath       string  `yaml:"journal_path"`
	UserAgent         string  `yaml:"user_agent"`
	RequestTimeout    string  `yaml:"request_timeout"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// Load reads path and applies it over the default configuration. A missing
// file is not an error: the defaults are returned unchanged.
func Load(path string) (cppref.Config, error) {
	cfg := cppref.DefaultConfig()

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cppref.Config{}, err
	}

	var dto fileConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return cppref.Config{}, cppref.Errorf(cppref.EINVALID, "invalid config file %s: %v", path, err)
	}

	if dto.ContentsDir != "" {
		cfg.ContentsDir = dto.ContentsDir
	}
	if dto.CacheDir != "" {
		cfg.CacheDir = dto.CacheDir
	}
	if dto.PrintPath != "" {
		cfg.PrintPath = dto.PrintPath
	}
	if dto.ColoredPrintPath != "" {
		cfg.ColoredPrintPath = dto.ColoredPrintPath
	}
	if dto.JournalPath != "" {
		cfg.JournalPath = dto.JournalPath
	}
	if dto.UserAgent != "" {
		cfg.UserAgent = dto.UserAgent
	}
	if dto.RequestTimeout != "" {
		d, err := time.ParseDuration(dto.RequestTimeout)
		if err != nil {
			return cppref.Config{}, cppref.Errorf(cppref.EINVALID,
				"invalid request_timeout in %s: %v", path, err)
		}
		cfg.RequestTimeout = d
	}
	if dto.RequestsPerSecond != 0 {
		if dto.RequestsPerSecond < 0 {
			return cppref.Config{}, cppref.Errorf(cppref.EINVALID,
				"requests_per_second must be positive in %s", path)
		}
		cfg.RequestsPerSecond = dto.RequestsPerSecond
	}

	return cfg, nil
}
