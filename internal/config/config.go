// Package config loads optional YAML defaults for the coitrees CLI:
// which chromosomes to admit, the report column order, and whether
// coverage reporting is on by default.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
)

// Config holds CLI defaults. A config file is optional: with no path,
// Load returns Default(); a path naming a file that cannot be read is an
// error.
type Config struct {
	// ChromosomeAllow, if non-empty, is a regexp a chromosome name must
	// match to be included in a query run. Empty means "allow all".
	ChromosomeAllow string `yaml:"chromosome_allow"`

	// Columns is the report's column order. Load replaces an empty list
	// with DefaultColumns.
	Columns []string `yaml:"columns"`

	// Coverage turns on the coverage column by default, equivalent to
	// always passing --coverage.
	Coverage bool `yaml:"coverage"`
}

// DefaultColumns is the report column order used when Config.Columns is
// empty, matching the four fields original_source/src/main.rs's
// query_bed_files prints: chrom, start, end, overlap count.
var DefaultColumns = []string{"chrom", "start", "end", "count"}

// knownColumns are the report columns cmd/coitrees query knows how to
// render; Load rejects any other name so a typo in a config file fails
// fast instead of silently producing an empty column.
var knownColumns = map[string]bool{
	"chrom":    true,
	"start":    true,
	"end":      true,
	"count":    true,
	"coverage": true,
}

// Default returns the zero-config defaults: no chromosome filtering, the
// standard column order, coverage reporting off.
func Default() Config {
	return Config{Columns: append([]string(nil), DefaultColumns...)}
}

// Load reads and parses a YAML config file at path. A path of "" returns
// Default() without touching the filesystem.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if len(cfg.Columns) == 0 {
		cfg.Columns = append([]string(nil), DefaultColumns...)
	}
	for _, col := range cfg.Columns {
		if !knownColumns[col] {
			return Config{}, fmt.Errorf("config: %s: unknown column %q (valid: chrom, start, end, count, coverage)", path, col)
		}
	}

	if _, err := cfg.ChromosomeFilter(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// HasColumn reports whether name is already present in Columns.
func (c Config) HasColumn(name string) bool {
	for _, col := range c.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// ChromosomeFilter compiles ChromosomeAllow. It returns a nil regexp (no
// filter) when ChromosomeAllow is empty; Allows treats that as allow-all.
func (c Config) ChromosomeFilter() (*regexp.Regexp, error) {
	if c.ChromosomeAllow == "" {
		return nil, nil
	}
	re, err := regexp.Compile(c.ChromosomeAllow)
	if err != nil {
		return nil, fmt.Errorf("invalid chromosome_allow pattern %q: %w", c.ChromosomeAllow, err)
	}
	return re, nil
}

// Allows reports whether chrom passes the configured allow-list, or true
// unconditionally if no filter is configured.
func (c Config) Allows(chrom string) bool {
	re, err := c.ChromosomeFilter()
	if err != nil {
		return false
	}
	if re == nil {
		return true
	}
	return re.MatchString(chrom)
}
