package github

import (
	"regexp"
	"time"
)

// Defaults applied by Config.withDefaults.
const (
	DefaultMaxConcurrency = 8
	DefaultCallTimeout    = 10 * time.Second
)

// DefaultPattern matches mostliked.json, mostliked2.json, and so on.
var DefaultPattern = regexp.MustCompile(`^mostliked\d*\.json$`)

// Config locates the performance files inside one repository.
type Config struct {
	// Owner and Repo name the repository.
	Owner string
	Repo  string

	// Ref is a branch, tag or commit. Empty uses the default branch.
	Ref string

	// Files lists explicit paths, fetched in this order.
	// When set, Directory and Pattern are ignored.
	Files []string

	// Directory is scanned when Files is empty. Empty means the repo root.
	Directory string

	// Pattern selects directory entries by file name.
	Pattern *regexp.Regexp

	// MaxConcurrency bounds parallel file retrievals.
	MaxConcurrency int

	// Timeout bounds each upstream call.
	Timeout time.Duration
}

// Validate checks that the config can resolve files.
func (c *Config) Validate() error {
	if c.Owner == "" || c.Repo == "" {
		return ErrConfigMissingRepo
	}
	if len(c.Files) == 0 && c.Pattern == nil {
		return ErrConfigMissingPattern
	}
	return nil
}

// UsesDirectory reports whether files are discovered by listing Directory.
func (c *Config) UsesDirectory() bool {
	return len(c.Files) == 0
}

func (c Config) withDefaults() Config {
	if c.MaxConcurrency <= 0 {
		c.MaxConcurrency = DefaultMaxConcurrency
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultCallTimeout
	}
	if c.Pattern == nil && len(c.Files) == 0 {
		c.Pattern = DefaultPattern
	}
	return c
}
