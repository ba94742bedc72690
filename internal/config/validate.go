package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks struct tags and cross-field rules.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	owner, name, ok := strings.Cut(c.GitHub.Repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("%w: github.repo must be owner/name, got %q", ErrInvalidConfig, c.GitHub.Repo)
	}

	if len(c.GitHub.Files) == 0 {
		if _, err := c.GitHub.Pattern(); err != nil {
			return fmt.Errorf("%w: github.file_pattern: %w", ErrInvalidConfig, err)
		}
	}

	if c.Pipeline.UpstreamTimeout <= 0 {
		return fmt.Errorf("%w: pipeline.upstream_timeout must be positive", ErrInvalidConfig)
	}

	return nil
}
