package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/custodia-labs/ytstats/internal/core/domain"
)

// DefaultFilePattern matches mostliked.json, mostliked2.json, and so on.
const DefaultFilePattern = `^mostliked\d*\.json$`

// Config is the complete application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	GitHub   GitHubConfig   `koanf:"github"`
	YouTube  YouTubeConfig  `koanf:"youtube"`
	Pipeline PipelineConfig `koanf:"pipeline"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port" validate:"min=1,max=65535"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests" validate:"min=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// GitHubConfig locates the performance files.
// Files takes precedence; when empty, Directory is scanned for names
// matching FilePattern.
type GitHubConfig struct {
	Token          string   `koanf:"token"`
	Repo           string   `koanf:"repo" validate:"required"`
	Files          []string `koanf:"files"`
	Directory      string   `koanf:"directory"`
	FilePattern    string   `koanf:"file_pattern"`
	Ref            string   `koanf:"ref"`
	BaseURL        string   `koanf:"base_url" validate:"omitempty,url"`
	MaxConcurrency int      `koanf:"max_concurrency" validate:"min=1,max=64"`
}

// Owner returns the repository owner from Repo.
func (g GitHubConfig) Owner() string {
	owner, _, _ := strings.Cut(g.Repo, "/")
	return owner
}

// Name returns the repository name from Repo.
func (g GitHubConfig) Name() string {
	_, name, _ := strings.Cut(g.Repo, "/")
	return name
}

// Pattern compiles FilePattern.
func (g GitHubConfig) Pattern() (*regexp.Regexp, error) {
	p := g.FilePattern
	if p == "" {
		p = DefaultFilePattern
	}
	return regexp.Compile(p)
}

// YouTubeConfig configures the metadata provider.
type YouTubeConfig struct {
	APIKey            string        `koanf:"api_key" validate:"required"`
	BaseURL           string        `koanf:"base_url" validate:"omitempty,url"`
	RequestsPerSecond float64       `koanf:"requests_per_second" validate:"gt=0"`
	Burst             int           `koanf:"burst" validate:"min=1"`
	BreakerFailures   uint32        `koanf:"breaker_failures" validate:"min=1"`
	BreakerTimeout    time.Duration `koanf:"breaker_timeout"`
}

// PipelineConfig holds cross-cutting pipeline behavior.
type PipelineConfig struct {
	FailurePolicy   string        `koanf:"failure_policy" validate:"omitempty,oneof=lenient strict"`
	UpstreamTimeout time.Duration `koanf:"upstream_timeout"`
}

// Policy returns the parsed failure policy.
func (p PipelineConfig) Policy() domain.FailurePolicy {
	policy, err := domain.ParseFailurePolicy(p.FailurePolicy)
	if err != nil {
		return domain.FailureLenient
	}
	return policy
}

// LoggingConfig configures internal/logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=trace debug info warn warning error disabled off"`
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`
}

// defaultConfig returns a Config with every default applied.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              5000,
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 60,
			RateLimitWindow:   time.Minute,
			ShutdownTimeout:   15 * time.Second,
		},
		GitHub: GitHubConfig{
			FilePattern:    DefaultFilePattern,
			MaxConcurrency: 8,
		},
		YouTube: YouTubeConfig{
			RequestsPerSecond: 5,
			Burst:             3,
			BreakerFailures:   5,
			BreakerTimeout:    30 * time.Second,
		},
		Pipeline: PipelineConfig{
			FailurePolicy:   string(domain.FailureLenient),
			UpstreamTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Default returns a copy of the built-in configuration.
func Default() *Config {
	return defaultConfig()
}
