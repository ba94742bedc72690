package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// PathEnvVar overrides the config file location.
const PathEnvVar = "YTSTATS_CONFIG"

// DefaultConfigPaths are searched in order when no path is given.
var DefaultConfigPaths = []string{
	"ytstats.toml",
	"/etc/ytstats/config.toml",
}

// envMappings maps environment variables to koanf paths.
var envMappings = map[string]string{
	"GITHUB_TOKEN":           "github.token",
	"GITHUB_REPO":            "github.repo",
	"GITHUB_FILE_PATH":       "github.files",
	"GITHUB_DIRECTORY":       "github.directory",
	"GITHUB_FILE_PATTERN":    "github.file_pattern",
	"GITHUB_REF":             "github.ref",
	"GITHUB_BASE_URL":        "github.base_url",
	"GITHUB_MAX_CONCURRENCY": "github.max_concurrency",
	"YOUTUBE_API_KEY":        "youtube.api_key",
	"YOUTUBE_BASE_URL":       "youtube.base_url",
	"HOST":                   "server.host",
	"PORT":                   "server.port",
	"CORS_ORIGINS":           "server.cors_origins",
	"RATE_LIMIT_REQUESTS":    "server.rate_limit_requests",
	"RATE_LIMIT_WINDOW":      "server.rate_limit_window",
	"FAILURE_POLICY":         "pipeline.failure_policy",
	"UPSTREAM_TIMEOUT":       "pipeline.upstream_timeout",
	"LOG_LEVEL":              "logging.level",
	"LOG_FORMAT":             "logging.format",
}

// sliceKeys are given as comma-separated strings in the environment.
var sliceKeys = []string{"github.files", "server.cors_origins"}

// Load reads configuration from defaults, the config file at path (or the
// first default path found), and the environment, then validates it.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), TOMLParser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if err := splitSliceFields(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envTransform maps a known variable to its koanf path; unknown names are skipped.
func envTransform(key string) string {
	return envMappings[key]
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		return p
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// splitSliceFields turns comma-separated strings into string slices.
func splitSliceFields(k *koanf.Koanf) error {
	for _, key := range sliceKeys {
		raw, ok := k.Get(key).(string)
		if !ok {
			continue
		}
		parts := make([]string, 0)
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if err := k.Set(key, parts); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
	}
	return nil
}
