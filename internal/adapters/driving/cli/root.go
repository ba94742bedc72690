// Package cli provides the ytstats command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ytstats/internal/config"
	"github.com/custodia-labs/ytstats/internal/core/ports/driving"
	"github.com/custodia-labs/ytstats/internal/logger"
)

// annotationSkipConfig marks commands that run without loading configuration.
const annotationSkipConfig = "ytstats/skip-config"

var (
	version = "dev"

	configPath string
	verbose    bool
	logFormat  string

	// cfg holds the configuration loaded for the running command.
	cfg *config.Config

	// performanceService is built lazily from cfg unless already set.
	performanceService driving.PerformanceService

	loadConfig   = config.Load
	buildService = newPerformanceService
)

var rootCmd = &cobra.Command{
	Use:   "ytstats",
	Short: "Serve enriched YouTube video performance data",
	Long: `ytstats reads video performance records from JSON files in a GitHub
repository, filters them by time and joins them with YouTube video titles
and thumbnails.

The result is served over HTTP (GET /api/data), over MCP, or printed once
with the fetch command.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (default: ytstats.toml or $"+config.PathEnvVar+")")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&logFormat, "log-format", "", "log format: json or console")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// setup configures logging, loads configuration and wires the pipeline.
func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if logFormat != "" {
		logger.Init(logger.Config{Format: logFormat})
	}

	if _, skip := cmd.Annotations[annotationSkipConfig]; skip {
		return nil
	}

	c, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	logger.Init(logger.Config{Level: c.Logging.Level, Format: c.Logging.Format})
	cfg = c

	if performanceService != nil {
		return nil
	}
	svc, err := buildService(cmd.Context(), c)
	if err != nil {
		return fmt.Errorf("building pipeline: %w", err)
	}
	performanceService = svc
	return nil
}
