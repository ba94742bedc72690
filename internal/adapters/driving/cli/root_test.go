package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ytstats/internal/config"
	"github.com/custodia-labs/ytstats/internal/core/ports/driving"
)

func TestRootCmd_Commands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "fetch")
	assert.Contains(t, names, "mcp")
	assert.Contains(t, names, "version")
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "verbose", "log-format"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestSetVersion(t *testing.T) {
	old := version
	t.Cleanup(func() { version = old })

	SetVersion("1.2.3")

	assert.Equal(t, "1.2.3", version)
}

func TestSetup_BuildsServiceFromConfig(t *testing.T) {
	oldService, oldCfg, oldLoad, oldBuild := performanceService, cfg, loadConfig, buildService
	t.Cleanup(func() {
		performanceService, cfg, loadConfig, buildService = oldService, oldCfg, oldLoad, oldBuild
	})

	var gotPath string
	loadConfig = func(path string) (*config.Config, error) {
		gotPath = path
		return testConfig(), nil
	}
	built := &mockPerformanceService{}
	var gotRepo string
	buildService = func(_ context.Context, c *config.Config) (driving.PerformanceService, error) {
		gotRepo = c.GitHub.Repo
		return built, nil
	}
	performanceService = nil

	configPath = "custom.toml"
	t.Cleanup(func() { configPath = "" })

	fetchCmd.SetContext(context.Background())
	err := setup(fetchCmd, nil)

	require.NoError(t, err)
	assert.Equal(t, "custom.toml", gotPath)
	assert.Equal(t, "acme/stats", gotRepo)
	assert.Same(t, built, performanceService)
	require.NotNil(t, cfg)
	assert.Equal(t, "acme/stats", cfg.GitHub.Repo)
}

func TestSetup_ConfigError(t *testing.T) {
	oldLoad := loadConfig
	t.Cleanup(func() { loadConfig = oldLoad })

	loadConfig = func(string) (*config.Config, error) {
		return nil, config.ErrInvalidConfig
	}

	err := setup(fetchCmd, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "loading config")
}

func TestSetup_BuildError(t *testing.T) {
	oldService, oldCfg, oldLoad, oldBuild := performanceService, cfg, loadConfig, buildService
	t.Cleanup(func() {
		performanceService, cfg, loadConfig, buildService = oldService, oldCfg, oldLoad, oldBuild
	})

	loadConfig = func(string) (*config.Config, error) { return testConfig(), nil }
	buildErr := errors.New("boom")
	buildService = func(context.Context, *config.Config) (driving.PerformanceService, error) {
		return nil, buildErr
	}
	performanceService = nil

	err := setup(fetchCmd, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, buildErr)
	assert.Nil(t, performanceService)
}

func TestSetup_VersionSkipsConfig(t *testing.T) {
	oldLoad := loadConfig
	t.Cleanup(func() {
		loadConfig = oldLoad
		rootCmd.SetArgs(nil)
	})

	loadConfig = func(string) (*config.Config, error) {
		t.Fatal("config must not be loaded for version")
		return nil, nil
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "ytstats version")
}
