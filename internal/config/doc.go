// Package config loads ytstats configuration.
//
// Configuration is layered, later layers overriding earlier ones:
//
//  1. Defaults: built-in values from defaultConfig
//  2. Config file: optional TOML file (--config, YTSTATS_CONFIG, or a default path)
//  3. Environment: the variable names listed in envMappings
//
// Environment names follow the original deployment, so an existing .env with
// GITHUB_TOKEN, GITHUB_REPO, GITHUB_FILE_PATH and YOUTUBE_API_KEY keeps working.
//
// The loaded Config is validated once and then passed explicitly into every
// component constructor. Nothing below cmd/ reads the environment.
package config
