// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for version-gen.
// It is populated by merging built-in defaults, an optional JSON or YAML
// file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Boolean options are pointers so that an explicit false from a later source
// overrides a true default.
type StructuredConfig struct {
	// Generator holds the options of the version artifact pipeline.
	Generator Generator `envPrefix:"VERSION_"`

	// Log holds the logger settings.
	Log Log `envPrefix:"LOG_"`

	// Server holds the preview server settings.
	Server Server `envPrefix:"SERVER_"`

	// FilePath is the optional path to a JSON or YAML configuration file,
	// selected by extension. A leading ~ is expanded to the home directory.
	// Env: VERSION_GEN_CONFIG
	FilePath string `env:"VERSION_GEN_CONFIG"`
}

// Generator holds the options of one generation cycle.
type Generator struct {
	// OutputPath is the directory artifacts are written to.
	// Env: VERSION_OUTPUT_PATH
	OutputPath string `env:"OUTPUT_PATH"`

	// RepoDir is the directory version-control queries run in. Empty means
	// the process working directory.
	// Env: VERSION_REPO_DIR
	RepoDir string `env:"REPO_DIR"`

	// Rule is the ECMAScript regular expression whose first match is
	// removed from the branch name to derive the version.
	// Env: VERSION_RULE
	Rule string `env:"RULE"`

	// Files lists the artifact formats to emit (json, js, txt, ts, yaml).
	// Env: VERSION_FILES (comma separated)
	Files []string `env:"FILES" envSeparator:","`

	// IncludeAuthor adds the author of the last commit.
	// Env: VERSION_INCLUDE_AUTHOR
	IncludeAuthor *bool `env:"INCLUDE_AUTHOR"`

	// IncludeCommitDate adds the date of the last commit.
	// Env: VERSION_INCLUDE_COMMIT_DATE
	IncludeCommitDate *bool `env:"INCLUDE_COMMIT_DATE"`

	// TimeZone is the IANA zone buildTimeFormatted is rendered in.
	// Env: VERSION_TIME_ZONE
	TimeZone string `env:"TIME_ZONE"`

	// CustomFields are merged into every record last, overriding reserved
	// fields on collision.
	// Env: VERSION_CUSTOM_FIELDS (k=v,k2=v2)
	CustomFields map[string]string `env:"CUSTOM_FIELDS" envKeyValSeparator:"="`

	// FileCustomFields are the custom fields of the config file with their
	// decoded types kept (numbers, booleans, nested objects). CustomFields
	// win on key collision.
	FileCustomFields map[string]any

	// Environment names the build environment in the text artifact.
	// Env: VERSION_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// Mode is "build" or "dev". In dev mode artifacts are only generated
	// when GenerateOnDev is set; otherwise stale ones are removed.
	// Env: VERSION_MODE
	Mode string `env:"MODE"`

	// GenerateOnDev enables generation in dev mode.
	// Env: VERSION_GENERATE_ON_DEV
	GenerateOnDev *bool `env:"GENERATE_ON_DEV"`

	// GlobalName is the global binding of the script artifacts.
	// Env: VERSION_GLOBAL_NAME
	GlobalName string `env:"GLOBAL_NAME"`

	// BuildID adds a unique buildId custom field to every record.
	// Env: VERSION_BUILD_ID
	BuildID *bool `env:"BUILD_ID"`

	// CommandTimeout bounds each version-control query.
	// Env: VERSION_COMMAND_TIMEOUT
	CommandTimeout time.Duration `env:"COMMAND_TIMEOUT"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// Silent disables all log output.
	// Env: LOG_SILENT
	Silent *bool `env:"SILENT"`
}

// Server holds network and timeout settings of the preview server.
type Server struct {
	// HTTPAddress is the TCP address the preview server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for set fields):
//  1. Built-in defaults
//  2. JSON or YAML file (path resolved from sources 3 and 4)
//  3. Environment variables
//  4. Command-line flags that were explicitly set on fs (may be nil)
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withFile().
		build()
}

// BoolValue dereferences an optional boolean option.
func BoolValue(b *bool) bool {
	return b != nil && *b
}

// Bool returns a pointer to b for optional boolean options.
func Bool(b bool) *bool {
	return &b
}
