// Package config provides configuration loading, merging, and validation
// facilities for version-gen.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override fields they set):
//  1. Built-in defaults
//  2. JSON or YAML config file
//  3. Environment variables
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig]; [StructuredConfig.Generation]
// derives the view the generation pipeline consumes.
package config
