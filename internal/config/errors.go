package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid. The concrete problem is
// joined to the sentinel.
var (
	// ErrInvalidGeneratorConfigs indicates invalid generation settings
	// (for example, an empty output path or a rule that does not compile).
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidServerConfigs indicates invalid preview server settings
	// (for example, an empty address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
