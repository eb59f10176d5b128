package config

import "time"

// Defaults applied before any other source.
const (
	DefaultOutputPath     = "public"
	DefaultRule           = ".+-"
	DefaultTimeZone       = "Asia/Shanghai"
	DefaultEnvironment    = "development"
	DefaultMode           = ModeBuild
	DefaultGlobalName     = "VERSION_INFO"
	DefaultCommandTimeout = 5 * time.Second
	DefaultLogLevel       = "info"
	DefaultServerAddress  = "127.0.0.1:5175"
	DefaultRequestTimeout = 30 * time.Second
)

// Generation modes.
const (
	ModeBuild = "build"
	ModeDev   = "dev"
)

// DefaultFiles is the artifact set emitted when none is configured.
var DefaultFiles = []string{"json", "js", "txt"}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Generator: Generator{
			OutputPath:        DefaultOutputPath,
			Rule:              DefaultRule,
			Files:             append([]string(nil), DefaultFiles...),
			IncludeAuthor:     Bool(true),
			IncludeCommitDate: Bool(true),
			TimeZone:          DefaultTimeZone,
			Environment:       DefaultEnvironment,
			Mode:              DefaultMode,
			GenerateOnDev:     Bool(false),
			GlobalName:        DefaultGlobalName,
			BuildID:           Bool(false),
			CommandTimeout:    DefaultCommandTimeout,
		},
		Log: Log{
			Level:  DefaultLogLevel,
			Silent: Bool(false),
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
