package render

import (
	"runtime"

	"github.com/MKhiriev/go-version-gen/models"
)

// DefaultGlobalName is the binding the script formats register the record under.
const DefaultGlobalName = "VERSION_INFO"

// DefaultEnvironment is reported in the text provenance lines when none is set.
const DefaultEnvironment = "development"

// Options hold everything a renderer needs besides the record itself.
type Options struct {
	// Request decides which optional members the typed-source interface declares.
	Request models.Request
	// Environment is the build environment named in the text report.
	Environment string
	// Toolchain is the toolchain version named in the text report.
	Toolchain string
	// GlobalName is the global binding used by the script formats.
	GlobalName string
}

// DefaultOptions returns options for the running toolchain.
func DefaultOptions() Options {
	return Options{
		Request:     models.DefaultRequest(),
		Environment: DefaultEnvironment,
		Toolchain:   runtime.Version(),
		GlobalName:  DefaultGlobalName,
	}
}

func (o Options) withDefaults() Options {
	if o.Environment == "" {
		o.Environment = DefaultEnvironment
	}
	if o.Toolchain == "" {
		o.Toolchain = runtime.Version()
	}
	if o.GlobalName == "" {
		o.GlobalName = DefaultGlobalName
	}
	return o
}
