package config

import (
	"maps"
	"time"

	"github.com/MKhiriev/go-version-gen/models"
)

// Generation is the resolved view of [Generator] consumed by the service
// layer: optional booleans are dereferenced and the typed file custom fields
// are overlaid with the string ones from the environment and flags.
type Generation struct {
	OutputPath     string
	RepoDir        string
	Rule           string
	Formats        []string
	Request        models.Request
	TimeZone       string
	CustomFields   map[string]any
	Environment    string
	GlobalName     string
	BuildID        bool
	CommandTimeout time.Duration
	DevMode        bool
	GenerateOnDev  bool
}

// Generation maps the merged generator options into a [Generation] view.
func (cfg *StructuredConfig) Generation() Generation {
	g := cfg.Generator

	var custom map[string]any
	if len(g.FileCustomFields)+len(g.CustomFields) > 0 {
		custom = make(map[string]any, len(g.FileCustomFields)+len(g.CustomFields))
		maps.Copy(custom, g.FileCustomFields)
		for key, value := range g.CustomFields {
			custom[key] = value
		}
	}

	return Generation{
		OutputPath: g.OutputPath,
		RepoDir:    g.RepoDir,
		Rule:       g.Rule,
		Formats:    append([]string(nil), g.Files...),
		Request: models.Request{
			IncludeAuthor:     BoolValue(g.IncludeAuthor),
			IncludeCommitDate: BoolValue(g.IncludeCommitDate),
		},
		TimeZone:       g.TimeZone,
		CustomFields:   custom,
		Environment:    g.Environment,
		GlobalName:     g.GlobalName,
		BuildID:        BoolValue(g.BuildID),
		CommandTimeout: g.CommandTimeout,
		DevMode:        g.Mode == ModeDev,
		GenerateOnDev:  BoolValue(g.GenerateOnDev),
	}
}

// ShouldGenerate reports whether artifacts are produced in this mode. Dev
// mode without GenerateOnDev cleans artifacts instead.
func (g Generation) ShouldGenerate() bool {
	return !g.DevMode || g.GenerateOnDev
}
