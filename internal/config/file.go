package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk layout of the configuration file. Generator
// options use the option names of the build plugin configuration at the top
// level; log and server settings are nested.
type FileConfig struct {
	Path              string         `json:"path" yaml:"path"`
	RepoDir           string         `json:"repoDir" yaml:"repoDir"`
	Rule              string         `json:"rule" yaml:"rule"`
	Files             []string       `json:"files" yaml:"files"`
	IncludeAuthor     *bool          `json:"includeAuthor" yaml:"includeAuthor"`
	IncludeCommitDate *bool          `json:"includeCommitDate" yaml:"includeCommitDate"`
	TimeZone          string         `json:"timeZone" yaml:"timeZone"`
	CustomFields      map[string]any `json:"customFields" yaml:"customFields"`
	Environment       string         `json:"environment" yaml:"environment"`
	Mode              string         `json:"mode" yaml:"mode"`
	GenerateOnDev     *bool          `json:"generateOnDev" yaml:"generateOnDev"`
	GlobalName        string         `json:"globalName" yaml:"globalName"`
	BuildID           *bool          `json:"buildId" yaml:"buildId"`
	CommandTimeout    Duration       `json:"commandTimeout" yaml:"commandTimeout"`

	Log struct {
		Level  string `json:"level" yaml:"level"`
		Silent *bool  `json:"silent" yaml:"silent"`
	} `json:"log" yaml:"log"`

	Server struct {
		HTTPAddress    string   `json:"address" yaml:"address"`
		RequestTimeout Duration `json:"requestTimeout" yaml:"requestTimeout"`
	} `json:"server" yaml:"server"`
}

// parseFile reads a JSON (.json) or YAML (.yaml, .yml) config file. Any
// other extension is decoded as JSON.
func parseFile(filePath string) (*StructuredConfig, error) {
	expanded, err := homedir.Expand(filePath)
	if err != nil {
		return nil, fmt.Errorf("error expanding config file path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg FileConfig
	switch strings.ToLower(filepath.Ext(expanded)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f FileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		Generator: Generator{
			OutputPath:        f.Path,
			RepoDir:           f.RepoDir,
			Rule:              f.Rule,
			Files:             f.Files,
			IncludeAuthor:     f.IncludeAuthor,
			IncludeCommitDate: f.IncludeCommitDate,
			TimeZone:          f.TimeZone,
			FileCustomFields:  nonEmptyFields(f.CustomFields),
			Environment:       f.Environment,
			Mode:              f.Mode,
			GenerateOnDev:     f.GenerateOnDev,
			GlobalName:        f.GlobalName,
			BuildID:           f.BuildID,
			CommandTimeout:    time.Duration(f.CommandTimeout),
		},
		Log: Log{
			Level:  f.Log.Level,
			Silent: f.Log.Silent,
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
	}
}

// nonEmptyFields returns nil for an empty map so an absent section does not
// take part in the merge.
func nonEmptyFields(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s" as well as plain numbers of
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return d.set(v)
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	return d.set(v)
}

func (d *Duration) set(v any) error {
	switch value := v.(type) {
	case nil:
		*d = 0
	case float64:
		*d = Duration(time.Duration(value))
	case int:
		*d = Duration(time.Duration(value))
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
	default:
		return fmt.Errorf("invalid duration %v", v)
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
