package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Flag names shared by the CLI and parseFlags.
const (
	FlagConfig            = "config"
	FlagOutputPath        = "path"
	FlagRepoDir           = "repo-dir"
	FlagRule              = "rule"
	FlagFiles             = "files"
	FlagIncludeAuthor     = "include-author"
	FlagIncludeCommitDate = "include-commit-date"
	FlagTimeZone          = "time-zone"
	FlagCustomFields      = "field"
	FlagEnvironment       = "environment"
	FlagMode              = "mode"
	FlagGenerateOnDev     = "generate-on-dev"
	FlagGlobalName        = "global-name"
	FlagBuildID           = "build-id"
	FlagCommandTimeout    = "command-timeout"
	FlagLogLevel          = "log-level"
	FlagSilent            = "silent"
	FlagServerAddress     = "address"
	FlagRequestTimeout    = "request-timeout"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// RegisterFlags defines every configuration flag on fs. Defaults shown in
// the help text are the built-in defaults; only flags the user sets take
// part in the merge.
//
// Flags:
//
//	-c/--config               JSON or YAML config file path
//	-p/--path                 output directory
//	--repo-dir                directory git queries run in
//	-r/--rule                 ECMAScript regex stripped from the branch name
//	-f/--files                artifact formats (json,js,txt,ts,yaml)
//	--include-author          add the last commit author
//	--include-commit-date     add the last commit date
//	--time-zone               IANA zone of buildTimeFormatted
//	-F/--field                custom field key=value (repeatable)
//	-e/--environment          environment named in the text artifact
//	-m/--mode                 build or dev
//	--generate-on-dev         generate in dev mode
//	--global-name             global binding of the script artifacts
//	--build-id                add a unique buildId field
//	--command-timeout         timeout of each git query (e.g. "5s")
//	--log-level               zerolog level
//	-s/--silent               disable logging
//	-a/--address              preview server address host:port
//	--request-timeout         preview server request timeout
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON or YAML config file path")
	fs.StringP(FlagOutputPath, "p", DefaultOutputPath, "Output directory for version artifacts")
	fs.String(FlagRepoDir, "", "Directory version-control queries run in (default: working directory)")
	fs.StringP(FlagRule, "r", DefaultRule, "ECMAScript regex whose first match is removed from the branch name")
	fs.StringSliceP(FlagFiles, "f", DefaultFiles, "Artifact formats to emit (json, js, txt, ts, yaml)")
	fs.Bool(FlagIncludeAuthor, true, "Include the author of the last commit")
	fs.Bool(FlagIncludeCommitDate, true, "Include the date of the last commit")
	fs.String(FlagTimeZone, DefaultTimeZone, "IANA time zone of buildTimeFormatted")
	fs.StringToStringP(FlagCustomFields, "F", nil, "Custom field key=value, overrides reserved fields")
	fs.StringP(FlagEnvironment, "e", DefaultEnvironment, "Build environment named in the text artifact")
	fs.StringP(FlagMode, "m", DefaultMode, "Generation mode: build or dev")
	fs.Bool(FlagGenerateOnDev, false, "Generate artifacts in dev mode")
	fs.String(FlagGlobalName, DefaultGlobalName, "Global binding of the script artifacts")
	fs.Bool(FlagBuildID, false, "Add a unique buildId field to every record")
	fs.Duration(FlagCommandTimeout, DefaultCommandTimeout, "Timeout of each version-control query")
	fs.String(FlagLogLevel, DefaultLogLevel, "Log level (debug, info, warn, error)")
	fs.BoolP(FlagSilent, "s", false, "Disable log output")
	fs.VarP(&NetAddress{}, FlagServerAddress, "a", "Preview server address host:port (default "+DefaultServerAddress+")")
	fs.Duration(FlagRequestTimeout, DefaultRequestTimeout, "Preview server request timeout")
}

// parseFlags builds a partial config from the flags explicitly set on fs.
// Flags that are not defined on fs are ignored.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var errs []error

	changed := func(name string) bool {
		f := fs.Lookup(name)
		return f != nil && f.Changed
	}
	str := func(name string, dst *string) {
		if changed(name) {
			v, err := fs.GetString(name)
			errs = append(errs, err)
			*dst = v
		}
	}
	boolean := func(name string, dst **bool) {
		if changed(name) {
			v, err := fs.GetBool(name)
			errs = append(errs, err)
			*dst = Bool(v)
		}
	}

	str(FlagConfig, &cfg.FilePath)
	str(FlagOutputPath, &cfg.Generator.OutputPath)
	str(FlagRepoDir, &cfg.Generator.RepoDir)
	str(FlagRule, &cfg.Generator.Rule)
	str(FlagTimeZone, &cfg.Generator.TimeZone)
	str(FlagEnvironment, &cfg.Generator.Environment)
	str(FlagMode, &cfg.Generator.Mode)
	str(FlagGlobalName, &cfg.Generator.GlobalName)
	str(FlagLogLevel, &cfg.Log.Level)

	boolean(FlagIncludeAuthor, &cfg.Generator.IncludeAuthor)
	boolean(FlagIncludeCommitDate, &cfg.Generator.IncludeCommitDate)
	boolean(FlagGenerateOnDev, &cfg.Generator.GenerateOnDev)
	boolean(FlagBuildID, &cfg.Generator.BuildID)
	boolean(FlagSilent, &cfg.Log.Silent)

	if changed(FlagFiles) {
		v, err := fs.GetStringSlice(FlagFiles)
		errs = append(errs, err)
		cfg.Generator.Files = v
	}
	if changed(FlagCustomFields) {
		v, err := fs.GetStringToString(FlagCustomFields)
		errs = append(errs, err)
		cfg.Generator.CustomFields = v
	}
	if changed(FlagCommandTimeout) {
		v, err := fs.GetDuration(FlagCommandTimeout)
		errs = append(errs, err)
		cfg.Generator.CommandTimeout = v
	}
	if changed(FlagRequestTimeout) {
		v, err := fs.GetDuration(FlagRequestTimeout)
		errs = append(errs, err)
		cfg.Server.RequestTimeout = v
	}
	if changed(FlagServerAddress) {
		cfg.Server.HTTPAddress = fs.Lookup(FlagServerAddress).Value.String()
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
