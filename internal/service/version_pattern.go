package service

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultVersionPattern strips everything up to and including the last dash,
// so "release-2.3" becomes "2.3".
const DefaultVersionPattern = ".+-"

const patternMatchTimeout = time.Second

// VersionPattern derives a version string from a branch name. Patterns use
// ECMAScript syntax, the dialect the rule option has always been written in.
type VersionPattern struct {
	re *regexp2.Regexp
}

// CompileVersionPattern compiles rule, returning a *ConfigError when it is
// empty or malformed.
func CompileVersionPattern(rule string) (*VersionPattern, error) {
	if rule == "" {
		return nil, &ConfigError{Field: "rule", Reason: "pattern is empty"}
	}

	re, err := regexp2.Compile(rule, regexp2.ECMAScript)
	if err != nil {
		return nil, &ConfigError{Field: "rule", Reason: err.Error()}
	}
	re.MatchTimeout = patternMatchTimeout

	return &VersionPattern{re: re}, nil
}

// MustCompileVersionPattern is CompileVersionPattern that panics on error.
func MustCompileVersionPattern(rule string) *VersionPattern {
	p, err := CompileVersionPattern(rule)
	if err != nil {
		panic(err)
	}
	return p
}

// Strip removes the first match of the pattern from branch. A branch without
// a match is returned unchanged.
func (p *VersionPattern) Strip(branch string) (string, error) {
	out, err := p.re.Replace(branch, "", -1, 1)
	if err != nil {
		return "", fmt.Errorf("apply version pattern to %q: %w", branch, err)
	}
	return out, nil
}

func (p *VersionPattern) String() string {
	return p.re.String()
}
