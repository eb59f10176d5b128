// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog"
)

var identifierPattern = regexp2.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`, regexp2.ECMAScript)

// validate checks that the final merged [StructuredConfig] can drive a
// generation cycle. Unknown artifact formats are not rejected here: the
// emitter skips them with a warning.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	g := cfg.Generator

	if strings.TrimSpace(g.OutputPath) == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidGeneratorConfigs)
	}
	if _, err := regexp2.Compile(g.Rule, regexp2.ECMAScript); err != nil {
		return fmt.Errorf("%w: rule %q: %w", ErrInvalidGeneratorConfigs, g.Rule, err)
	}
	if _, err := time.LoadLocation(g.TimeZone); err != nil {
		return fmt.Errorf("%w: time zone %q: %w", ErrInvalidGeneratorConfigs, g.TimeZone, err)
	}
	if g.Mode != ModeBuild && g.Mode != ModeDev {
		return fmt.Errorf("%w: mode %q is neither %q nor %q", ErrInvalidGeneratorConfigs, g.Mode, ModeBuild, ModeDev)
	}
	if ok, _ := identifierPattern.MatchString(g.GlobalName); !ok {
		return fmt.Errorf("%w: global name %q is not an identifier", ErrInvalidGeneratorConfigs, g.GlobalName)
	}
	if g.CommandTimeout < 0 {
		return fmt.Errorf("%w: negative command timeout", ErrInvalidGeneratorConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	if strings.TrimSpace(cfg.Server.HTTPAddress) == "" {
		return fmt.Errorf("%w: address is empty", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}
