package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults", mutate: func(*StructuredConfig) {}},
		{name: "empty output path", mutate: func(c *StructuredConfig) { c.Generator.OutputPath = "  " }, wantErr: ErrInvalidGeneratorConfigs},
		{name: "bad rule", mutate: func(c *StructuredConfig) { c.Generator.Rule = "(unclosed" }, wantErr: ErrInvalidGeneratorConfigs},
		{name: "bad time zone", mutate: func(c *StructuredConfig) { c.Generator.TimeZone = "Mars/Olympus" }, wantErr: ErrInvalidGeneratorConfigs},
		{name: "bad mode", mutate: func(c *StructuredConfig) { c.Generator.Mode = "watch" }, wantErr: ErrInvalidGeneratorConfigs},
		{name: "bad global name", mutate: func(c *StructuredConfig) { c.Generator.GlobalName = "1-version" }, wantErr: ErrInvalidGeneratorConfigs},
		{name: "negative timeout", mutate: func(c *StructuredConfig) { c.Generator.CommandTimeout = -1 }, wantErr: ErrInvalidGeneratorConfigs},
		{name: "bad log level", mutate: func(c *StructuredConfig) { c.Log.Level = "loud" }, wantErr: ErrInvalidLogConfigs},
		{name: "empty address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "unknown format accepted", mutate: func(c *StructuredConfig) { c.Generator.Files = []string{"xml"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
