package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFile_JSON(t *testing.T) {
	p := writeTempConfig(t, "config.json", `{
		"path": "dist",
		"rule": "^release-",
		"files": ["json", "ts"],
		"includeAuthor": false,
		"timeZone": "Europe/Berlin",
		"customFields": {"team": "core", "build": 7, "beta": true},
		"mode": "dev",
		"generateOnDev": true,
		"buildId": true,
		"commandTimeout": "3s",
		"log": {"level": "debug", "silent": true},
		"server": {"address": "localhost:8000", "requestTimeout": "15s"}
	}`)

	cfg, err := parseFile(p)
	require.NoError(t, err)

	g := cfg.Generator
	assert.Equal(t, "dist", g.OutputPath)
	assert.Equal(t, "^release-", g.Rule)
	assert.Equal(t, []string{"json", "ts"}, g.Files)
	require.NotNil(t, g.IncludeAuthor)
	assert.False(t, *g.IncludeAuthor)
	assert.Nil(t, g.IncludeCommitDate)
	assert.Equal(t, "Europe/Berlin", g.TimeZone)
	assert.Equal(t, map[string]any{"team": "core", "build": float64(7), "beta": true}, g.FileCustomFields)
	assert.Nil(t, g.CustomFields)
	assert.Equal(t, ModeDev, g.Mode)
	assert.True(t, BoolValue(g.GenerateOnDev))
	assert.True(t, BoolValue(g.BuildID))
	assert.Equal(t, 3*time.Second, g.CommandTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, BoolValue(cfg.Log.Silent))
	assert.Equal(t, "localhost:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
}

func TestParseFile_YAML(t *testing.T) {
	p := writeTempConfig(t, "config.yml", `
path: out
files: [txt, yaml]
includeCommitDate: false
commandTimeout: 1500ms
server:
  address: 127.0.0.1:6000
`)

	cfg, err := parseFile(p)
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.Generator.OutputPath)
	assert.Equal(t, []string{"txt", "yaml"}, cfg.Generator.Files)
	require.NotNil(t, cfg.Generator.IncludeCommitDate)
	assert.False(t, *cfg.Generator.IncludeCommitDate)
	assert.Equal(t, 1500*time.Millisecond, cfg.Generator.CommandTimeout)
	assert.Equal(t, "127.0.0.1:6000", cfg.Server.HTTPAddress)
}

func TestParseFile_InvalidJSON(t *testing.T) {
	_, err := parseFile(writeTempConfig(t, "config.json", `{"path": `))
	assert.Error(t, err)
}

func TestParseFile_InvalidYAML(t *testing.T) {
	_, err := parseFile(writeTempConfig(t, "config.yaml", "path: [unterminated"))
	assert.Error(t, err)
}

func TestParseFile_InvalidDuration(t *testing.T) {
	_, err := parseFile(writeTempConfig(t, "config.json", `{"commandTimeout": "soon"}`))
	assert.Error(t, err)
}

func TestParseFile_HomeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	_, err := parseFile("~/missing-config.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), home)
}

// ── Duration ─────────────────────────────────────────────────────────────────

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	var v struct {
		D Duration `yaml:"d"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("d: 2m"), &v))
	assert.Equal(t, 2*time.Minute, time.Duration(v.D))
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1s"`, string(data))
}
