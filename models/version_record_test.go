// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleRecord() VersionRecord {
	return VersionRecord{
		Version:            "2.3",
		Tag:                strPtr("v2.3.0"),
		Branch:             "release-2.3",
		CommitHash:         "abc1234",
		FullCommitHash:     "abc1234def5678abc1234def5678abc1234def56",
		CommitDate:         strPtr("2026-10-01 12:00:00 +0800"),
		Author:             strPtr("Jane Doe"),
		BuildTime:          "2026-10-18T08:30:00.000Z",
		BuildTimeFormatted: "2026/10/18 16:30:00",
		GeneratedAt:        "2026-10-18T08:30:00.000Z",
	}
}

func fieldKeys(fields []Field) []string {
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// ── Fields ───────────────────────────────────────────────────────────────────

func TestFields_CanonicalOrder(t *testing.T) {
	keys := fieldKeys(sampleRecord().Fields())
	assert.Equal(t, ReservedFields(), keys)
}

func TestFields_OmitsAbsentOptionalFields(t *testing.T) {
	r := sampleRecord()
	r.CommitDate = nil
	r.Author = nil

	keys := fieldKeys(r.Fields())
	assert.NotContains(t, keys, FieldCommitDate)
	assert.NotContains(t, keys, FieldAuthor)
}

func TestFields_NilTagIsKeptAsNull(t *testing.T) {
	r := sampleRecord()
	r.Tag = nil

	value, ok := r.Get(FieldTag)
	require.True(t, ok)
	assert.Nil(t, value)
}

func TestFields_CustomFieldsSortedAfterReserved(t *testing.T) {
	r := sampleRecord().WithCustomFields(map[string]any{"zeta": 1, "alpha": "a"})

	keys := fieldKeys(r.Fields())
	assert.Equal(t, []string{"alpha", "zeta"}, keys[len(keys)-2:])
}

// ── WithCustomFields ─────────────────────────────────────────────────────────

func TestWithCustomFields_StringOverrideReplacesTypedField(t *testing.T) {
	r := sampleRecord().WithCustomFields(map[string]any{"branch": "override"})

	assert.Equal(t, "override", r.Branch)
	assert.Empty(t, r.Custom)
	value, _ := r.Get(FieldBranch)
	assert.Equal(t, "override", value)
}

func TestWithCustomFields_NonStringOverrideKeepsPosition(t *testing.T) {
	r := sampleRecord().WithCustomFields(map[string]any{"version": 7})

	keys := fieldKeys(r.Fields())
	assert.Equal(t, FieldVersion, keys[0])
	value, _ := r.Get(FieldVersion)
	assert.Equal(t, 7, value)
}

func TestWithCustomFields_NilTagOverride(t *testing.T) {
	r := sampleRecord().WithCustomFields(map[string]any{"tag": nil})
	assert.Nil(t, r.Tag)
}

func TestWithCustomFields_DoesNotMutateReceiver(t *testing.T) {
	base := sampleRecord().WithCustomFields(map[string]any{"team": "core"})
	_ = base.WithCustomFields(map[string]any{"team": "web", "branch": "x"})

	assert.Equal(t, "core", base.Custom["team"])
	assert.Equal(t, "release-2.3", base.Branch)
}

func TestWithCustomFields_Empty(t *testing.T) {
	r := sampleRecord()
	assert.Equal(t, r, r.WithCustomFields(nil))
}

// ── JSON ─────────────────────────────────────────────────────────────────────

func TestMarshalJSON_StableKeyOrder(t *testing.T) {
	r := sampleRecord().WithCustomFields(map[string]any{"b": "2", "a": "1"})

	first, err := json.Marshal(r)
	require.NoError(t, err)
	second, err := json.Marshal(r)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Regexp(t, `^\{"version":"2.3","tag":"v2.3.0","branch":`, string(first))
	assert.Regexp(t, `"generatedAt":"[^"]+","a":"1","b":"2"\}$`, string(first))
}

func TestMarshalJSON_NoHTMLEscaping(t *testing.T) {
	r := sampleRecord().WithCustomFields(map[string]any{"note": "<a&b>"})

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"note":"<a&b>"`)
}

func TestUnmarshalJSON_RoundTrip(t *testing.T) {
	r := sampleRecord().WithCustomFields(map[string]any{"team": "core"})

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded VersionRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r, decoded)
}

func TestUnmarshalJSON_InvalidInput(t *testing.T) {
	var decoded VersionRecord
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &decoded))
}

func TestToMap(t *testing.T) {
	m := sampleRecord().ToMap()
	assert.Equal(t, "release-2.3", m[FieldBranch])
	assert.Equal(t, "v2.3.0", m[FieldTag])
	assert.Len(t, m, len(ReservedFields()))
}
