// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Reserved field names of a [VersionRecord], as they appear in every artifact.
const (
	FieldVersion            = "version"
	FieldTag                = "tag"
	FieldBranch             = "branch"
	FieldCommitHash         = "commitHash"
	FieldFullCommitHash     = "fullCommitHash"
	FieldCommitDate         = "commitDate"
	FieldAuthor             = "author"
	FieldBuildTime          = "buildTime"
	FieldBuildTimeFormatted = "buildTimeFormatted"
	FieldGeneratedAt        = "generatedAt"
)

// reservedFields lists the reserved names in canonical artifact order.
var reservedFields = []string{
	FieldVersion,
	FieldTag,
	FieldBranch,
	FieldCommitHash,
	FieldFullCommitHash,
	FieldCommitDate,
	FieldAuthor,
	FieldBuildTime,
	FieldBuildTimeFormatted,
	FieldGeneratedAt,
}

// ReservedFields returns the reserved field names in canonical order.
func ReservedFields() []string {
	return append([]string(nil), reservedFields...)
}

// IsReservedField reports whether key names one of the typed record fields.
func IsReservedField(key string) bool {
	return slices.Contains(reservedFields, key)
}

// Field is one key/value pair of a record in artifact order.
type Field struct {
	Key   string
	Value any
}

// VersionRecord is the canonical merged record of repository and build
// metadata produced once per generation cycle. It is treated as immutable
// once built: helpers return modified copies.
//
// Tag is nil when no tag was resolved. CommitDate and Author are nil when
// they were not requested or not available.
//
// Custom carries caller-supplied fields. A custom key equal to a reserved
// name overrides that field (last write wins); string overrides are folded
// into the typed field by [VersionRecord.WithCustomFields], any other value
// stays in Custom and takes the reserved field's place on output.
type VersionRecord struct {
	Version            string
	Tag                *string
	Branch             string
	CommitHash         string
	FullCommitHash     string
	CommitDate         *string
	Author             *string
	BuildTime          string
	BuildTimeFormatted string
	GeneratedAt        string
	Custom             map[string]any
}

// WithCustomFields returns a copy of r with fields shallow-merged on top.
func (r VersionRecord) WithCustomFields(fields map[string]any) VersionRecord {
	if len(fields) == 0 {
		return r
	}

	custom := make(map[string]any, len(r.Custom)+len(fields))
	maps.Copy(custom, r.Custom)

	for key, value := range fields {
		if IsReservedField(key) && (&r).assign(key, value) {
			delete(custom, key)
			continue
		}
		custom[key] = value
	}

	if len(custom) == 0 {
		custom = nil
	}
	r.Custom = custom
	return r
}

// Fields returns the record in artifact order: reserved fields first in
// canonical order (overrides stay in place), then the remaining custom
// fields sorted by key.
func (r VersionRecord) Fields() []Field {
	fields := make([]Field, 0, len(reservedFields)+len(r.Custom))

	for _, key := range reservedFields {
		value, present := r.reservedValue(key)
		if override, ok := r.Custom[key]; ok {
			value, present = override, true
		}
		if present {
			fields = append(fields, Field{Key: key, Value: value})
		}
	}

	extra := make([]string, 0, len(r.Custom))
	for key := range r.Custom {
		if !IsReservedField(key) {
			extra = append(extra, key)
		}
	}
	slices.Sort(extra)
	for _, key := range extra {
		fields = append(fields, Field{Key: key, Value: r.Custom[key]})
	}

	return fields
}

// Get returns the output value stored under key.
func (r VersionRecord) Get(key string) (any, bool) {
	for _, field := range r.Fields() {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

// ToMap flattens the record into a plain map keyed by field name.
func (r VersionRecord) ToMap() map[string]any {
	fields := r.Fields()
	out := make(map[string]any, len(fields))
	for _, field := range fields {
		out[field.Key] = field.Value
	}
	return out
}

// MarshalJSON encodes the record with a stable key order and without HTML
// escaping.
func (r VersionRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range r.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalJSONValue(field.Key)
		if err != nil {
			return nil, err
		}
		value, err := marshalJSONValue(field.Value)
		if err != nil {
			return nil, fmt.Errorf("encode field %q: %w", field.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an artifact back into a record. Keys outside the
// reserved set land in Custom.
func (r *VersionRecord) UnmarshalJSON(data []byte) error {
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*r = RecordFromMap(values)
	return nil
}

// RecordFromMap rebuilds a record from decoded artifact data.
func RecordFromMap(values map[string]any) VersionRecord {
	var record VersionRecord
	custom := make(map[string]any)
	for key, value := range values {
		if IsReservedField(key) && record.assign(key, value) {
			continue
		}
		custom[key] = value
	}
	if len(custom) > 0 {
		record.Custom = custom
	}
	return record
}

func (r VersionRecord) reservedValue(key string) (any, bool) {
	switch key {
	case FieldVersion:
		return r.Version, true
	case FieldTag:
		if r.Tag == nil {
			return nil, true
		}
		return *r.Tag, true
	case FieldBranch:
		return r.Branch, true
	case FieldCommitHash:
		return r.CommitHash, true
	case FieldFullCommitHash:
		return r.FullCommitHash, true
	case FieldCommitDate:
		if r.CommitDate == nil {
			return nil, false
		}
		return *r.CommitDate, true
	case FieldAuthor:
		if r.Author == nil {
			return nil, false
		}
		return *r.Author, true
	case FieldBuildTime:
		return r.BuildTime, true
	case FieldBuildTimeFormatted:
		return r.BuildTimeFormatted, true
	case FieldGeneratedAt:
		return r.GeneratedAt, true
	}
	return nil, false
}

// assign stores value in the typed field named key. It reports false when
// the typed field cannot hold value.
func (r *VersionRecord) assign(key string, value any) bool {
	s, isString := value.(string)
	switch key {
	case FieldTag:
		if value == nil {
			r.Tag = nil
			return true
		}
		if isString {
			r.Tag = &s
			return true
		}
	case FieldCommitDate:
		if isString {
			r.CommitDate = &s
			return true
		}
	case FieldAuthor:
		if isString {
			r.Author = &s
			return true
		}
	case FieldVersion:
		if isString {
			r.Version = s
			return true
		}
	case FieldBranch:
		if isString {
			r.Branch = s
			return true
		}
	case FieldCommitHash:
		if isString {
			r.CommitHash = s
			return true
		}
	case FieldFullCommitHash:
		if isString {
			r.FullCommitHash = s
			return true
		}
	case FieldBuildTime:
		if isString {
			r.BuildTime = s
			return true
		}
	case FieldBuildTimeFormatted:
		if isString {
			r.BuildTimeFormatted = s
			return true
		}
	case FieldGeneratedAt:
		if isString {
			r.GeneratedAt = s
			return true
		}
	}
	return false
}

func marshalJSONValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
