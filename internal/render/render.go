// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-version-gen/models"
	"gopkg.in/yaml.v3"
)

type renderer struct {
	opts Options
}

// NewRenderer returns a [Renderer] bound to opts. Empty option fields take
// their defaults.
func NewRenderer(opts Options) Renderer {
	return &renderer{opts: opts.withDefaults()}
}

func (r *renderer) Render(record models.VersionRecord, format models.Format) ([]byte, error) {
	switch format {
	case models.FormatJSON:
		return r.renderJSON(record)
	case models.FormatJS:
		return r.renderScript(record)
	case models.FormatText:
		return r.renderText(record)
	case models.FormatTS:
		return r.renderTypeScript(record)
	case models.FormatYAML:
		return r.renderYAML(record)
	}
	return nil, &models.UnsupportedFormatError{Format: string(format)}
}

func (r *renderer) renderJSON(record models.VersionRecord) ([]byte, error) {
	data, err := indentedJSON(record, "")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (r *renderer) renderScript(record models.VersionRecord) ([]byte, error) {
	data, err := indentedJSON(record, "  ")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = templates.ExecuteTemplate(&buf, scriptTemplate, scriptData{
		GeneratedAt: singleLine(record.BuildTimeFormatted),
		GlobalName:  r.opts.GlobalName,
		JSON:        string(data),
	})
	if err != nil {
		return nil, fmt.Errorf("execute %s: %w", scriptTemplate, err)
	}
	return buf.Bytes(), nil
}

func (r *renderer) renderTypeScript(record models.VersionRecord) ([]byte, error) {
	data, err := indentedJSON(record, "")
	if err != nil {
		return nil, err
	}

	members, extra := typeScriptMembers(record, r.opts.Request)

	var buf bytes.Buffer
	err = templates.ExecuteTemplate(&buf, typeScriptTemplate, typeScriptData{
		scriptData: scriptData{
			GeneratedAt: singleLine(record.BuildTimeFormatted),
			GlobalName:  r.opts.GlobalName,
			JSON:        string(data),
		},
		Members:        members,
		IndexSignature: extra,
	})
	if err != nil {
		return nil, fmt.Errorf("execute %s: %w", typeScriptTemplate, err)
	}
	return buf.Bytes(), nil
}

func (r *renderer) renderYAML(record models.VersionRecord) ([]byte, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, field := range record.Fields() {
		value := &yaml.Node{}
		if err := value.Encode(field.Value); err != nil {
			return nil, fmt.Errorf("encode field %q: %w", field.Key, err)
		}
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Key},
			value,
		)
	}
	doc := &yaml.Node{
		Kind:        yaml.DocumentNode,
		HeadComment: generatedFileHeader,
		Content:     []*yaml.Node{mapping},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// indentedJSON renders the record with two-space indentation. Every line
// after the first is prefixed with prefix so the literal can be nested.
func indentedJSON(record models.VersionRecord, prefix string) ([]byte, error) {
	raw, err := record.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, prefix, "  "); err != nil {
		return nil, fmt.Errorf("indent record: %w", err)
	}
	return buf.Bytes(), nil
}

// typeScriptMembers declares the reserved fields with the types they carry.
// A reserved key whose value does not fit its usual type is declared as
// unknown. The second result reports keys outside the declared members.
func typeScriptMembers(record models.VersionRecord, req models.Request) ([]tsMember, bool) {
	values := record.ToMap()
	declared := make(map[string]bool, len(values))

	var members []tsMember
	for _, key := range models.ReservedFields() {
		member := tsMember{Name: key, Type: "string"}
		switch key {
		case models.FieldTag:
			member.Type = "string | null"
		case models.FieldCommitDate:
			if !req.IncludeCommitDate {
				continue
			}
			member.Optional = true
		case models.FieldAuthor:
			if !req.IncludeAuthor {
				continue
			}
			member.Optional = true
		}

		if value, ok := values[key]; ok && !fitsStringMember(value, key == models.FieldTag) {
			member.Type = "unknown"
		}
		declared[key] = true
		members = append(members, member)
	}

	extra := false
	for key := range values {
		if !declared[key] {
			extra = true
			break
		}
	}
	return members, extra
}

func fitsStringMember(value any, nullable bool) bool {
	if value == nil {
		return nullable
	}
	_, ok := value.(string)
	return ok
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
