package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-version-gen/models"
)

const (
	textTitle      = "Project Version Info"
	textNone       = "none"
	labelEnv       = "Environment"
	labelToolchain = "Go Version"
)

var textLabels = map[string]string{
	models.FieldVersion:            "Version",
	models.FieldTag:                "Tag",
	models.FieldBranch:             "Branch",
	models.FieldCommitHash:         "Commit",
	models.FieldFullCommitHash:     "Full Commit",
	models.FieldCommitDate:         "Commit Date",
	models.FieldAuthor:             "Author",
	models.FieldBuildTime:          "Build Time",
	models.FieldBuildTimeFormatted: "Build Time (Local)",
	models.FieldGeneratedAt:        "Generated At",
}

// TextLabel returns the label the text report uses for key. Custom fields are
// labelled with their own key.
func TextLabel(key string) string {
	if label, ok := textLabels[key]; ok {
		return label
	}
	return key
}

func (r *renderer) renderText(record models.VersionRecord) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(textTitle + "\n")
	buf.Write(bytes.Repeat([]byte("="), len(textTitle)))
	buf.WriteByte('\n')

	for _, field := range record.Fields() {
		value, err := textValue(field.Value)
		if err != nil {
			return nil, fmt.Errorf("format field %q: %w", field.Key, err)
		}
		fmt.Fprintf(&buf, "%s: %s\n", TextLabel(field.Key), value)
	}

	fmt.Fprintf(&buf, "%s: %s\n", labelEnv, r.opts.Environment)
	fmt.Fprintf(&buf, "%s: %s\n", labelToolchain, r.opts.Toolchain)
	return buf.Bytes(), nil
}

// textValue prints strings folded onto one line, null as "none" and anything
// else as its compact JSON form.
func textValue(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return textNone, nil
	case string:
		return singleLine(v), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(buf.Bytes())), nil
}
