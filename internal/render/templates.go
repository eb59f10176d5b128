package render

import (
	"embed"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

const (
	scriptTemplate      = "version.js.tmpl"
	typeScriptTemplate  = "version.ts.tmpl"
	generatedFileHeader = "Generated by version-gen. Do not edit."
)

type scriptData struct {
	GeneratedAt string
	GlobalName  string
	JSON        string
}

type tsMember struct {
	Name     string
	Type     string
	Optional bool
}

type typeScriptData struct {
	scriptData
	Members        []tsMember
	IndexSignature bool
}
