// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes blueprints as Markdown, YAML, or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/blueprint-engine/pkg/types"
)

var funcs = template.FuncMap{
	"list":  list,
	"cell":  cell,
	"join":  func(items []string) string { return strings.Join(items, ", ") },
	"inc":   func(i int) int { return i + 1 },
	"slots": func() []types.PromptSlot { return types.PromptSlots },
}

// Project writes bp to w in the requested format.
func Project(w io.Writer, bp types.ProjectBlueprint, format types.OutputFormat) error {
	return write(w, bp, format, projectTmpl)
}

// Creative writes bp to w in the requested format.
func Creative(w io.Writer, bp types.CreativeBlueprint, format types.OutputFormat) error {
	return write(w, bp, format, creativeTmpl)
}

func write(w io.Writer, v any, format types.OutputFormat, md *template.Template) error {
	switch format {
	case types.OutputMarkdown, "":
		if err := md.Execute(w, v); err != nil {
			return fmt.Errorf("rendering markdown: %w", err)
		}
		return nil
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// list renders items as a Markdown bullet list, one line each.
func list(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteByte('\n')
	}
	return b.String()
}

// cell escapes a value for a Markdown table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
