// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package form reads and writes the input forms for both generators. List
// fields accept either a sequence or one raw text block that is split on
// newlines and commas, so a form pasted from a text area parses the same as
// a hand-written YAML list.
package form

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/blueprint-engine/internal/phrase"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

var separator = regexp.MustCompile(`\r?\n|,`)

// Tokenize splits raw text on newlines or commas, trims each piece, and
// drops empty pieces. Order is preserved.
func Tokenize(raw string) []string {
	return phrase.Compact(separator.Split(raw, -1))
}

// Lines is a list field that decodes from a raw string or a sequence.
type Lines []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Lines) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = Tokenize(node.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return fmt.Errorf("decoding list at line %d: %w", node.Line, err)
		}
		*l = phrase.Compact(items)
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list", node.Line)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Lines) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*l = Tokenize(raw)
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("expected a string or a list of strings: %w", err)
	}
	*l = phrase.Compact(items)
	return nil
}

// ProjectForm is the project-intent form.
type ProjectForm struct {
	Name         string `json:"name" yaml:"name"`
	Vision       string `json:"vision" yaml:"vision"`
	Industry     string `json:"industry" yaml:"industry"`
	Timeframe    string `json:"timeframe" yaml:"timeframe"`
	Budget       string `json:"budget" yaml:"budget"`
	Goals        Lines  `json:"goals" yaml:"goals"`
	KPIs         Lines  `json:"kpis" yaml:"kpis"`
	Stakeholders Lines  `json:"stakeholders" yaml:"stakeholders"`
	Team         Lines  `json:"team" yaml:"team"`
	Constraints  Lines  `json:"constraints" yaml:"constraints"`
}

// Input converts the form to generator input.
func (f ProjectForm) Input() types.ProjectInput {
	return types.ProjectInput{
		Name:         strings.TrimSpace(f.Name),
		Vision:       strings.TrimSpace(f.Vision),
		Industry:     strings.TrimSpace(f.Industry),
		Timeframe:    strings.TrimSpace(f.Timeframe),
		Budget:       strings.TrimSpace(f.Budget),
		Goals:        []string(f.Goals),
		KPIs:         []string(f.KPIs),
		Stakeholders: []string(f.Stakeholders),
		Team:         []string(f.Team),
		Constraints:  []string(f.Constraints),
	}
}

// CreativeForm is the brand-intent form.
type CreativeForm struct {
	BrandName       string `json:"brandName" yaml:"brand_name"`
	Product         string `json:"product" yaml:"product"`
	Audience        string `json:"audience" yaml:"audience"`
	Mood            string `json:"mood" yaml:"mood"`
	Keywords        Lines  `json:"keywords" yaml:"keywords"`
	Palette         Lines  `json:"palette" yaml:"palette"`
	Differentiators Lines  `json:"differentiators" yaml:"differentiators"`
}

// Input converts the form to generator input.
func (f CreativeForm) Input() types.CreativeInput {
	return types.CreativeInput{
		BrandName:       strings.TrimSpace(f.BrandName),
		Product:         strings.TrimSpace(f.Product),
		Audience:        strings.TrimSpace(f.Audience),
		Mood:            strings.TrimSpace(f.Mood),
		Keywords:        []string(f.Keywords),
		Palette:         []string(f.Palette),
		Differentiators: []string(f.Differentiators),
	}
}

// DefaultProjectForm returns the seed project form.
func DefaultProjectForm() ProjectForm {
	return ProjectForm{
		Name:         "Command Atlas Transformation",
		Vision:       "Launch a unified command center so enterprise leaders can orchestrate growth and operations from a single canvas.",
		Industry:     "Enterprise SaaS",
		Timeframe:    "16-week sprint program",
		Budget:       "$1.8M envelope",
		Goals:        Lines{"Compress decision cycles for executives", "Digitize cross-functional playbooks", "Prove measurable ROI within one quarter"},
		KPIs:         Lines{"Decision cycle time", "Adoption across regions", "Net promoter score uplift"},
		Stakeholders: Lines{"Chief Strategy Officer", "VP Product", "Head of RevOps", "PMO Director"},
		Team:         Lines{"Program Director", "Product Strategist", "Design Architect", "Lead Engineer", "Change Lead"},
		Constraints:  Lines{"Complex legacy systems", "Compressed go-live timeline", "Strict compliance reviews"},
	}
}

// DefaultCreativeForm returns the seed creative form.
func DefaultCreativeForm() CreativeForm {
	return CreativeForm{
		BrandName:       "Omar Atlas",
		Product:         "strategic operating system for visionary founders",
		Audience:        "design-forward CEOs and product leaders",
		Mood:            "minimal, cinematic, confident",
		Keywords:        Lines{"premium", "architectural lighting", "neofuturism", "negative space"},
		Palette:         Lines{"#080C14", "#121C2B", "#2D4059", "#8EA7C2", "#F7F9FC"},
		Differentiators: Lines{"Narrative-driven decisions", "Command center intelligence", "Tailored brand-to-build handoff"},
	}
}

// Default returns the seed form for engine.
func Default(engine types.Engine) (any, error) {
	switch engine {
	case types.EngineProject:
		return DefaultProjectForm(), nil
	case types.EngineCreative:
		return DefaultCreativeForm(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", engine)
	}
}

// LoadProjectForm reads a project form from a YAML or JSON file.
func LoadProjectForm(path string) (ProjectForm, error) {
	var f ProjectForm
	if err := load(path, &f); err != nil {
		return ProjectForm{}, err
	}
	return f, nil
}

// LoadCreativeForm reads a creative form from a YAML or JSON file.
func LoadCreativeForm(path string) (CreativeForm, error) {
	var f CreativeForm
	if err := load(path, &f); err != nil {
		return CreativeForm{}, err
	}
	return f, nil
}

// load decodes path into v; ".json" files are read as JSON, everything else
// as YAML. An empty file leaves v untouched.
func load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading form: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if isJSON(path) {
		err = json.Unmarshal(data, v)
	} else {
		err = yaml.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("parsing form %s: %w", path, err)
	}
	return nil
}

// WriteForm writes form to path as YAML, or JSON for a ".json" path,
// creating parent directories as needed.
func WriteForm(path string, form any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating form directory: %w", err)
		}
	}

	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(form, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(form)
	}
	if err != nil {
		return fmt.Errorf("encoding form: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing form: %w", err)
	}
	return nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
