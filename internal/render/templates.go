// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "text/template"

var projectTmpl = template.Must(template.New("project").Funcs(funcs).Parse(`# Project Blueprint

## North-star narrative

{{.Summary.NorthStar}}

{{.Summary.Positioning}}

### Value streams

{{list .Summary.ValueStreams}}
## Program architecture

**Scope:** {{.Architecture.Scope}}

### Objectives

{{list .Architecture.Objectives}}
### KPIs

{{list .Architecture.KPIs}}
### Deliverables

{{list .Architecture.Deliverables}}
### Work breakdown
{{range .Architecture.WBS}}
#### {{.Title}} · {{.Owner}}

{{list .WorkItems}}{{end}}
## Execution pathway
{{range $i, $p := .ExecutionPath}}
### Phase {{inc $i}}: {{$p.Name}}

{{$p.Focus}}

{{list $p.Steps}}{{end}}
### Milestones

{{list .Architecture.Milestones}}
### Risks

| Risk | Probability | Mitigation |
|---|---|---|
{{range .Architecture.Risks}}| {{cell .Title}} | {{.Probability}} | {{cell .Mitigation}} |
{{end}}
### Dependencies

{{list .Architecture.Dependencies}}
## Recommendations

{{list .Recommendations}}
## Documents

### Charter
{{range .Documents.Charter}}
#### {{.Title}}

{{list .Items}}{{end}}
### Statement of work
{{range .Documents.SOW}}
#### {{.Title}}

{{list .Items}}{{end}}
### RACI

| Activity | Responsible | Accountable | Consulted | Informed |
|---|---|---|---|---|
{{range .Documents.RACI}}| {{cell .Activity}} | {{cell .Responsible}} | {{cell .Accountable}} | {{cell .Consulted}} | {{cell .Informed}} |
{{end}}
### Timeline
{{range .Documents.Timeline}}
#### {{.Period}}

{{.Focus}}

{{list .Checkpoints}}{{end}}
### Roadmap
{{range .Documents.Roadmap}}
#### {{.Horizon}}

Outcomes:

{{list .Outcomes}}
Enablers:

{{list .Enablers}}{{end}}`))

var creativeTmpl = template.Must(template.New("creative").Funcs(funcs).Parse(`# Creative Blueprint

## Narrative

**Positioning:** {{.Narrative.Positioning}}

**Voice:** {{.Narrative.Voice}}

**Promise:** {{.Narrative.Promise}}

## Prompts
{{$prompts := .Prompts}}{{range slots}}
### {{.Label}}

{{$prompts.Get .}}
{{end}}
## Figma system

### Layout

- Grid: {{.FigmaSystem.Layout.Grid}}
- Spacing: {{.FigmaSystem.Layout.Spacing}}
- Breakpoints: {{join .FigmaSystem.Layout.Breakpoints}}

{{list .FigmaSystem.Layout.Notes}}
### Components
{{range .FigmaSystem.Components}}
#### {{.Name}}

{{.Usage}}

States: {{join .States}}

{{list .Dataset}}{{end}}
### Flows
{{range .FigmaSystem.Flows}}
#### {{.Name}}

{{list .Touchpoints}}
Success: {{.Success}}
{{end}}
## Content

**Hero:** {{.Content.Hero}}

**Subheading:** {{.Content.Subheading}}

### Calls to action

{{list .Content.CTAs}}
### Value props

{{list .Content.ValueProps}}
### Onboarding

{{.Content.Onboarding}}

## Style guide

### Palette

| Name | Value | Usage |
|---|---|---|
{{range .StyleGuide.Palette}}| {{cell .Name}} | {{cell .Value}} | {{cell .Usage}} |
{{end}}
### Typography

{{range .StyleGuide.Typography}}- {{.Role}} · {{.Font}} · {{.Specs}}
{{end}}
### Imagery

{{list .StyleGuide.Imagery}}
### Motion

{{list .StyleGuide.Motion}}
### Iconography

{{list .StyleGuide.Iconography}}
## Recommendations

{{list .Recommendations}}`))
