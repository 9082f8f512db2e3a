// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package creative

import (
	"github.com/pdiddy/blueprint-engine/internal/phrase"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

func deriveFigma(b brief, content types.Content) types.FigmaSystem {
	return types.FigmaSystem{
		Layout:     deriveLayout(b),
		Components: deriveComponents(b, content),
		Flows:      deriveFlows(b),
	}
}

func deriveLayout(b brief) types.Layout {
	v := b.vars()
	return types.Layout{
		Grid:        v.Fill(gridTemplate),
		Spacing:     v.Fill(spacingTemplate),
		Breakpoints: append([]string(nil), breakpoints...),
		Notes:       v.FillAll(layoutNotes),
	}
}

// deriveComponents fills the catalog; each dataset is sample copy from the
// copy deck so components can be mocked without lorem ipsum.
func deriveComponents(b brief, content types.Content) []types.Component {
	v := b.vars()
	out := make([]types.Component, 0, len(components))
	for _, c := range components {
		out = append(out, types.Component{
			Name:    c.Name,
			Usage:   v.Fill(c.Usage),
			States:  append([]string(nil), c.States...),
			Dataset: c.Dataset(b, v, content),
		})
	}
	return out
}

func navigationData(b brief, _ phrase.Vars, content types.Content) []string {
	data := append([]string{b.brand}, navigationItems...)
	return append(data, content.CTAs[0])
}

func heroData(_ brief, _ phrase.Vars, content types.Content) []string {
	return []string{content.Hero, content.Subheading}
}

func featureCardData(_ brief, _ phrase.Vars, content types.Content) []string {
	return append([]string(nil), content.ValueProps...)
}

func ctaBannerData(_ brief, _ phrase.Vars, content types.Content) []string {
	return append([]string(nil), content.CTAs...)
}

func footerData(_ brief, v phrase.Vars, _ types.Content) []string {
	return v.FillAll(footerItems)
}

// deriveFlows rotates keywords and differentiators by flow position.
func deriveFlows(b brief) []types.Flow {
	base := b.vars()
	out := make([]types.Flow, 0, len(flows))
	for i, f := range flows {
		v := base.With(
			"keyword", b.keywordAt(i),
			"differentiator", b.differentiatorAt(i),
		)
		if len(b.keywords) == 0 {
			v = v.With("keyword", "their goals")
		}
		out = append(out, types.Flow{
			Name:        f.Name,
			Touchpoints: v.FillAll(f.Touchpoints),
			Success:     f.Success,
		})
	}
	return out
}
