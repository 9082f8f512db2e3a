// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package creative

import (
	"fmt"
	"strings"

	"github.com/pdiddy/blueprint-engine/internal/phrase"
)

// deriveRecommendations returns exactly four items: differentiators,
// keywords, palette, then audience testing.
func deriveRecommendations(b brief) []string {
	return []string{
		differentiatorAdvice(b),
		keywordAdvice(b),
		paletteAdvice(b),
		b.vars().Fill("Test the hero line with {audience} before producing final imagery."),
	}
}

func differentiatorAdvice(b brief) string {
	switch n := len(b.differentiators); {
	case n == 0:
		return "Name at least three differentiators; copy and flows are running on generic value props."
	case n < valuePropCount:
		return fmt.Sprintf("Add %d more differentiator%s so every value prop carries proof.", valuePropCount-n, plural(valuePropCount-n))
	default:
		return fmt.Sprintf("Lead every page with %q and let the other differentiators support it.", phrase.Bare(b.differentiators[0]))
	}
}

func keywordAdvice(b brief) string {
	switch n := len(b.keywords); {
	case n == 0:
		return "Add three to five art-direction keywords; prompts currently rely on mood alone."
	case n > keywordCeiling:
		return fmt.Sprintf("Trim keywords to five; %d competing cues dilute the prompts.", n)
	default:
		return "Lock " + phrase.Join(phrase.Take(b.keywords, promptTokens)) + " as art-direction anchors across every prompt."
	}
}

func paletteAdvice(b brief) string {
	switch n := len(b.palette); {
	case n == 0:
		return "Supply brand colors; the style guide is running on a neutral default palette."
	case n < 3:
		return "Extend the palette to at least three colors so accent and surface roles stay distinct."
	case n > len(paletteRoles):
		return fmt.Sprintf("Consolidate the palette; %d colors exceed the %d core roles.", n, len(paletteRoles))
	default:
		return "Validate " + strings.Join(b.palette[:2], " on ") + " against WCAG AA contrast before handoff."
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
