// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package creative expands a brand-intent form into a creative-system
// blueprint: narrative, image prompts, interface system, copy deck, style
// guide, and recommendations.
//
// Generate is pure and total, like project.Generate. Palette tokens are
// passed through literally and in order; they are never validated as colors.
package creative

import (
	"strings"

	"github.com/pdiddy/blueprint-engine/internal/phrase"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// brief is a CreativeInput with fallbacks applied to scalars. keywords and
// differentiators are cleaned; palette is only compacted so duplicate
// tokens survive.
type brief struct {
	brand    string
	product  string
	audience string
	mood     string

	moodWords       []string
	keywords        []string
	differentiators []string

	// palette is the input palette; colors falls back to defaultPalette.
	palette []string
	colors  []string

	family moodFamily
}

func newBrief(in types.CreativeInput) brief {
	mood := phrase.Or(in.Mood, fallbackMood)
	moodWords := phrase.Clean(strings.Split(mood, ","))
	if len(moodWords) == 0 {
		mood = fallbackMood
		moodWords = phrase.Clean(strings.Split(fallbackMood, ","))
	}
	palette := phrase.Compact(in.Palette)
	colors := palette
	if len(colors) == 0 {
		colors = append([]string(nil), defaultPalette...)
	}
	return brief{
		brand:           phrase.Or(in.BrandName, fallbackBrand),
		product:         phrase.Or(in.Product, fallbackProduct),
		audience:        phrase.Clause(phrase.Or(in.Audience, fallbackAudience)),
		mood:            mood,
		moodWords:       moodWords,
		keywords:        phrase.Clean(in.Keywords),
		differentiators: phrase.Clean(in.Differentiators),
		palette:         palette,
		colors:          colors,
		family:          pickFamily(moodWords),
	}
}

// pickFamily returns the first family whose keywords prefix a mood word.
func pickFamily(moodWords []string) moodFamily {
	joined := strings.Join(moodWords, " ")
	for _, f := range moodFamilies {
		if phrase.HasWordPrefix(joined, f.Keywords) {
			return f
		}
	}
	return balancedFamily
}

// moodPhrase renders the mood words as a human list, lowercased where safe.
func (b brief) moodPhrase() string {
	words := make([]string, len(b.moodWords))
	for i, w := range b.moodWords {
		words[i] = phrase.Clause(w)
	}
	return phrase.Join(words)
}

func (b brief) moodWord() string {
	return phrase.Clause(b.moodWords[0])
}

func (b brief) keywordAt(i int) string {
	return phrase.Clause(phrase.CycleOr(b.keywords, i, fallbackKeyword))
}

func (b brief) keywordPair() string {
	if len(b.keywords) == 0 {
		return "a single signature motif"
	}
	return phrase.Join(clauses(phrase.Take(b.keywords, 2)))
}

func (b brief) differentiatorAt(i int) string {
	return phrase.Clause(phrase.CycleOr(b.differentiators, i, fallbackDifferentiator))
}

// accent is the color in the Accent role, or the last color for short
// palettes.
func (b brief) accent() string {
	if len(b.colors) > 2 {
		return b.colors[2]
	}
	return b.colors[len(b.colors)-1]
}

func (b brief) vars() phrase.Vars {
	return phrase.Vars{
		"brand":          b.brand,
		"product":        b.product,
		"audience":       b.audience,
		"mood":           b.mood,
		"moodPhrase":     b.moodPhrase(),
		"moodWord":       b.moodWord(),
		"aMoodPhrase":    phrase.Article(b.moodPhrase()),
		"aMoodWord":      phrase.Article(b.moodWord()),
		"keyword":        b.keywordAt(0),
		"keywordPair":    b.keywordPair(),
		"differentiator": b.differentiatorAt(0),
		"accent":         b.accent(),
		"spacing":        b.family.Spacing,
		"familyMotion":   b.family.Motion,
		"iconStyle":      b.family.IconStyle,
	}
}

func clauses(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = phrase.Clause(s)
	}
	return out
}

// Generate derives the full creative blueprint for in. Identical input,
// including list order, always yields an identical blueprint.
func Generate(in types.CreativeInput) types.CreativeBlueprint {
	b := newBrief(in)
	content := deriveContent(b)

	return types.CreativeBlueprint{
		Narrative:       deriveNarrative(b),
		Prompts:         derivePrompts(b),
		FigmaSystem:     deriveFigma(b, content),
		Content:         content,
		StyleGuide:      deriveStyleGuide(b),
		Recommendations: deriveRecommendations(b),
	}
}
