// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package creative

import (
	"strings"

	"github.com/pdiddy/blueprint-engine/internal/phrase"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

func deriveNarrative(b brief) types.Narrative {
	v := b.vars()

	positioning := v.Fill("{brand} is the {product} built for {audience}.")
	if len(b.keywords) > 0 {
		positioning += " It lives where " + phrase.Join(clauses(phrase.Take(b.keywords, promptTokens))) + " meet."
	}

	favors := "clarity and restraint"
	if len(b.keywords) > 0 {
		favors = b.keywordPair()
	}

	promise := "a calm, confident experience from first glance to daily use"
	if len(b.differentiators) > 0 {
		promise = phrase.Join(clauses(phrase.Take(b.differentiators, promptTokens)))
	}

	v = v.With("favors", favors, "promise", promise)
	return types.Narrative{
		Positioning: positioning,
		Voice:       v.Fill("Speak in {aMoodPhrase} voice that favors {favors} over noise."),
		Promise:     v.Fill("{brand} promises {audience} {promise}."),
	}
}

// derivePrompts builds one prompt per slot in a fixed shape: subject, mood,
// palette, optional keywords, then the slot directive.
func derivePrompts(b brief) types.Prompts {
	v := b.vars()

	shared := []string{
		"Mood: " + b.mood,
		"Palette: " + strings.Join(phrase.Take(b.colors, promptTokens), ", "),
	}
	if len(b.palette) == 0 {
		shared[1] = "Palette: a restrained neutral palette"
	}
	if len(b.keywords) > 0 {
		shared = append(shared, "Keywords: "+strings.Join(phrase.Take(b.keywords, promptTokens), ", "))
	}

	var p types.Prompts
	for _, s := range slots {
		parts := make([]string, 0, len(shared)+2)
		parts = append(parts, v.Fill(s.Subject))
		parts = append(parts, shared...)
		parts = append(parts, s.Directive)
		p.Set(s.Slot, strings.Join(parts, ". ")+".")
	}
	return p
}
