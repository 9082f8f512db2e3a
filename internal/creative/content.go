// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package creative

import (
	"github.com/pdiddy/blueprint-engine/internal/phrase"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// deriveContent builds the copy deck. Value props pair differentiators with
// fixed clauses by position and fall back per slot.
func deriveContent(b brief) types.Content {
	v := b.vars()

	props := make([]string, 0, valuePropCount)
	for i := 0; i < valuePropCount; i++ {
		if i < len(b.differentiators) {
			props = append(props, phrase.Bare(b.differentiators[i])+": "+v.Fill(valuePropClauses[i]))
			continue
		}
		props = append(props, fallbackValueProps[i])
	}

	cv := v
	if len(b.differentiators) == 0 {
		cv = v.With("differentiator", "the platform")
	}

	return types.Content{
		Hero:       v.Fill(heroTemplate),
		Subheading: v.Fill(subheadingTemplate),
		CTAs:       cv.FillAll(ctaTemplates),
		ValueProps: props,
		Onboarding: v.Fill(onboardingTemplate),
	}
}
