// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

import (
	"github.com/pdiddy/blueprint-engine/internal/phrase"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

func deriveSummary(b brief) types.ProjectSummary {
	v := b.vars()
	return types.ProjectSummary{
		NorthStar:    v.Fill("{name} exists to {vision}."),
		Positioning:  v.With("focus", positioningFocus(b.goals)).Fill("Positioned as the {industry} program that turns {focus} into measurable momentum for {stakeholder}."),
		ValueStreams: valueStreams(b.goals, v),
	}
}

// positioningFocus names the first two goals, or generic intent.
func positioningFocus(goals []string) string {
	if len(goals) == 0 {
		return "strategic intent"
	}
	clauses := make([]string, 0, 2)
	for _, g := range phrase.Take(goals, 2) {
		clauses = append(clauses, phrase.Clause(g))
	}
	return phrase.Join(clauses)
}

// valueStreams pairs each goal with a clause by position.
func valueStreams(goals []string, v phrase.Vars) []string {
	if len(goals) == 0 {
		return []string{v.Fill(genericValueStream)}
	}
	out := make([]string, len(goals))
	for i, g := range goals {
		out[i] = phrase.Bare(g) + ": " + v.Fill(phrase.Cycle(valueClauses, i)) + "."
	}
	return out
}
